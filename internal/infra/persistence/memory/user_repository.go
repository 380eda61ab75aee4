package memory

import (
	"context"
	"strings"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/repository"
)

type userRepository struct {
	db *DB
}

// NewUserRepository returns the in-memory credential store.
func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, user := range r.db.users {
		if strings.EqualFold(user.Username, username) {
			return user.Clone(), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *userRepository) FindByID(_ context.Context, id int64) (*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	user, ok := r.db.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user.Clone(), nil
}

func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.usernameTaken(user.Username, 0) {
		return repository.ErrUsernameTaken
	}

	r.db.lastUserID++
	user.ID = r.db.lastUserID
	r.db.users[user.ID] = user.Clone()

	return nil
}

func (r *userRepository) Update(_ context.Context, user *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	if r.usernameTaken(user.Username, user.ID) {
		return repository.ErrUsernameTaken
	}

	r.db.users[user.ID] = user.Clone()

	return nil
}

func (r *userRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.users[id]; !ok {
		return false, nil
	}
	delete(r.db.users, id)

	return true, nil
}

func (r *userRepository) List(_ context.Context) ([]*entity.User, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedValues(r.db.users, (*entity.User).Clone), nil
}

// usernameTaken must be called with the write lock held.
func (r *userRepository) usernameTaken(username string, exceptID int64) bool {
	for id, user := range r.db.users {
		if id != exceptID && strings.EqualFold(user.Username, username) {
			return true
		}
	}

	return false
}
