package memory

import (
	"context"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/repository"
)

type employeeRepository struct {
	db *DB
}

// NewEmployeeRepository returns the in-memory employee store.
func NewEmployeeRepository(db *DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindByID(_ context.Context, id int64) (*entity.Employee, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	employee, ok := r.db.employees[id]
	if !ok {
		return nil, repository.ErrEmployeeNotFound
	}

	return employee.Clone(), nil
}

func (r *employeeRepository) Create(_ context.Context, employee *entity.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.lastEmployeeID++
	employee.ID = r.db.lastEmployeeID
	r.db.employees[employee.ID] = employee.Clone()

	return nil
}

func (r *employeeRepository) Update(_ context.Context, employee *entity.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.employees[employee.ID]; !ok {
		return repository.ErrEmployeeNotFound
	}
	r.db.employees[employee.ID] = employee.Clone()

	return nil
}

func (r *employeeRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.employees[id]; !ok {
		return false, nil
	}
	delete(r.db.employees, id)

	return true, nil
}

func (r *employeeRepository) List(_ context.Context) ([]*entity.Employee, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return sortedValues(r.db.employees, (*entity.Employee).Clone), nil
}
