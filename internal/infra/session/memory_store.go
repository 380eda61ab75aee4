package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/domain/service"

	"github.com/google/uuid"
)

// SessionIDCookie carries the opaque id of a server-side session.
const SessionIDCookie = "hrm_sid"

// MemoryStoreOptions configures the server-side store.
type MemoryStoreOptions struct {
	MaxAge time.Duration
	Secure bool
	Clock  service.Clock
	Logger *slog.Logger
}

type memoryEntry struct {
	claims    entity.SessionClaims
	expiresAt time.Time
}

// MemoryStore keeps claims server side, keyed by session id and then by key.
// Only the random session id travels in a cookie.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]memoryEntry

	maxAge time.Duration
	secure bool
	clock  service.Clock
	logger *slog.Logger

	janitorMu sync.Mutex
	stop      chan struct{}
	done      chan struct{} // nil until the janitor starts
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore(opts MemoryStoreOptions) *MemoryStore {
	if opts.Clock == nil {
		opts.Clock = service.NewSystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &MemoryStore{
		sessions: make(map[string]map[string]memoryEntry),
		maxAge:   opts.MaxAge,
		secure:   opts.Secure,
		clock:    opts.Clock,
		logger:   opts.Logger,
	}
}

// Open implements Store. A cookie id is adopted only when the store already
// holds a session under it; ids the server never issued are ignored.
func (s *MemoryStore) Open(w http.ResponseWriter, r *http.Request) repository.SessionStorage {
	storage := &memoryStorage{store: s, w: w}
	if cookie, err := r.Cookie(SessionIDCookie); err == nil {
		if _, err := uuid.Parse(cookie.Value); err == nil && s.exists(cookie.Value) {
			storage.sessionID = cookie.Value
		}
	}

	return storage
}

func (s *MemoryStore) exists(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[sessionID]

	return ok
}

// rotate drops everything under oldID and returns a freshly minted id.
func (s *MemoryStore) rotate(oldID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if oldID != "" {
		delete(s.sessions, oldID)
	}

	return uuid.NewString()
}

func (s *MemoryStore) get(sessionID, key string) (*entity.SessionClaims, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.sessions[sessionID][key]
	if !ok || !s.clock.Now().Before(entry.expiresAt) {
		return nil, false
	}

	claims := entry.claims
	if entry.claims.EmployeeID != nil {
		id := *entry.claims.EmployeeID
		claims.EmployeeID = &id
	}

	return &claims, true
}

func (s *MemoryStore) set(sessionID, key string, claims *entity.SessionClaims) {
	stored := *claims
	if claims.EmployeeID != nil {
		id := *claims.EmployeeID
		stored.EmployeeID = &id
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions[sessionID] == nil {
		s.sessions[sessionID] = make(map[string]memoryEntry)
	}
	s.sessions[sessionID][key] = memoryEntry{claims: stored, expiresAt: s.clock.Now().Add(s.maxAge)}
}

func (s *MemoryStore) delete(sessionID, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, ok := s.sessions[sessionID]; ok {
		delete(session, key)
		if len(session) == 0 {
			delete(s.sessions, sessionID)
		}
	}
}

// EvictExpired removes expired entries and returns how many were removed.
func (s *MemoryStore) EvictExpired() int {
	now := s.clock.Now()
	removed := 0

	s.mu.Lock()
	defer s.mu.Unlock()

	for sessionID, session := range s.sessions {
		for key, entry := range session {
			if !now.Before(entry.expiresAt) {
				delete(session, key)
				removed++
			}
		}
		if len(session) == 0 {
			delete(s.sessions, sessionID)
		}
	}

	return removed
}

// Len returns the number of live session ids.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// StartJanitor evicts expired entries every interval until StopJanitor.
// A non-positive interval disables it; starting twice is a no-op.
func (s *MemoryStore) StartJanitor(interval time.Duration) {
	if interval <= 0 {
		return
	}

	s.janitorMu.Lock()
	defer s.janitorMu.Unlock()
	if s.done != nil {
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop, s.done = stop, done

	go func() {
		defer close(done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if removed := s.EvictExpired(); removed > 0 {
					s.logger.Debug("Evicted expired sessions", slog.Int("count", removed))
				}
			}
		}
	}()
}

// StopJanitor stops the janitor and waits for it to exit.
func (s *MemoryStore) StopJanitor() {
	s.janitorMu.Lock()
	defer s.janitorMu.Unlock()
	if s.done == nil {
		return
	}

	close(s.stop)
	<-s.done
	s.stop, s.done = nil, nil
}

// memoryStorage is the view of one request.
type memoryStorage struct {
	store *MemoryStore
	w     http.ResponseWriter

	mu        sync.Mutex
	sessionID string
}

func (s *memoryStorage) id() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionID
}

func (s *memoryStorage) Get(_ context.Context, key string) (*entity.SessionClaims, bool, error) {
	sessionID := s.id()
	if sessionID == "" {
		return nil, false, nil
	}

	claims, ok := s.store.get(sessionID, key)

	return claims, ok, nil
}

// Set writes claims under key. Writing the session key is a sign-in, so the
// request always leaves with a new session id and the previous one is dropped.
func (s *memoryStorage) Set(_ context.Context, key string, claims *entity.SessionClaims) error {
	s.mu.Lock()
	if key == entity.SessionKey || s.sessionID == "" {
		s.sessionID = s.store.rotate(s.sessionID)
	}
	sessionID := s.sessionID
	s.mu.Unlock()

	s.store.set(sessionID, key, claims)
	http.SetCookie(s.w, newCookie(SessionIDCookie, sessionID, int(s.store.maxAge/time.Second), s.store.secure))

	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	sessionID := s.id()
	if sessionID == "" {
		return nil
	}

	s.store.delete(sessionID, key)

	return nil
}
