package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/repository"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/errors"
)

// CookieStoreOptions configures the signed-cookie store.
type CookieStoreOptions struct {
	Secret string
	MaxAge time.Duration
	Secure bool
	Clock  service.Clock
}

// CookieStore keeps each key's claims client side, one signed cookie per key.
type CookieStore struct {
	codec  *tokenCodec
	maxAge time.Duration
	secure bool
}

// NewCookieStore creates a CookieStore. The secret is required.
func NewCookieStore(opts CookieStoreOptions) (*CookieStore, error) {
	if opts.Clock == nil {
		opts.Clock = service.NewSystemClock()
	}
	codec, err := newTokenCodec(opts.Secret, opts.MaxAge, opts.Clock)
	if err != nil {
		return nil, err
	}

	return &CookieStore{codec: codec, maxAge: opts.MaxAge, secure: opts.Secure}, nil
}

// Open implements Store.
func (s *CookieStore) Open(w http.ResponseWriter, r *http.Request) repository.SessionStorage {
	return &cookieStorage{store: s, w: w, r: r, written: make(map[string]*string)}
}

// cookieStorage is the view of one request. Values written during the request
// shadow the incoming cookies so a later Get observes them.
type cookieStorage struct {
	store *CookieStore
	w     http.ResponseWriter
	r     *http.Request

	mu      sync.Mutex
	written map[string]*string // nil value marks a deletion
}

func (s *cookieStorage) Get(_ context.Context, key string) (*entity.SessionClaims, bool, error) {
	s.mu.Lock()
	token, shadowed := s.written[key]
	s.mu.Unlock()

	if shadowed {
		if token == nil {
			return nil, false, nil
		}

		return s.decode(key, *token)
	}

	cookie, err := s.r.Cookie(key)
	if errors.Is(err, http.ErrNoCookie) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read session cookie")
	}

	return s.decode(key, cookie.Value)
}

func (s *cookieStorage) decode(key, token string) (*entity.SessionClaims, bool, error) {
	claims, err := s.store.codec.Parse(key, token)
	if err != nil {
		return nil, false, err
	}

	return claims, true, nil
}

func (s *cookieStorage) Set(_ context.Context, key string, claims *entity.SessionClaims) error {
	if claims == nil {
		return errors.New("session claims must not be nil")
	}

	token, err := s.store.codec.Sign(key, claims)
	if err != nil {
		return err
	}

	http.SetCookie(s.w, newCookie(key, token, int(s.store.maxAge/time.Second), s.store.secure))

	s.mu.Lock()
	s.written[key] = &token
	s.mu.Unlock()

	return nil
}

func (s *cookieStorage) Delete(_ context.Context, key string) error {
	http.SetCookie(s.w, newCookie(key, "", -1, s.store.secure))

	s.mu.Lock()
	s.written[key] = nil
	s.mu.Unlock()

	return nil
}
