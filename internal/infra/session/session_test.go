package session

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"hotelhrm/internal/domain/entity"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testClaims() *entity.SessionClaims {
	id := int64(1)

	return &entity.SessionClaims{Username: "john.doe", Email: "john.doe@hotelhrm.com", Role: "Employee", EmployeeID: &id}
}

// replay builds a follow-up request carrying the cookies set on rec.
func replay(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}

	return req
}
