// Package session provides the per-browser-session storages behind the session state machine.
package session

import (
	"time"

	"hotelhrm/internal/domain/entity"
	"hotelhrm/internal/domain/service"
	"hotelhrm/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "hotelhrm"

// sessionTokenClaims is the JWT body of a cookie-stored session.
type sessionTokenClaims struct {
	entity.SessionClaims
	jwt.RegisteredClaims
}

// tokenCodec signs and verifies session claims as HS256 JWTs.
type tokenCodec struct {
	secret []byte
	ttl    time.Duration
	clock  service.Clock
}

func newTokenCodec(secret string, ttl time.Duration, clock service.Clock) (*tokenCodec, error) {
	if secret == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &tokenCodec{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

// Sign encodes claims with an expiry of now+ttl.
func (c *tokenCodec) Sign(key string, claims *entity.SessionClaims) (string, error) {
	now := c.clock.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionTokenClaims{
		SessionClaims: *claims,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   key,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Parse verifies the signature, expiry and key binding of a token.
func (c *tokenCodec) Parse(key, tokenString string) (*entity.SessionClaims, error) {
	parsed := &sessionTokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(key),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.clock.Now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session token")
	}

	claims := parsed.SessionClaims

	return &claims, nil
}
