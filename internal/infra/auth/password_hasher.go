package auth

import (
	"strings"

	"hotelhrm/config"
	"hotelhrm/internal/domain/service"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasherParams holds dependencies for the password hasher, injected by Fx.
type PasswordHasherParams struct {
	fx.In

	Config *config.Config
}

// compositeHasher hashes with the configured algorithm and verifies any digest
// format the credential store may still hold.
type compositeHasher struct {
	primary service.PasswordHasher
	argon2  *Argon2Hasher
	bcrypt  service.PasswordHasher
	legacy  *SHA256Hasher
}

// NewPasswordHasher builds the hasher selected by auth.passwordHasher.
func NewPasswordHasher(params PasswordHasherParams) service.PasswordHasher {
	var authCfg config.AuthConfig
	if params.Config != nil && params.Config.Auth != nil {
		authCfg = *params.Config.Auth
	}

	return newCompositeHasher(authCfg.PasswordHasher, Argon2ParamsFromConfig(authCfg.Argon2), authCfg.BcryptCost)
}

func newCompositeHasher(algorithm string, argon2Params Argon2Params, bcryptCost int) *compositeHasher {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	h := &compositeHasher{
		argon2: NewArgon2Hasher(argon2Params),
		bcrypt: NewBcryptHasher(bcryptCost),
		legacy: NewSHA256Hasher(),
	}

	switch algorithm {
	case config.HasherBcrypt:
		h.primary = h.bcrypt
	case config.HasherSHA256:
		h.primary = h.legacy
	default:
		h.primary = h.argon2
	}

	return h
}

func (h *compositeHasher) Hash(password string) (string, error) {
	return h.primary.Hash(password)
}

func (h *compositeHasher) Check(password, digest string) bool {
	return h.verifierFor(digest).Check(password, digest)
}

func (h *compositeHasher) NeedsRehash(digest string) bool {
	if h.verifierFor(digest) != h.primary {
		return true
	}

	return h.primary.NeedsRehash(digest)
}

func (h *compositeHasher) verifierFor(digest string) service.PasswordHasher {
	switch {
	case strings.HasPrefix(digest, argon2idPrefix):
		return h.argon2
	case isBcryptDigest(digest):
		return h.bcrypt
	default:
		return h.legacy
	}
}
