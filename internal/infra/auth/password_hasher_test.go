package auth

import (
	"strings"
	"testing"

	"hotelhrm/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher_SelectsAlgorithm(t *testing.T) {
	tests := []struct {
		algorithm string
		prefix    string
	}{
		{config.HasherArgon2id, "$argon2id$"},
		{"", "$argon2id$"},
		{config.HasherBcrypt, "$2a$"},
		{config.HasherSHA256, "XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg="},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			cfg := &config.Config{Auth: &config.AuthConfig{
				PasswordHasher: tt.algorithm,
				BcryptCost:     bcrypt.MinCost,
				Argon2:         &config.Argon2Config{Memory: 1024, Parallelism: 1},
			}}
			hasher := NewPasswordHasher(PasswordHasherParams{Config: cfg})

			digest, err := hasher.Hash("password")
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(digest, tt.prefix), digest)
			assert.True(t, hasher.Check("password", digest))
			assert.False(t, hasher.NeedsRehash(digest))
		})
	}
}

func TestCompositeHasher_VerifiesEveryFormat(t *testing.T) {
	hasher := newCompositeHasher(config.HasherArgon2id, testArgon2Params, bcrypt.MinCost)

	legacy := NewSHA256Hasher().mustHash(t, "password")
	bcryptDigest, err := NewBcryptHasher(bcrypt.MinCost).Hash("password")
	require.NoError(t, err)
	argonDigest, err := hasher.Hash("password")
	require.NoError(t, err)

	for _, digest := range []string{legacy, bcryptDigest, argonDigest} {
		assert.True(t, hasher.Check("password", digest), digest)
		assert.False(t, hasher.Check("wrong", digest), digest)
	}

	assert.True(t, hasher.NeedsRehash(legacy))
	assert.True(t, hasher.NeedsRehash(bcryptDigest))
	assert.False(t, hasher.NeedsRehash(argonDigest))
}

func TestCompositeHasher_LegacyPrimaryNeverRehashes(t *testing.T) {
	hasher := newCompositeHasher(config.HasherSHA256, testArgon2Params, bcrypt.MinCost)

	assert.False(t, hasher.NeedsRehash(NewSHA256Hasher().mustHash(t, "password")))
}
