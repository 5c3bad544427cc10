package auth

import (
	"testing"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher(policy *config.PasswordStrengthConfig) *bcryptHasher {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: policy,
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("Marketplace42")
	require.NoError(t, err)
	assert.NotEqual(t, "Marketplace42", hash)

	assert.True(t, hasher.Check("Marketplace42", hash))
	assert.False(t, hasher.Check("Marketplace43", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("Marketplace42", "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := newTestHasher(nil)

	hash, err := hasher.Hash("Marketplace42")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_FallsBackToDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}).(*bcryptHasher)

	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher(nil)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "strong", password: "Marketplace42", valid: true},
		{name: "too short", password: "Ab1", valid: false},
		{name: "no uppercase", password: "marketplace42", valid: false},
		{name: "no lowercase", password: "MARKETPLACE42", valid: false},
		{name: "no digit", password: "Marketplace", valid: false},
		{name: "forbidden word", password: "MyPassword42", valid: false},
		{name: "longer than bcrypt accepts", password: "Aa1" + string(make([]byte, 80)), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
		})
	}
}

func TestBcryptHasher_RequireSpecial(t *testing.T) {
	hasher := newTestHasher(&config.PasswordStrengthConfig{MinLength: 6, RequireSpecial: true})

	assert.Error(t, hasher.ValidatePasswordStrength("plainer"))
	assert.NoError(t, hasher.ValidatePasswordStrength("plain#er"))
}
