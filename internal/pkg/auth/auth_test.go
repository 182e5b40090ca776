package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ihm/internal/core/domain/model/account"
	"ihm/internal/core/domain/model/kernel"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("correct horse battery staple")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("", time.Hour)
	assert.Error(t, err)
}

func TestTokenService_IssueAndParse(t *testing.T) {
	svc, err := NewTokenService("test-secret-key-long-enough-for-hmac", time.Hour)
	assert.NoError(t, err)

	userID := kernel.NewUUID()
	token, err := svc.Issue(userID, account.RoleSupplier)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	actor, err := svc.Parse(token)
	assert.NoError(t, err)
	assert.True(t, userID.IsEqual(actor.UserID))
	assert.Equal(t, account.RoleSupplier, actor.Role)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewTokenService("issuer-secret-key-long-enough", time.Hour)
	assert.NoError(t, err)
	verifier, err := NewTokenService("verifier-secret-key-long-enough", time.Hour)
	assert.NoError(t, err)

	token, err := issuer.Issue(kernel.NewUUID(), account.RoleCustomer)
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewTokenService("test-secret-key-long-enough-for-hmac", time.Hour)
	assert.NoError(t, err)
	svc.ttl = -time.Minute

	token, err := svc.Issue(kernel.NewUUID(), account.RoleOperator)
	assert.NoError(t, err)

	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewTokenService("test-secret-key-long-enough-for-hmac", time.Hour)
	assert.NoError(t, err)

	_, err = svc.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
