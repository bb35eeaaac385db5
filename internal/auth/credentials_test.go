package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/infra/repository"
)

func newCredentialService() (*CredentialService, *repository.UserMemoryRepository) {
	users := repository.NewUserMemoryRepository()
	return NewCredentialService(users, bcrypt.MinCost), users
}

func TestCredentialService_Register(t *testing.T) {
	ctx := context.Background()
	svc, users := newCredentialService()

	user, err := svc.Register(ctx, "chi@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	_, err = svc.Register(ctx, "chi@example.com", "another-password")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDuplicateEmail))
	assert.Equal(t, 1, users.Count())
}

func TestCredentialService_DefaultCostIsTen(t *testing.T) {
	svc := NewCredentialService(repository.NewUserMemoryRepository(), 0)
	assert.Equal(t, 10, svc.cost)
}

func TestCredentialService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCredentialService()

	registered, err := svc.Register(ctx, "chi@example.com", "hunter22")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "chi@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, wrongPassword := svc.Authenticate(ctx, "chi@example.com", "nope")
	_, unknownEmail := svc.Authenticate(ctx, "ghost@example.com", "hunter22")

	assert.True(t, httperr.IsBusiness(wrongPassword, httperr.CodeInvalidCredentials))
	assert.True(t, httperr.IsBusiness(unknownEmail, httperr.CodeInvalidCredentials))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestCredentialService_RegisterHonorsCancelledContext(t *testing.T) {
	svc, users := newCredentialService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Register(ctx, "late@example.com", "pw")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, users.Count())
}

func TestCredentialService_LongPasswordsUseFirst72Bytes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newCredentialService()
	long := strings.Repeat("p", 72) + "tail"

	_, err := svc.Register(ctx, "long@example.com", long)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "long@example.com", long)
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "long@example.com", strings.Repeat("p", 72)+"other")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "long@example.com", strings.Repeat("p", 71))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidCredentials))
}
