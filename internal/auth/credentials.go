package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/infra/repository"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

// UserStore is the credential store consumed by CredentialService.
type UserStore interface {
	CreateIfAbsent(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// bcrypt only reads the first 72 bytes of a password.
const maxPasswordBytes = 72

// passwordKey truncates password to what bcrypt reads, so longer passwords
// hash and compare on the same prefix instead of failing.
func passwordKey(password string) []byte {
	key := []byte(password)
	if len(key) > maxPasswordBytes {
		key = key[:maxPasswordBytes]
	}
	return key
}

type CredentialService struct {
	users UserStore
	cost  int
}

func NewCredentialService(users UserStore, cost int) *CredentialService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &CredentialService{users: users, cost: cost}
}

func (s *CredentialService) Register(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	// cheap pre-check so a taken email does not pay for a hash
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateEmail)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword(passwordKey(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.users.CreateIfAbsent(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, httperr.ErrBusiness(httperr.CodeDuplicateEmail)
		}
		return nil, err
	}
	return user, nil
}

// Authenticate answers invalid_credentials for unknown emails and wrong
// passwords alike.
func (s *CredentialService) Authenticate(
	ctx context.Context,
	email string,
	password string,
) (*models.User, error) {

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), passwordKey(password)); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	return user, nil
}
