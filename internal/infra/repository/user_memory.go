package repository

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

type UserMemoryRepository struct {
	mu      sync.RWMutex
	seq     sequence
	users   []models.User
	byEmail map[string]int
	now     func() time.Time
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{
		seq:     newSequence(),
		byEmail: make(map[string]int),
		now:     time.Now,
	}
}

// --------------------------------------------------
// Create / Lookup
// --------------------------------------------------

// CreateIfAbsent stores u unless a user with the same email exists.
func (r *UserMemoryRepository) CreateIfAbsent(
	ctx context.Context,
	u *models.User,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return ErrDuplicateEmail
	}

	u.ID = r.seq.take()
	u.CreatedAt = r.now().UTC()

	r.users = append(r.users, *u)
	r.byEmail[u.Email] = len(r.users) - 1
	return nil
}

func (r *UserMemoryRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	u := r.users[idx]
	return &u, nil
}

func (r *UserMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
