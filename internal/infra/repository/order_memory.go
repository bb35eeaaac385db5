package repository

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

// OrderMemoryRepository is append-only; orders are never updated or removed.
type OrderMemoryRepository struct {
	mu     sync.RWMutex
	seq    sequence
	orders []models.Order
	now    func() time.Time
}

func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{
		seq: newSequence(),
		now: time.Now,
	}
}

func (r *OrderMemoryRepository) Append(ctx context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.seq.take()
	o.Date = r.now().UTC()
	r.orders = append(r.orders, o.Clone())
	return nil
}

func (r *OrderMemoryRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Order, len(r.orders))
	for i, o := range r.orders {
		out[i] = o.Clone()
	}
	return out, nil
}
