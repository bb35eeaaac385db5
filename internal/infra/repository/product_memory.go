package repository

import (
	"context"
	"sync"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

type ProductMemoryRepository struct {
	mu       sync.RWMutex
	seq      sequence
	products []models.Product
}

// NewProductMemoryRepository starts the id counter after the highest seeded id.
func NewProductMemoryRepository(seed []models.Product) *ProductMemoryRepository {
	r := &ProductMemoryRepository{
		seq:      newSequence(),
		products: make([]models.Product, 0, len(seed)),
	}
	for _, p := range seed {
		r.products = append(r.products, p)
		r.seq.observe(p.ID)
	}
	return r
}

func (r *ProductMemoryRepository) indexOf(id uint) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *ProductMemoryRepository) List(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductMemoryRepository) Get(ctx context.Context, id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	p := r.products[idx]
	return &p, nil
}

func (r *ProductMemoryRepository) Create(ctx context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.seq.take()
	r.products = append(r.products, *p)
	return nil
}

// Replace overwrites the stored product, keeping its id.
func (r *ProductMemoryRepository) Replace(
	ctx context.Context,
	id uint,
	fn func(p *models.Product),
) (*models.Product, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}

	p := r.products[idx]
	fn(&p)
	p.ID = id
	r.products[idx] = p
	return &p, nil
}

func (r *ProductMemoryRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	r.products = append(r.products[:idx], r.products[idx+1:]...)
	return nil
}

func (r *ProductMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products)
}
