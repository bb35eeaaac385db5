package repository

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/luxe-beauties-api/internal/domain/appointment"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

type AppointmentMemoryRepository struct {
	mu           sync.RWMutex
	seq          sequence
	appointments []models.Appointment
}

var _ domain.Repository = (*AppointmentMemoryRepository)(nil)

func NewAppointmentMemoryRepository() *AppointmentMemoryRepository {
	return &AppointmentMemoryRepository{seq: newSequence()}
}

func (r *AppointmentMemoryRepository) indexOf(id uint) int {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			return i
		}
	}
	return -1
}

// --------------------------------------------------
// Appointment (create / read)
// --------------------------------------------------

func (r *AppointmentMemoryRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	ap.ID = r.seq.take()
	r.appointments = append(r.appointments, ap.Clone())
	return nil
}

func (r *AppointmentMemoryRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	ap := r.appointments[idx].Clone()
	return &ap, nil
}

func (r *AppointmentMemoryRepository) List(
	ctx context.Context,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		out = append(out, ap.Clone())
	}
	return out, nil
}

func (r *AppointmentMemoryRepository) ListByUser(
	ctx context.Context,
	userID uint,
) ([]models.Appointment, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.UserID == userID {
			out = append(out, ap.Clone())
		}
	}
	return out, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentMemoryRepository) Update(
	ctx context.Context,
	id uint,
	fn func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	working := r.appointments[idx].Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.ID = id

	r.appointments[idx] = working.Clone()
	return &working, nil
}

func (r *AppointmentMemoryRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return domain.ErrNotFound
	}
	r.appointments = append(r.appointments[:idx], r.appointments[idx+1:]...)
	return nil
}

func (r *AppointmentMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.appointments)
}
