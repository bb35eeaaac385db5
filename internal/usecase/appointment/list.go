package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/luxe-beauties-api/internal/domain/appointment"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// All returns every booking in the salon. The route serving it is public.
func (uc *ListAppointments) All(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.List(ctx)
}

// Mine returns only the bookings owned by userID.
func (uc *ListAppointments) Mine(ctx context.Context, userID uint) ([]models.Appointment, error) {
	return uc.repo.ListByUser(ctx, userID)
}
