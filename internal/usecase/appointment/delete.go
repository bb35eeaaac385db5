package appointment

import (
	"context"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	domain "github.com/BruksfildServices01/luxe-beauties-api/internal/domain/appointment"
)

// DeleteAppointment removes the booking outright. Any payment linkage is
// dropped with it; refunds are handled outside this service.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actorID uint,
	appointmentID uint,
) error {

	if err := uc.repo.Delete(ctx, appointmentID); err != nil {
		return translate(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
