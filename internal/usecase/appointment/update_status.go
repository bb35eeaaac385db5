package appointment

import (
	"context"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	domain "github.com/BruksfildServices01/luxe-beauties-api/internal/domain/appointment"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

type UpdateStatusInput struct {
	ActorID       uint
	AppointmentID uint
	Status        string
	Notes         *string
}

// UpdateAppointmentStatus lets any signed-in user change status and notes.
type UpdateAppointmentStatus struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	logg   *logger.Logger
	strict bool
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	logg *logger.Logger,
	strict bool,
) *UpdateAppointmentStatus {
	if logg == nil {
		logg = logger.Nop()
	}
	return &UpdateAppointmentStatus{
		repo:   repo,
		audit:  audit,
		logg:   logg,
		strict: strict,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	var previous string
	ap, err := uc.repo.Update(ctx, in.AppointmentID, func(ap *models.Appointment) error {
		previous = ap.Status
		return domain.ApplyUpdate(ap, domain.StatusUpdate{
			Status: in.Status,
			Notes:  in.Notes,
		}, uc.strict)
	})
	if err != nil {
		return nil, translate(err)
	}

	if in.Status != "" && !domain.Status(in.Status).IsKnown() {
		uc.logg.Warn(
			uc.logg.WithFields(ctx, map[string]any{
				"appointment_id": ap.ID,
				"status":         in.Status,
			}),
			"appointment status outside the salon workflow",
		)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from":          previous,
			"to":            ap.Status,
			"notes_changed": in.Notes != nil,
		},
	})

	return ap, nil
}
