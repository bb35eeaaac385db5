package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	// Create assigns the id and stores a copy of ap.
	Create(ctx context.Context, ap *models.Appointment) error

	Get(ctx context.Context, id uint) (*models.Appointment, error)

	List(ctx context.Context) ([]models.Appointment, error)

	ListByUser(ctx context.Context, userID uint) ([]models.Appointment, error)

	// Update runs fn on the stored record under the repository lock and saves
	// the result only when fn returns nil.
	Update(
		ctx context.Context,
		id uint,
		fn func(ap *models.Appointment) error,
	) (*models.Appointment, error)

	Delete(ctx context.Context, id uint) error
}
