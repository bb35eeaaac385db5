package appointment

import (
	"errors"

	domain "github.com/BruksfildServices01/luxe-beauties-api/internal/domain/appointment"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
)

func translate(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return err
}
