package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	domain "github.com/BruksfildServices01/luxe-beauties-api/internal/domain/appointment"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/infra/repository"
)

type fixture struct {
	repo    *repository.AppointmentMemoryRepository
	audit   *audit.Logger
	events  *audit.Dispatcher
	create  *CreateAppointment
	list    *ListAppointments
	update  *UpdateAppointmentStatus
	confirm *ConfirmAppointmentPayment
	remove  *DeleteAppointment
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	repo := repository.NewAppointmentMemoryRepository()
	auditLogger := audit.New(nil)
	events := audit.NewDispatcher(auditLogger, nil, 100)

	return &fixture{
		repo:    repo,
		audit:   auditLogger,
		events:  events,
		create:  NewCreateAppointment(repo, events),
		list:    NewListAppointments(repo),
		update:  NewUpdateAppointmentStatus(repo, events, nil, strict),
		confirm: NewConfirmAppointmentPayment(repo, events),
		remove:  NewDeleteAppointment(repo, events),
	}
}

func (f *fixture) book(t *testing.T, userID uint) uint {
	t.Helper()
	ap, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		UserID:  userID,
		Service: "Silk Press",
		Date:    "2025-06-01",
		Time:    "10:00",
	})
	require.NoError(t, err)
	return ap.ID
}

func TestCreateAppointment_InitialState(t *testing.T) {
	f := newFixture(t, false)
	fixed := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	f.create.now = func() time.Time { return fixed }

	ap, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		UserID:       7,
		Service:      "Silk Press",
		Date:         "2025-06-01",
		Time:         "10:00",
		CustomerName: "Ada",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), ap.ID)
	assert.Equal(t, uint(7), ap.UserID)
	assert.Equal(t, string(domain.StatusPendingPayment), ap.Status)
	assert.Equal(t, string(domain.PaymentUnpaid), ap.PaymentStatus)
	assert.False(t, ap.DepositPaid)
	assert.Nil(t, ap.StylistID)
	assert.Nil(t, ap.PaidAt)
	assert.True(t, fixed.Equal(ap.CreatedAt))
	assert.Equal(t, "Ada", ap.CustomerName)
}

func TestCreateAppointment_RequiresServiceDateTime(t *testing.T) {
	f := newFixture(t, false)
	inputs := []CreateAppointmentInput{
		{Date: "2025-06-01", Time: "10:00"},
		{Service: "Silk Press", Time: "10:00"},
		{Service: "Silk Press", Date: "2025-06-01"},
	}
	for _, in := range inputs {
		_, err := f.create.Execute(context.Background(), in)
		assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
	}
	assert.Zero(t, f.repo.Count())
}

func TestCreateAppointment_BlankStylistIsNull(t *testing.T) {
	f := newFixture(t, false)
	blank := "  "
	ap, err := f.create.Execute(context.Background(), CreateAppointmentInput{
		UserID: 1, Service: "Braids", Date: "d", Time: "t", StylistID: &blank,
	})
	require.NoError(t, err)
	assert.Nil(t, ap.StylistID)
}

func TestListAppointments_MineOnlyReturnsOwner(t *testing.T) {
	f := newFixture(t, false)
	f.book(t, 1)
	f.book(t, 2)
	f.book(t, 1)

	all, err := f.list.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := f.list.Mine(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, uint(2), mine[0].UserID)
}

func TestConfirmPayment_Transition(t *testing.T) {
	f := newFixture(t, false)
	id := f.book(t, 7)
	amount := 30.0

	ap, err := f.confirm.Execute(context.Background(), ConfirmPaymentInput{
		ActorID:         7,
		AppointmentID:   id,
		PaymentIntentID: "pi_123",
		DepositAmount:   &amount,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, string(domain.PaymentDepositPaid), ap.PaymentStatus)
	assert.True(t, ap.DepositPaid)
	assert.Equal(t, "pi_123", ap.PaymentIntentID)
	require.NotNil(t, ap.PaidAt)
	assert.False(t, ap.PaidAt.IsZero())

	stored, err := f.repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, ap.Status, stored.Status)
}

func TestConfirmPayment_UnknownAppointment(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.confirm.Execute(context.Background(), ConfirmPaymentInput{AppointmentID: 404})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestUpdateStatus_AnyUserCanSetFreeText(t *testing.T) {
	f := newFixture(t, false)
	id := f.book(t, 1)
	notes := "bring photos"

	ap, err := f.update.Execute(context.Background(), UpdateStatusInput{
		ActorID:       2,
		AppointmentID: id,
		Status:        "stylist running late",
		Notes:         &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "stylist running late", ap.Status)
	assert.Equal(t, "bring photos", ap.Notes)
	assert.Equal(t, uint(1), ap.UserID)
}

func TestUpdateStatus_StrictModeEnforcesWorkflow(t *testing.T) {
	f := newFixture(t, true)
	id := f.book(t, 1)

	_, err := f.update.Execute(context.Background(), UpdateStatusInput{AppointmentID: id, Status: "confirmed"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

	_, err = f.update.Execute(context.Background(), UpdateStatusInput{AppointmentID: id, Status: "whatever"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))

	ap, err := f.update.Execute(context.Background(), UpdateStatusInput{AppointmentID: id, Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", ap.Status)
}

func TestUpdateStatus_UnknownAppointment(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.update.Execute(context.Background(), UpdateStatusInput{AppointmentID: 9, Status: "pending"})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t, false)
	id := f.book(t, 1)

	require.NoError(t, f.remove.Execute(context.Background(), 1, id))

	err := f.remove.Execute(context.Background(), 1, id)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))

	_, err = f.confirm.Execute(context.Background(), ConfirmPaymentInput{AppointmentID: id})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
}

func TestLifecycle_EmitsAuditTrail(t *testing.T) {
	f := newFixture(t, false)
	id := f.book(t, 7)

	_, err := f.confirm.Execute(context.Background(), ConfirmPaymentInput{ActorID: 7, AppointmentID: id})
	require.NoError(t, err)
	_, err = f.update.Execute(context.Background(), UpdateStatusInput{ActorID: 1, AppointmentID: id, Status: "confirmed"})
	require.NoError(t, err)
	require.NoError(t, f.remove.Execute(context.Background(), 1, id))

	f.events.Close()

	var actions []string
	for _, entry := range f.audit.Recent() {
		actions = append(actions, entry.Action)
	}
	assert.Equal(t, []string{
		"appointment_created",
		"appointment_payment_confirmed",
		"appointment_status_updated",
		"appointment_deleted",
	}, actions)
}
