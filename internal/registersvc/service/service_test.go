package service

import (
	"context"
	"testing"

	"github.com/avvvet/signin-register/internal/comm"
	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/store"
	"github.com/avvvet/signin-register/internal/registersvc/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	subject, eventType string
	payload            interface{}
}

type fakePublisher struct {
	events []recordedEvent
}

func (f *fakePublisher) PublishEvent(subject, eventType string, payload interface{}) {
	f.events = append(f.events, recordedEvent{subject, eventType, payload})
}

func text(s string) *models.Text {
	t := models.Text(s)
	return &t
}

func TestCreateVisitorThenList(t *testing.T) {
	ctx := context.Background()
	events := &fakePublisher{}
	svc := NewVisitorService(memstore.New(), WithEvents(events))

	in := models.Visitor{Name: "Ann", Company: "Acme", Visiting: "Reception", Date: "2024-02-01", TimeIn: "09:00"}
	a, err := svc.CreateVisitor(ctx, in)
	require.NoError(t, err)
	b, err := svc.CreateVisitor(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	list, err := svc.ListVisitors(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	in.ID = a.ID
	assert.Equal(t, in, list[0])

	require.Len(t, events.events, 2)
	assert.Equal(t, comm.VisitorSubject, events.events[0].subject)
	assert.Equal(t, comm.VisitorCreated, events.events[0].eventType)
}

func TestUpdateContractorThenList(t *testing.T) {
	ctx := context.Background()
	svc := NewContractorService(memstore.New())

	a, err := svc.CreateContractor(ctx, models.Contractor{Company: "Acme", Engineer: "Bo", PhoneNumber: "123456789"})
	require.NoError(t, err)
	b, err := svc.CreateContractor(ctx, models.Contractor{Company: "Other", Engineer: "Cy"})
	require.NoError(t, err)

	patch := models.PayloadFrom(models.Contractor{
		Company: "Acme Ltd", Engineer: "Dee", JobCallOut: "J-1", Action: "Fixed",
		Date: "2024-02-02", TimeIn: "08:00", TimeOut: "12:00", PhoneNumber: "987654321", AccessCardNo: "X1",
	})
	updated, err := svc.UpdateContractor(ctx, a.ID, patch)
	require.NoError(t, err)

	want := patch.Contractor()
	want.ID = a.ID
	assert.Equal(t, want, *updated)

	list, err := svc.ListContractors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Contractor{want, *b}, list)
}

func TestUpdateContractorPartialKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	svc := NewContractorService(memstore.New())

	a, err := svc.CreateContractor(ctx, models.Contractor{Company: "Acme", Engineer: "Bo", TimeIn: "09:00"})
	require.NoError(t, err)

	updated, err := svc.UpdateContractor(ctx, a.ID, models.ContractorPayload{TimeOut: text("17:30")})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "09:00", updated.TimeIn)
	assert.Equal(t, "17:30", updated.TimeOut)
}

func TestUpdateContractorUnknownIDChangesNothing(t *testing.T) {
	ctx := context.Background()
	events := &fakePublisher{}
	st := memstore.New()
	svc := NewContractorService(st, WithEvents(events))

	a, err := svc.CreateContractor(ctx, models.Contractor{Company: "Acme"})
	require.NoError(t, err)

	_, err = svc.UpdateContractor(ctx, "0b0f6f5e-5b7e-4a53-9d2b-1f1c7c0e4a11", models.ContractorPayload{Company: text("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)

	list, err := svc.ListContractors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Contractor{*a}, list)
	assert.Len(t, events.events, 1, "only the create is published")
}

func TestStrictValidation(t *testing.T) {
	ctx := context.Background()

	lenient := NewContractorService(memstore.New())
	_, err := lenient.CreateContractor(ctx, models.Contractor{PhoneNumber: "12345"})
	assert.NoError(t, err, "the API accepts any string by default")

	strict := NewContractorService(memstore.New(), WithStrictValidation(true))
	_, err = strict.CreateContractor(ctx, models.Contractor{PhoneNumber: "12345"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = strict.CreateContractor(ctx, models.Contractor{PhoneNumber: "123456789", AccessCardNo: "ABCDEFG"})
	assert.ErrorIs(t, err, ErrValidation)

	c, err := strict.CreateContractor(ctx, models.Contractor{PhoneNumber: "123456789", AccessCardNo: "AB12"})
	require.NoError(t, err)

	_, err = strict.UpdateContractor(ctx, c.ID, models.ContractorPayload{AccessCardNo: text("ABCDEFG")})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = strict.UpdateContractor(ctx, c.ID, models.ContractorPayload{Company: text("Acme")})
	assert.NoError(t, err)
}
