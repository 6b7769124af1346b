package screen

import (
	"context"

	"github.com/avvvet/signin-register/internal/client"
	"github.com/avvvet/signin-register/internal/registersvc/models"
)

type visitorBackend struct{ c *client.Client }

func (b visitorBackend) List(ctx context.Context) ([]models.Visitor, error) {
	return b.c.ListVisitors(ctx)
}

func (b visitorBackend) Create(ctx context.Context, v models.Visitor) (*models.Visitor, error) {
	return b.c.CreateVisitor(ctx, v)
}

func (b visitorBackend) Update(context.Context, string, models.Visitor) (*models.Visitor, error) {
	return nil, ErrNotEditable
}

type contractorBackend struct{ c *client.Client }

func (b contractorBackend) List(ctx context.Context) ([]models.Contractor, error) {
	return b.c.ListContractors(ctx)
}

func (b contractorBackend) Create(ctx context.Context, ct models.Contractor) (*models.Contractor, error) {
	return b.c.CreateContractor(ctx, ct)
}

func (b contractorBackend) Update(ctx context.Context, id string, ct models.Contractor) (*models.Contractor, error) {
	return b.c.UpdateContractor(ctx, id, ct)
}

// NewVisitorScreen returns the visitor screen, create and list only.
func NewVisitorScreen(c *client.Client, opts ...Option[models.Visitor]) *Screen[models.Visitor] {
	return New[models.Visitor]("visitors", visitorBackend{c}, opts...)
}

// NewContractorScreen returns the contractor screen with edit enabled and the
// phone number and access card checks run before every submit.
func NewContractorScreen(c *client.Client, opts ...Option[models.Contractor]) *Screen[models.Contractor] {
	base := []Option[models.Contractor]{
		WithEdit[models.Contractor](),
		WithValidation(models.Contractor.Validate),
	}
	return New[models.Contractor]("contractors", contractorBackend{c}, append(base, opts...)...)
}
