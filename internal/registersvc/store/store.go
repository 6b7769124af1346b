package store

import (
	"context"

	"github.com/avvvet/signin-register/internal/registersvc/models"
)

type VisitorStore interface {
	CreateVisitor(ctx context.Context, v models.Visitor) (*models.Visitor, error)
	ListVisitors(ctx context.Context) ([]models.Visitor, error)
}

type ContractorStore interface {
	CreateContractor(ctx context.Context, c models.Contractor) (*models.Contractor, error)
	ListContractors(ctx context.Context) ([]models.Contractor, error)
	// UpdateContractor sets the given fields on the record and returns it
	// as stored after the update.
	UpdateContractor(ctx context.Context, id string, fields []models.Field) (*models.Contractor, error)
}
