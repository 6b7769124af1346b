package service

import (
	"context"

	"github.com/avvvet/signin-register/internal/comm"
	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/store"
)

type VisitorService struct {
	visitorStore store.VisitorStore
	opts         options
}

func NewVisitorService(visitorStore store.VisitorStore, opts ...Option) *VisitorService {
	return &VisitorService{
		visitorStore: visitorStore,
		opts:         buildOptions(opts),
	}
}

func (s *VisitorService) CreateVisitor(ctx context.Context, v models.Visitor) (*models.Visitor, error) {
	created, err := s.visitorStore.CreateVisitor(ctx, v)
	if err != nil {
		return nil, err
	}

	s.opts.publish(comm.VisitorSubject, comm.VisitorCreated, created)
	return created, nil
}

func (s *VisitorService) ListVisitors(ctx context.Context) ([]models.Visitor, error) {
	return s.visitorStore.ListVisitors(ctx)
}
