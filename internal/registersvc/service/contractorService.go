package service

import (
	"context"
	"fmt"

	"github.com/avvvet/signin-register/internal/comm"
	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/store"
)

type ContractorService struct {
	contractorStore store.ContractorStore
	opts            options
}

func NewContractorService(contractorStore store.ContractorStore, opts ...Option) *ContractorService {
	return &ContractorService{
		contractorStore: contractorStore,
		opts:            buildOptions(opts),
	}
}

func (s *ContractorService) CreateContractor(ctx context.Context, c models.Contractor) (*models.Contractor, error) {
	if s.opts.strict {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	created, err := s.contractorStore.CreateContractor(ctx, c)
	if err != nil {
		return nil, err
	}

	s.opts.publish(comm.ContractorSubject, comm.ContractorCreated, created)
	return created, nil
}

func (s *ContractorService) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	return s.contractorStore.ListContractors(ctx)
}

// UpdateContractor overwrites the fields present in p. Concurrent updates
// of the same record are last write wins.
func (s *ContractorService) UpdateContractor(ctx context.Context, id string, p models.ContractorPayload) (*models.Contractor, error) {
	if s.opts.strict {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	updated, err := s.contractorStore.UpdateContractor(ctx, id, p.Fields())
	if err != nil {
		return nil, err
	}

	s.opts.publish(comm.ContractorSubject, comm.ContractorUpdated, updated)
	return updated, nil
}
