// Package memstore keeps register records in process memory. It backs
// STORE_DRIVER=memory for local runs and the service tests.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/store"
	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	visitors    []models.Visitor
	contractors []models.Contractor
}

func New() *Store {
	return &Store{}
}

func (s *Store) CreateVisitor(_ context.Context, v models.Visitor) (*models.Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = uuid.NewString()
	s.visitors = append(s.visitors, v)
	return &v, nil
}

func (s *Store) ListVisitors(_ context.Context) ([]models.Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Visitor{}, s.visitors...), nil
}

func (s *Store) CreateContractor(_ context.Context, c models.Contractor) (*models.Contractor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	s.contractors = append(s.contractors, c)
	return &c, nil
}

func (s *Store) ListContractors(_ context.Context) ([]models.Contractor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Contractor{}, s.contractors...), nil
}

func (s *Store) UpdateContractor(_ context.Context, id string, fields []models.Field) (*models.Contractor, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contractors {
		if s.contractors[i].ID != id {
			continue
		}
		c := s.contractors[i]
		for _, f := range fields {
			if err := setField(&c, f); err != nil {
				return nil, err
			}
		}
		s.contractors[i] = c
		return &c, nil
	}
	return nil, store.ErrNotFound
}

func setField(c *models.Contractor, f models.Field) error {
	switch f.Name {
	case "company":
		c.Company = f.Value
	case "engineer":
		c.Engineer = f.Value
	case "jobCallOut":
		c.JobCallOut = f.Value
	case "action":
		c.Action = f.Value
	case "date":
		c.Date = f.Value
	case "timeIn":
		c.TimeIn = f.Value
	case "timeOut":
		c.TimeOut = f.Value
	case "phoneNumber":
		c.PhoneNumber = f.Value
	case "accessCardNo":
		c.AccessCardNo = f.Value
	default:
		return fmt.Errorf("unknown contractor field %q", f.Name)
	}
	return nil
}
