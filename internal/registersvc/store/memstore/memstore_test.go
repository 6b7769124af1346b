package memstore

import (
	"context"
	"testing"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ store.VisitorStore    = (*Store)(nil)
	_ store.ContractorStore = (*Store)(nil)
)

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	_, err := s.CreateVisitor(ctx, models.Visitor{Name: "Ann"})
	require.NoError(t, err)

	list, err := s.ListVisitors(ctx)
	require.NoError(t, err)
	list[0].Name = "changed"

	again, err := s.ListVisitors(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ann", again[0].Name)
}

func TestUpdateContractorUnknownField(t *testing.T) {
	ctx := context.Background()
	s := New()
	c, err := s.CreateContractor(ctx, models.Contractor{Company: "Acme"})
	require.NoError(t, err)

	_, err = s.UpdateContractor(ctx, c.ID, []models.Field{{Name: "bogus", Value: "x"}})
	assert.Error(t, err)

	list, err := s.ListContractors(ctx)
	require.NoError(t, err)
	assert.Equal(t, *c, list[0])
}
