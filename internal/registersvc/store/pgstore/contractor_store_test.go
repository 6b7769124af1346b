package pgstore

import (
	"testing"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildContractorUpdate(t *testing.T) {
	id := uuid.New()

	query, args, err := buildContractorUpdate(id, []models.Field{
		{Name: "timeOut", Value: "17:30"},
		{Name: "date", Value: "2024-02-01"},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"UPDATE contractors SET time_out = $2, entry_date = $3 WHERE id = $1 RETURNING "+contractorColumns,
		query)
	assert.Equal(t, []any{id, "17:30", "2024-02-01"}, args)
}

func TestBuildContractorUpdateNoFields(t *testing.T) {
	id := uuid.New()

	query, args, err := buildContractorUpdate(id, nil)
	require.NoError(t, err)
	assert.Contains(t, query, "SELECT "+contractorColumns)
	assert.Equal(t, []any{id}, args)
}

func TestBuildContractorUpdateUnknownField(t *testing.T) {
	_, _, err := buildContractorUpdate(uuid.New(), []models.Field{{Name: "id; DROP TABLE contractors", Value: "x"}})
	assert.Error(t, err)
}
