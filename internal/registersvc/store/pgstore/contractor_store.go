package pgstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/avvvet/signin-register/internal/registersvc/store"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const contractorColumns = `id, company, engineer, job_call_out, action, entry_date, time_in, time_out, phone_number, access_card_no`

// contractorColumn maps wire field names to table columns.
var contractorColumn = map[string]string{
	"company":      "company",
	"engineer":     "engineer",
	"jobCallOut":   "job_call_out",
	"action":       "action",
	"date":         "entry_date",
	"timeIn":       "time_in",
	"timeOut":      "time_out",
	"phoneNumber":  "phone_number",
	"accessCardNo": "access_card_no",
}

type ContractorStore struct {
	db *pgxpool.Pool
}

func NewContractorStore(db *pgxpool.Pool) *ContractorStore {
	return &ContractorStore{db: db}
}

func (s *ContractorStore) CreateContractor(ctx context.Context, c models.Contractor) (*models.Contractor, error) {
	id := uuid.New()

	query := `
		INSERT INTO contractors (` + contractorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.Exec(ctx, query, id,
		c.Company, c.Engineer, c.JobCallOut, c.Action, c.Date,
		c.TimeIn, c.TimeOut, c.PhoneNumber, c.AccessCardNo)
	if err != nil {
		return nil, fmt.Errorf("could not create contractor: %w", err)
	}

	c.ID = id.String()
	return &c, nil
}

func (s *ContractorStore) ListContractors(ctx context.Context) ([]models.Contractor, error) {
	rows, err := s.db.Query(ctx, `SELECT `+contractorColumns+` FROM contractors ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	defer rows.Close()

	contractors := []models.Contractor{}
	for rows.Next() {
		c, err := scanContractor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contractor row: %w", err)
		}
		contractors = append(contractors, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return contractors, nil
}

func (s *ContractorStore) UpdateContractor(ctx context.Context, id string, fields []models.Field) (*models.Contractor, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}

	query, args, err := buildContractorUpdate(uid, fields)
	if err != nil {
		return nil, err
	}

	c, err := scanContractor(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update contractor: %w", err)
	}
	return c, nil
}

// buildContractorUpdate returns an UPDATE ... RETURNING statement for the
// given fields, or a plain SELECT when there is nothing to set.
func buildContractorUpdate(id uuid.UUID, fields []models.Field) (string, []any, error) {
	args := []any{id}
	if len(fields) == 0 {
		return `SELECT ` + contractorColumns + ` FROM contractors WHERE id = $1`, args, nil
	}

	sets := make([]string, 0, len(fields))
	for _, f := range fields {
		col, ok := contractorColumn[f.Name]
		if !ok {
			return "", nil, fmt.Errorf("unknown contractor field %q", f.Name)
		}
		args = append(args, f.Value)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	query := `UPDATE contractors SET ` + strings.Join(sets, ", ") +
		` WHERE id = $1 RETURNING ` + contractorColumns
	return query, args, nil
}

func scanContractor(row pgx.Row) (*models.Contractor, error) {
	var (
		id uuid.UUID
		c  models.Contractor
	)
	err := row.Scan(&id,
		&c.Company, &c.Engineer, &c.JobCallOut, &c.Action, &c.Date,
		&c.TimeIn, &c.TimeOut, &c.PhoneNumber, &c.AccessCardNo)
	if err != nil {
		return nil, err
	}
	c.ID = id.String()
	return &c, nil
}
