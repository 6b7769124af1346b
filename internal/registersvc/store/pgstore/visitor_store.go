package pgstore

import (
	"context"
	"fmt"

	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VisitorStore struct {
	db *pgxpool.Pool
}

func NewVisitorStore(db *pgxpool.Pool) *VisitorStore {
	return &VisitorStore{db: db}
}

func (s *VisitorStore) CreateVisitor(ctx context.Context, v models.Visitor) (*models.Visitor, error) {
	id := uuid.New()

	query := `
		INSERT INTO visitors (id, name, company, visiting, entry_date, time_in)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := s.db.Exec(ctx, query, id, v.Name, v.Company, v.Visiting, v.Date, v.TimeIn); err != nil {
		return nil, fmt.Errorf("could not create visitor: %w", err)
	}

	v.ID = id.String()
	return &v, nil
}

func (s *VisitorStore) ListVisitors(ctx context.Context) ([]models.Visitor, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, company, visiting, entry_date, time_in
		FROM visitors
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("list visitors: %w", err)
	}
	defer rows.Close()

	visitors := []models.Visitor{}
	for rows.Next() {
		var (
			id uuid.UUID
			v  models.Visitor
		)
		if err := rows.Scan(&id, &v.Name, &v.Company, &v.Visiting, &v.Date, &v.TimeIn); err != nil {
			return nil, fmt.Errorf("scan visitor row: %w", err)
		}
		v.ID = id.String()
		visitors = append(visitors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return visitors, nil
}
