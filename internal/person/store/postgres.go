package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"demonym/internal/person/models"
	"demonym/internal/sentinel"
	"demonym/pkg/nationality"
)

// Postgres persists persons in PostgreSQL. The nationality column is a
// nullable CHAR(2); the field's Valuer/Scanner handle the string coercion
// so the database only ever sees plain codes.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed person store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, p *models.Person) error {
	if p == nil {
		return fmt.Errorf("person is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO persons (id, full_name, nationality, created_at)
		 VALUES ($1, $2, $3, $4)`,
		p.ID, p.FullName, p.Nationality, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, personID uuid.UUID) (*models.Person, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, full_name, nationality, created_at FROM persons WHERE id = $1`,
		personID,
	)
	p, err := scanPerson(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("person not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find person by id: %w", err)
	}
	return p, nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, full_name, nationality, created_at FROM persons ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

// ListByNationality filters on the stored code. The code is passed as a
// plain string, matching the lookup coercion the field applies on writes.
func (s *Postgres) ListByNationality(ctx context.Context, code string) ([]*models.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, full_name, nationality, created_at FROM persons
		 WHERE nationality = $1 ORDER BY created_at DESC`,
		code,
	)
	if err != nil {
		return nil, fmt.Errorf("list persons by nationality: %w", err)
	}
	defer rows.Close()
	return collect(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	var p models.Person
	var nat nationality.Nationality
	if err := row.Scan(&p.ID, &p.FullName, &nat, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Nationality = nat
	return &p, nil
}

func collect(rows *sql.Rows) ([]*models.Person, error) {
	var out []*models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate persons: %w", err)
	}
	return out, nil
}
