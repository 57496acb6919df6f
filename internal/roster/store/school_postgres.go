package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	"rollbook/pkg/platform/sentinel"
	"rollbook/pkg/platform/tx"
)

// PostgresSchoolStore persists schools in PostgreSQL. All methods join a
// transaction carried in ctx when one is present.
type PostgresSchoolStore struct {
	db *sql.DB
}

func NewPostgresSchoolStore(db *sql.DB) *PostgresSchoolStore {
	return &PostgresSchoolStore{db: db}
}

func (s *PostgresSchoolStore) Create(ctx context.Context, school *models.School) error {
	q := tx.Resolve(ctx, s.db)
	_, err := q.ExecContext(ctx, `
		INSERT INTO schools (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.UUID(school.ID), school.Name, school.CreatedAt, school.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create school: %w", err)
	}
	return nil
}

func (s *PostgresSchoolStore) FindByID(ctx context.Context, schoolID id.SchoolID) (*models.School, error) {
	q := tx.Resolve(ctx, s.db)
	var school models.School
	var raw uuid.UUID
	err := q.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM schools WHERE id = $1
	`, uuid.UUID(schoolID)).Scan(&raw, &school.Name, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find school: %w", err)
	}
	school.ID = id.SchoolID(raw)
	return &school, nil
}

func (s *PostgresSchoolStore) List(ctx context.Context) ([]models.School, error) {
	q := tx.Resolve(ctx, s.db)
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at FROM schools ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	defer rows.Close()

	var out []models.School
	for rows.Next() {
		var school models.School
		var raw uuid.UUID
		if err := rows.Scan(&raw, &school.Name, &school.CreatedAt, &school.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan school: %w", err)
		}
		school.ID = id.SchoolID(raw)
		out = append(out, school)
	}
	return out, rows.Err()
}

func (s *PostgresSchoolStore) Update(ctx context.Context, school *models.School) error {
	q := tx.Resolve(ctx, s.db)
	res, err := q.ExecContext(ctx, `
		UPDATE schools SET name = $2, updated_at = $3 WHERE id = $1
	`, uuid.UUID(school.ID), school.Name, school.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update school: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresSchoolStore) Delete(ctx context.Context, schoolID id.SchoolID) error {
	q := tx.Resolve(ctx, s.db)
	res, err := q.ExecContext(ctx, `DELETE FROM schools WHERE id = $1`, uuid.UUID(schoolID))
	if err != nil {
		return fmt.Errorf("delete school: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresSchoolStore) Exists(ctx context.Context, schoolID id.SchoolID) (bool, error) {
	q := tx.Resolve(ctx, s.db)
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM schools WHERE id = $1)
	`, uuid.UUID(schoolID)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("school exists: %w", err)
	}
	return exists, nil
}

// requireRow converts "zero rows affected" into ErrNotFound so SQL stores
// report the same facts the memory stores do.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
