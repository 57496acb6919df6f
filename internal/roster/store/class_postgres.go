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

// PostgresClassStore persists classes in PostgreSQL.
type PostgresClassStore struct {
	db *sql.DB
}

func NewPostgresClassStore(db *sql.DB) *PostgresClassStore {
	return &PostgresClassStore{db: db}
}

func (s *PostgresClassStore) Create(ctx context.Context, class *models.Class) error {
	q := tx.Resolve(ctx, s.db)
	_, err := q.ExecContext(ctx, `
		INSERT INTO classes (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.UUID(class.ID), class.Name, class.Description, class.CreatedAt, class.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

func (s *PostgresClassStore) FindByID(ctx context.Context, classID id.ClassID) (*models.Class, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `
		SELECT id, name, description, created_at, updated_at FROM classes WHERE id = $1
	`, uuid.UUID(classID))
	class, err := scanClass(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	return class, nil
}

// FindByIDs returns the classes whose ids exist; missing ids are dropped.
func (s *PostgresClassStore) FindByIDs(ctx context.Context, classIDs []id.ClassID) ([]models.Class, error) {
	if len(classIDs) == 0 {
		return nil, nil
	}
	raw := make([]uuid.UUID, len(classIDs))
	for i, classID := range classIDs {
		raw[i] = uuid.UUID(classID)
	}
	q := tx.Resolve(ctx, s.db)
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM classes WHERE id = ANY($1)
	`, pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("find classes: %w", err)
	}
	defer rows.Close()
	return collectClasses(rows)
}

func (s *PostgresClassStore) List(ctx context.Context) ([]models.Class, error) {
	q := tx.Resolve(ctx, s.db)
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, description, created_at, updated_at FROM classes ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()
	return collectClasses(rows)
}

func (s *PostgresClassStore) Update(ctx context.Context, class *models.Class) error {
	q := tx.Resolve(ctx, s.db)
	res, err := q.ExecContext(ctx, `
		UPDATE classes SET name = $2, description = $3, updated_at = $4 WHERE id = $1
	`, uuid.UUID(class.ID), class.Name, class.Description, class.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresClassStore) Delete(ctx context.Context, classID id.ClassID) error {
	q := tx.Resolve(ctx, s.db)
	res, err := q.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, uuid.UUID(classID))
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return requireRow(res)
}

func scanClass(scan func(dest ...any) error) (*models.Class, error) {
	var class models.Class
	var raw uuid.UUID
	if err := scan(&raw, &class.Name, &class.Description, &class.CreatedAt, &class.UpdatedAt); err != nil {
		return nil, err
	}
	class.ID = id.ClassID(raw)
	return &class, nil
}

func collectClasses(rows *sql.Rows) ([]models.Class, error) {
	var out []models.Class
	for rows.Next() {
		class, err := scanClass(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan class: %w", err)
		}
		out = append(out, *class)
	}
	return out, rows.Err()
}
