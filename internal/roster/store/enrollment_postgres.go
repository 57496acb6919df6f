package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	"rollbook/pkg/platform/tx"
)

// PostgresEnrollmentStore persists enrollments in PostgreSQL. The composite
// (class_id, person_id) primary key makes re-enrollment a no-op upsert.
type PostgresEnrollmentStore struct {
	db *sql.DB
}

func NewPostgresEnrollmentStore(db *sql.DB) *PostgresEnrollmentStore {
	return &PostgresEnrollmentStore{db: db}
}

func (s *PostgresEnrollmentStore) CreateBatch(ctx context.Context, enrollments []models.Enrollment) error {
	if len(enrollments) == 0 {
		return nil
	}
	q := tx.Resolve(ctx, s.db)
	for _, e := range enrollments {
		_, err := q.ExecContext(ctx, `
			INSERT INTO enrollments (class_id, person_id)
			VALUES ($1, $2)
			ON CONFLICT (class_id, person_id) DO NOTHING
		`, uuid.UUID(e.ClassID), uuid.UUID(e.PersonID))
		if err != nil {
			return fmt.Errorf("create enrollment: %w", err)
		}
	}
	return nil
}

func (s *PostgresEnrollmentStore) List(ctx context.Context) ([]models.Enrollment, error) {
	q := tx.Resolve(ctx, s.db)
	rows, err := q.QueryContext(ctx, `SELECT class_id, person_id FROM enrollments`)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	defer rows.Close()
	return collectEnrollments(rows)
}

func (s *PostgresEnrollmentStore) ListByPerson(ctx context.Context, personID id.PersonID) ([]models.Enrollment, error) {
	q := tx.Resolve(ctx, s.db)
	rows, err := q.QueryContext(ctx, `
		SELECT class_id, person_id FROM enrollments WHERE person_id = $1
	`, uuid.UUID(personID))
	if err != nil {
		return nil, fmt.Errorf("list enrollments by person: %w", err)
	}
	defer rows.Close()
	return collectEnrollments(rows)
}

func (s *PostgresEnrollmentStore) DeleteByPerson(ctx context.Context, personID id.PersonID) error {
	q := tx.Resolve(ctx, s.db)
	if _, err := q.ExecContext(ctx, `DELETE FROM enrollments WHERE person_id = $1`, uuid.UUID(personID)); err != nil {
		return fmt.Errorf("delete enrollments by person: %w", err)
	}
	return nil
}

func (s *PostgresEnrollmentStore) DeleteByClass(ctx context.Context, classID id.ClassID) error {
	q := tx.Resolve(ctx, s.db)
	if _, err := q.ExecContext(ctx, `DELETE FROM enrollments WHERE class_id = $1`, uuid.UUID(classID)); err != nil {
		return fmt.Errorf("delete enrollments by class: %w", err)
	}
	return nil
}

func collectEnrollments(rows *sql.Rows) ([]models.Enrollment, error) {
	var out []models.Enrollment
	for rows.Next() {
		var rawClass, rawPerson uuid.UUID
		if err := rows.Scan(&rawClass, &rawPerson); err != nil {
			return nil, fmt.Errorf("scan enrollment: %w", err)
		}
		out = append(out, models.Enrollment{
			ClassID:  id.ClassID(rawClass),
			PersonID: id.PersonID(rawPerson),
		})
	}
	return out, rows.Err()
}
