package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	"rollbook/pkg/platform/sentinel"
	"rollbook/pkg/platform/tx"
)

// PostgresPersonStore persists people in PostgreSQL.
type PostgresPersonStore struct {
	db *sql.DB
}

func NewPostgresPersonStore(db *sql.DB) *PostgresPersonStore {
	return &PostgresPersonStore{db: db}
}

const personColumns = `id, first_name, last_name, role, date_of_birth, year_group, school_id, created_at, updated_at`

func (s *PostgresPersonStore) Create(ctx context.Context, person *models.Person) error {
	q := tx.Resolve(ctx, s.db)
	_, err := q.ExecContext(ctx, `
		INSERT INTO people (`+personColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, uuid.UUID(person.ID), person.FirstName, person.LastName, string(person.Role),
		nullTime(person.DateOfBirth), nullInt(person.YearGroup), uuid.UUID(person.SchoolID),
		person.CreatedAt, person.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (s *PostgresPersonStore) FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error) {
	q := tx.Resolve(ctx, s.db)
	row := q.QueryRowContext(ctx, `
		SELECT `+personColumns+` FROM people WHERE id = $1
	`, uuid.UUID(personID))
	person, err := scanPerson(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find person: %w", err)
	}
	return person, nil
}

func (s *PostgresPersonStore) List(ctx context.Context) ([]models.Person, error) {
	q := tx.Resolve(ctx, s.db)
	rows, err := q.QueryContext(ctx, `
		SELECT `+personColumns+` FROM people ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()
	return collectPeople(rows)
}

func (s *PostgresPersonStore) ListBySchool(ctx context.Context, schoolID id.SchoolID) ([]models.Person, error) {
	q := tx.Resolve(ctx, s.db)
	rows, err := q.QueryContext(ctx, `
		SELECT `+personColumns+` FROM people WHERE school_id = $1
	`, uuid.UUID(schoolID))
	if err != nil {
		return nil, fmt.Errorf("list people by school: %w", err)
	}
	defer rows.Close()
	return collectPeople(rows)
}

func (s *PostgresPersonStore) Update(ctx context.Context, person *models.Person) error {
	q := tx.Resolve(ctx, s.db)
	res, err := q.ExecContext(ctx, `
		UPDATE people
		SET first_name = $2, last_name = $3, role = $4, date_of_birth = $5,
		    year_group = $6, school_id = $7, updated_at = $8
		WHERE id = $1
	`, uuid.UUID(person.ID), person.FirstName, person.LastName, string(person.Role),
		nullTime(person.DateOfBirth), nullInt(person.YearGroup), uuid.UUID(person.SchoolID),
		person.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresPersonStore) Delete(ctx context.Context, personID id.PersonID) error {
	q := tx.Resolve(ctx, s.db)
	res, err := q.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, uuid.UUID(personID))
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return requireRow(res)
}

func scanPerson(scan func(dest ...any) error) (*models.Person, error) {
	var person models.Person
	var rawID, rawSchoolID uuid.UUID
	var role string
	var dob sql.NullTime
	var yearGroup sql.NullInt64
	if err := scan(&rawID, &person.FirstName, &person.LastName, &role, &dob, &yearGroup,
		&rawSchoolID, &person.CreatedAt, &person.UpdatedAt); err != nil {
		return nil, err
	}
	person.ID = id.PersonID(rawID)
	person.SchoolID = id.SchoolID(rawSchoolID)
	person.Role = models.Role(role)
	if dob.Valid {
		d := dob.Time.UTC()
		person.DateOfBirth = &d
	}
	if yearGroup.Valid {
		yg := int(yearGroup.Int64)
		person.YearGroup = &yg
	}
	return &person, nil
}

func collectPeople(rows *sql.Rows) ([]models.Person, error) {
	var out []models.Person
	for rows.Next() {
		person, err := scanPerson(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		out = append(out, *person)
	}
	return out, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
