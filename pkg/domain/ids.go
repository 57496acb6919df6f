// Package domain holds the typed identifiers shared across the roster
// contexts. Distinct UUID wrapper types prevent cross-entity assignment at
// compile time.
package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"

	dErrors "rollbook/pkg/domain-errors"
)

// SchoolID identifies a school.
type SchoolID uuid.UUID

// ClassID identifies a class.
type ClassID uuid.UUID

// PersonID identifies a person.
type PersonID uuid.UUID

func (id SchoolID) String() string { return uuid.UUID(id).String() }
func (id ClassID) String() string  { return uuid.UUID(id).String() }
func (id PersonID) String() string { return uuid.UUID(id).String() }

func (id SchoolID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id ClassID) IsZero() bool  { return uuid.UUID(id) == uuid.Nil }
func (id PersonID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// NewSchoolID generates a fresh school id.
func NewSchoolID() SchoolID { return SchoolID(uuid.New()) }

// NewClassID generates a fresh class id.
func NewClassID() ClassID { return ClassID(uuid.New()) }

// NewPersonID generates a fresh person id.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

// ParseSchoolID constructs a SchoolID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed, or the
// nil UUID.
func ParseSchoolID(s string) (SchoolID, error) {
	u, err := parseUUID(s, "school id")
	return SchoolID(u), err
}

// ParseClassID constructs a ClassID from external input.
func ParseClassID(s string) (ClassID, error) {
	u, err := parseUUID(s, "class id")
	return ClassID(u), err
}

// ParsePersonID constructs a PersonID from external input.
func ParsePersonID(s string) (PersonID, error) {
	u, err := parseUUID(s, "person id")
	return PersonID(u), err
}

// Text and SQL round-tripping delegates to the underlying UUID so the wire
// and storage forms stay the canonical string representation.

func (id SchoolID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id ClassID) MarshalText() ([]byte, error)  { return []byte(id.String()), nil }
func (id PersonID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *SchoolID) UnmarshalText(b []byte) error {
	parsed, err := ParseSchoolID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *ClassID) UnmarshalText(b []byte) error {
	parsed, err := ParseClassID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *PersonID) UnmarshalText(b []byte) error {
	parsed, err := ParsePersonID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id SchoolID) Value() (driver.Value, error) { return id.String(), nil }
func (id ClassID) Value() (driver.Value, error)  { return id.String(), nil }
func (id PersonID) Value() (driver.Value, error) { return id.String(), nil }

func (id *SchoolID) Scan(src any) error {
	u, err := scanUUID(src)
	if err != nil {
		return err
	}
	*id = SchoolID(u)
	return nil
}

func (id *ClassID) Scan(src any) error {
	u, err := scanUUID(src)
	if err != nil {
		return err
	}
	*id = ClassID(u)
	return nil
}

func (id *PersonID) Scan(src any) error {
	u, err := scanUUID(src)
	if err != nil {
		return err
	}
	*id = PersonID(u)
	return nil
}

func scanUUID(src any) (uuid.UUID, error) {
	switch v := src.(type) {
	case string:
		return uuid.Parse(v)
	case []byte:
		return uuid.ParseBytes(v)
	default:
		return uuid.Nil, fmt.Errorf("cannot scan %T into UUID", src)
	}
}

func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be nil")
	}
	return u, nil
}
