package models

import (
	"time"

	id "rollbook/pkg/domain"
)

// Person is the aggregate the validation engine guards.
//
// Invariants:
//   - FirstName length in [3,20], LastName length in [3,30], both required
//   - Role is one of the defined roles
//   - SchoolID references exactly one school
//   - Role = Teacher: DateOfBirth and YearGroup are both nil
//   - Role = Pupil: DateOfBirth is set and within [2005-01-01, 2018-12-31],
//     YearGroup is set and within [1,13]
//
// The role-conditioned shape means the optional fields form two disjoint rule
// sets selected by Role; see internal/roster/validation.
type Person struct {
	ID          id.PersonID `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Role        Role        `json:"role"`
	DateOfBirth *time.Time  `json:"date_of_birth,omitempty"`
	YearGroup   *int        `json:"year_group,omitempty"`
	SchoolID    id.SchoolID `json:"school_id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Enrollment asserts that a person participates in a class. Its identity is
// the (ClassID, PersonID) pair; there are no other attributes. Enrollments are
// created only alongside AddPerson or via AddClassesToPerson, never
// independently.
type Enrollment struct {
	ClassID  id.ClassID  `json:"class_id"`
	PersonID id.PersonID `json:"person_id"`
}
