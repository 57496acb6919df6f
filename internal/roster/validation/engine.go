// Package validation implements the role-conditioned person validation
// engine. Rules are evaluated independently and failures accumulate in rule
// order; callers decide whether to surface the individual reasons or collapse
// them into a single message.
package validation

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	dErrors "rollbook/pkg/domain-errors"
)

const (
	firstNameMinLen = 3
	firstNameMaxLen = 20
	lastNameMinLen  = 3
	lastNameMaxLen  = 30

	yearGroupMin = 1
	yearGroupMax = 13
)

// Pupil dates of birth must fall within this inclusive window.
var (
	dobMin = dateOnly(2005, 1, 1)
	dobMax = dateOnly(2018, 12, 31)
)

// FieldFailure records one rule failure against a named field.
type FieldFailure struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Report is the outcome of validating a candidate person. An empty failure
// list means the candidate is valid.
type Report struct {
	Failures []FieldFailure
}

// Valid reports whether the candidate passed every rule.
func (r Report) Valid() bool { return len(r.Failures) == 0 }

// Violations converts the report into domain-error field violations, for
// services that wrap the report in a coded error.
func (r Report) Violations() []dErrors.FieldViolation {
	if len(r.Failures) == 0 {
		return nil
	}
	out := make([]dErrors.FieldViolation, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = dErrors.FieldViolation{Field: f.Field, Message: f.Message}
	}
	return out
}

func (r *Report) fail(field, message string) {
	r.Failures = append(r.Failures, FieldFailure{Field: field, Message: message})
}

// SchoolExistsFunc is the injected, read-only school existence check. It is a
// collaborator-provided rule rather than an intrinsic one; engines built
// without it only require the reference to be set.
type SchoolExistsFunc func(ctx context.Context, schoolID id.SchoolID) bool

// Option configures an Engine.
type Option func(*Engine)

// WithSchoolExists enables the school existence rule.
func WithSchoolExists(fn SchoolExistsFunc) Option {
	return func(e *Engine) { e.schoolExists = fn }
}

// Engine validates candidate people. It is pure over its inputs plus the
// optional read-only existence check.
type Engine struct {
	schoolExists SchoolExistsFunc
	roleRules    map[models.Role][]rule
}

type rule func(ctx context.Context, p models.Person, report *Report)

// New builds an Engine. The role-specific rules live in a dispatch table
// keyed by role, so the pupil and teacher shapes stay two disjoint rule sets
// rather than nested conditionals.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	e.roleRules = map[models.Role][]rule{
		models.RoleTeacher: {teacherDateOfBirth, teacherYearGroup},
		models.RolePupil:   {pupilDateOfBirth, pupilYearGroup},
	}
	return e
}

// Validate checks every rule against the candidate. All rules run; failures
// accumulate rather than short-circuit.
func (e *Engine) Validate(ctx context.Context, p models.Person) Report {
	var report Report
	for _, r := range []rule{firstName, lastName, roleKnown, e.schoolReference} {
		r(ctx, p, &report)
	}
	// Unknown roles already failed roleKnown; there is no rule set to select.
	for _, r := range e.roleRules[p.Role] {
		r(ctx, p, &report)
	}
	return report
}

// Name lengths count runes, not bytes, so accented names are not penalized
// for their encoding.
func firstName(_ context.Context, p models.Person, report *Report) {
	switch n := utf8.RuneCountInString(p.FirstName); {
	case n == 0:
		report.fail("first_name", "first name is required")
	case n < firstNameMinLen || n > firstNameMaxLen:
		report.fail("first_name", fmt.Sprintf("first name must be between %d and %d characters", firstNameMinLen, firstNameMaxLen))
	}
}

func lastName(_ context.Context, p models.Person, report *Report) {
	switch n := utf8.RuneCountInString(p.LastName); {
	case n == 0:
		report.fail("last_name", "last name is required")
	case n < lastNameMinLen || n > lastNameMaxLen:
		report.fail("last_name", fmt.Sprintf("last name must be between %d and %d characters", lastNameMinLen, lastNameMaxLen))
	}
}

func roleKnown(_ context.Context, p models.Person, report *Report) {
	if !p.Role.Known() {
		report.fail("role", "role must be Teacher or Pupil")
	}
}

func (e *Engine) schoolReference(ctx context.Context, p models.Person, report *Report) {
	if p.SchoolID.IsZero() {
		report.fail("school_id", "school reference is required")
		return
	}
	if e.schoolExists != nil && !e.schoolExists(ctx, p.SchoolID) {
		report.fail("school_id", "school does not exist")
	}
}

func teacherDateOfBirth(_ context.Context, p models.Person, report *Report) {
	if p.DateOfBirth != nil {
		report.fail("date_of_birth", "teachers must not have a date of birth")
	}
}

func teacherYearGroup(_ context.Context, p models.Person, report *Report) {
	if p.YearGroup != nil {
		report.fail("year_group", "teachers must not have a year group")
	}
}

func pupilDateOfBirth(_ context.Context, p models.Person, report *Report) {
	if p.DateOfBirth == nil {
		report.fail("date_of_birth", "pupils must have a date of birth")
		return
	}
	dob := dateOnly(p.DateOfBirth.Year(), p.DateOfBirth.Month(), p.DateOfBirth.Day())
	if dob.Before(dobMin) || dob.After(dobMax) {
		report.fail("date_of_birth", "pupil date of birth must be between 2005-01-01 and 2018-12-31")
	}
}

func pupilYearGroup(_ context.Context, p models.Person, report *Report) {
	if p.YearGroup == nil {
		report.fail("year_group", "pupils must have a year group")
		return
	}
	if *p.YearGroup < yearGroupMin || *p.YearGroup > yearGroupMax {
		report.fail("year_group", fmt.Sprintf("pupil year group must be between %d and %d", yearGroupMin, yearGroupMax))
	}
}

func dateOnly(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

