package models

import (
	"strconv"
	"strings"

	dErrors "rollbook/pkg/domain-errors"
)

// Role is the closed classification of a person. It decides which optional
// fields are required versus forbidden: pupils carry a date of birth and a
// year group, teachers carry neither.
type Role string

const (
	RoleTeacher Role = "Teacher"
	RolePupil   Role = "Pupil"
)

// Known reports whether r is one of the defined roles.
func (r Role) Known() bool {
	return r == RoleTeacher || r == RolePupil
}

func (r Role) String() string { return string(r) }

// ParseRole converts a free-text role name into the closed role set,
// case-insensitively. Callers that filter by role treat a parse failure as
// non-fatal; callers that write treat it as invalid input.
func ParseRole(raw string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "teacher":
		return RoleTeacher, nil
	case "pupil":
		return RolePupil, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role "+strconv.Quote(raw))
	}
}
