package filter

import (
	"strings"

	"rollbook/internal/roster/models"
)

// Params holds the optional clauses of the structured multi-field search.
// Empty string values and a nil YearGroup are no-ops; every supplied clause
// narrows the result set further.
type Params struct {
	FirstName  string
	LastName   string
	Role       string
	SchoolName string
	YearGroup  *int
	ClassName  string
}

// Search applies every non-empty clause of params as an AND chain over the
// records. String clauses use substring containment; Role is an exact
// parse-and-match where an unparseable value passes vacuously; YearGroup is
// exact equality; ClassName matches when any enrolled class name equals the
// parameter.
func Search(records []Record, params Params) []Record {
	preds := make([]Predicate, 0, 6)

	if params.FirstName != "" {
		preds = append(preds, func(r Record) bool {
			return strings.Contains(r.Person.FirstName, params.FirstName)
		})
	}
	if params.LastName != "" {
		preds = append(preds, func(r Record) bool {
			return strings.Contains(r.Person.LastName, params.LastName)
		})
	}
	if params.Role != "" {
		if role, err := models.ParseRole(params.Role); err == nil {
			preds = append(preds, func(r Record) bool { return r.Person.Role == role })
		}
	}
	if params.SchoolName != "" {
		preds = append(preds, func(r Record) bool {
			return strings.Contains(r.SchoolName, params.SchoolName)
		})
	}
	if params.YearGroup != nil {
		preds = append(preds, func(r Record) bool {
			return r.Person.YearGroup != nil && *r.Person.YearGroup == *params.YearGroup
		})
	}
	if params.ClassName != "" {
		preds = append(preds, func(r Record) bool {
			for _, name := range r.ClassNames {
				if name == params.ClassName {
					return true
				}
			}
			return false
		})
	}

	if len(preds) == 0 {
		return records
	}
	return apply(records, preds...)
}
