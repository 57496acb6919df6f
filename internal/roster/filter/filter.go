// Package filter composes predicates over the joined roster view. Every
// clause is an independent, commutative predicate; composition is a plain AND
// chain, so clause order changes performance only, never the result set.
package filter

import (
	"strconv"
	"strings"

	"rollbook/internal/roster/models"
)

// Record is the queryable view of a person: the person itself plus the
// resolved school name and the names of every enrolled class. The services
// assemble records from the stores before filtering.
type Record struct {
	Person     models.Person `json:"person"`
	SchoolName string        `json:"school_name"`
	ClassNames []string      `json:"class_names"`
}

// Predicate decides whether a record belongs to a result set.
type Predicate func(Record) bool

// Field is one of the recognized keys for the single dynamic filter.
type Field string

const (
	FieldLastName   Field = "LastName"
	FieldUserType   Field = "UserType"
	FieldYearGroup  Field = "YearGroup"
	FieldSchoolName Field = "SchoolName"
)

// fieldPredicates maps each recognized filter field to its predicate builder.
// A builder may return nil, which means "no filtering" (for example an
// unparseable role query).
var fieldPredicates = map[Field]func(query string) Predicate{
	FieldLastName: func(query string) Predicate {
		return func(r Record) bool { return strings.Contains(r.Person.LastName, query) }
	},
	FieldUserType: func(query string) Predicate {
		role, err := models.ParseRole(query)
		if err != nil {
			return nil
		}
		return func(r Record) bool { return r.Person.Role == role }
	},
	FieldYearGroup: func(query string) Predicate {
		return func(r Record) bool {
			if r.Person.YearGroup == nil {
				return false
			}
			return strings.Contains(strconv.Itoa(*r.Person.YearGroup), query)
		}
	},
	FieldSchoolName: func(query string) Predicate {
		return func(r Record) bool { return strings.Contains(r.SchoolName, query) }
	},
}

// By applies the single dynamic field/value filter. The field name is matched
// case-insensitively against the closed set of recognized fields; an
// unrecognized name is the documented default case and yields the unfiltered
// input, as does an entirely absent field/query pair. Value comparison is
// never case-normalized, only the field keyword is.
func By(records []Record, fieldName, query string) []Record {
	if fieldName == "" && query == "" {
		return records
	}
	builder, ok := lookupField(fieldName)
	if !ok {
		return records
	}
	pred := builder(query)
	if pred == nil {
		return records
	}
	return apply(records, pred)
}

func lookupField(name string) (func(string) Predicate, bool) {
	for field, builder := range fieldPredicates {
		if strings.EqualFold(string(field), name) {
			return builder, true
		}
	}
	return nil, false
}

func apply(records []Record, preds ...Predicate) []Record {
	out := make([]Record, 0, len(records))
next:
	for _, r := range records {
		for _, pred := range preds {
			if !pred(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}
