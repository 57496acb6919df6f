package handler

import (
	"strings"
	"time"

	"rollbook/internal/roster/models"
	"rollbook/internal/roster/service"
	id "rollbook/pkg/domain"
	dErrors "rollbook/pkg/domain-errors"
)

const dateLayout = "2006-01-02"

// createSchoolRequest is the body for POST /schools.
type createSchoolRequest struct {
	Name string `json:"name"`
}

func (r *createSchoolRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	return nil
}

// updateSchoolRequest is the body for PUT /schools/{id}.
type updateSchoolRequest struct {
	Name string `json:"name"`
}

func (r *updateSchoolRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	return nil
}

// createClassRequest is the body for POST /classes.
type createClassRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *createClassRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	return nil
}

// updateClassRequest is the body for PUT /classes/{id}.
type updateClassRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *updateClassRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	return nil
}

// personPayload is the shared person shape for create and update bodies.
// DateOfBirth is a calendar date, not a timestamp. Role and the role-shaped
// fields are passed through as-is; the validation engine owns those rules.
type personPayload struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Role        string   `json:"role"`
	DateOfBirth *string  `json:"date_of_birth,omitempty"`
	YearGroup   *int     `json:"year_group,omitempty"`
	SchoolID    string   `json:"school_id"`
	ClassIDs    []string `json:"class_ids,omitempty"`

	parsedDOB      *time.Time
	parsedSchoolID id.SchoolID
	parsedClassIDs []id.ClassID
}

func (r *personPayload) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Role = strings.TrimSpace(r.Role)

	if r.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *r.DateOfBirth)
		if err != nil {
			return dErrors.New(dErrors.CodeInvalidInput, "date_of_birth must be a YYYY-MM-DD date")
		}
		r.parsedDOB = &dob
	}

	schoolID, err := id.ParseSchoolID(r.SchoolID)
	if err != nil {
		return err
	}
	r.parsedSchoolID = schoolID

	r.parsedClassIDs = make([]id.ClassID, 0, len(r.ClassIDs))
	for _, raw := range r.ClassIDs {
		classID, err := id.ParseClassID(raw)
		if err != nil {
			return err
		}
		r.parsedClassIDs = append(r.parsedClassIDs, classID)
	}
	return nil
}

func (r *personPayload) toNewPerson() service.NewPerson {
	return service.NewPerson{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Role:        models.Role(r.Role),
		DateOfBirth: r.parsedDOB,
		YearGroup:   r.YearGroup,
		SchoolID:    r.parsedSchoolID,
		ClassIDs:    r.parsedClassIDs,
	}
}

func (r *personPayload) toPerson(personID id.PersonID) models.Person {
	return models.Person{
		ID:          personID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Role:        models.Role(r.Role),
		DateOfBirth: r.parsedDOB,
		YearGroup:   r.YearGroup,
		SchoolID:    r.parsedSchoolID,
	}
}

// assignClassesRequest is the body for POST /people/{id}/classes.
type assignClassesRequest struct {
	ClassIDs []string `json:"class_ids"`

	parsedClassIDs []id.ClassID
}

func (r *assignClassesRequest) Validate() error {
	if len(r.ClassIDs) == 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "class_ids is required")
	}
	r.parsedClassIDs = make([]id.ClassID, 0, len(r.ClassIDs))
	for _, raw := range r.ClassIDs {
		classID, err := id.ParseClassID(raw)
		if err != nil {
			return err
		}
		r.parsedClassIDs = append(r.parsedClassIDs, classID)
	}
	return nil
}
