package service

import (
	"context"
	"fmt"
	"time"

	"rollbook/internal/audit"
	"rollbook/internal/roster/models"
	"rollbook/internal/roster/result"
	id "rollbook/pkg/domain"
	dErrors "rollbook/pkg/domain-errors"
	"rollbook/pkg/requestcontext"
)

// NewPerson is the AddPerson input. ClassIDs are optional initial enrollments.
type NewPerson struct {
	FirstName   string
	LastName    string
	Role        models.Role
	DateOfBirth *time.Time
	YearGroup   *int
	SchoolID    id.SchoolID
	ClassIDs    []id.ClassID
}

// AddPerson validates the candidate, resolves every requested class, then
// persists the person and their enrollments atomically. A single missing class
// fails the whole operation and persists nothing.
func (r *Roster) AddPerson(ctx context.Context, input NewPerson) result.Result[models.Person] {
	ctx, span := r.tracer.Start(ctx, "AddPerson")
	defer span.End()

	now := requestcontext.Now(ctx)
	person := models.Person{
		ID:        id.NewPersonID(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      input.Role,
		SchoolID:  input.SchoolID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.DateOfBirth != nil {
		dob := *input.DateOfBirth
		person.DateOfBirth = &dob
	}
	if input.YearGroup != nil {
		yg := *input.YearGroup
		person.YearGroup = &yg
	}

	report := r.validator.Validate(ctx, person)
	if !report.Valid() {
		r.logger.InfoContext(ctx, "person rejected by validation",
			"role", string(person.Role),
			"failures", report.Failures,
		)
		return result.Fail[models.Person](dErrors.NewValidation("person failed validation", report.Violations()))
	}

	// Every requested class must exist before anything is written.
	enrollments := make([]models.Enrollment, 0, len(input.ClassIDs))
	seen := make(map[id.ClassID]struct{}, len(input.ClassIDs))
	for _, classID := range input.ClassIDs {
		if _, ok := seen[classID]; ok {
			continue
		}
		seen[classID] = struct{}{}
		if _, err := r.classes.FindByID(ctx, classID); err != nil {
			return result.Fail[models.Person](wrapStoreErr(err, fmt.Sprintf("class %s", classID)))
		}
		enrollments = append(enrollments, models.Enrollment{ClassID: classID, PersonID: person.ID})
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.people.Create(ctx, &person); err != nil {
			return wrapStoreErr(err, "person")
		}
		if len(enrollments) > 0 {
			if err := r.enrollments.CreateBatch(ctx, enrollments); err != nil {
				return wrapStoreErr(err, "enrollments")
			}
		}
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "add person failed", "error", err)
		return result.Fail[models.Person](err)
	}

	if r.metrics != nil {
		r.metrics.IncrementPeopleCreated()
		r.metrics.AddEnrollmentsCreated(len(enrollments))
	}
	r.emit(ctx, audit.Event{
		Action:  audit.ActionPersonCreated,
		Subject: person.ID.String(),
		Detail:  fmt.Sprintf("%s %s (%s), %d enrollments", person.FirstName, person.LastName, person.Role, len(enrollments)),
	})
	r.invalidateView(ctx)
	return result.Ok(person)
}

// AddClassesToPerson enrolls an existing person into the given classes. A
// missing person fails the operation; class ids with no matching class are
// dropped silently and the remainder are enrolled. Already-enrolled pairs are
// absorbed without error.
func (r *Roster) AddClassesToPerson(ctx context.Context, personID id.PersonID, classIDs []id.ClassID) result.Result[result.Void] {
	ctx, span := r.tracer.Start(ctx, "AddClassesToPerson")
	defer span.End()

	if _, err := r.people.FindByID(ctx, personID); err != nil {
		return result.Fail[result.Void](wrapStoreErr(err, "person"))
	}

	matched, err := r.classes.FindByIDs(ctx, classIDs)
	if err != nil {
		return result.Fail[result.Void](wrapStoreErr(err, "classes"))
	}
	if dropped := len(classIDs) - len(matched); dropped > 0 {
		r.logger.InfoContext(ctx, "dropping unknown classes from enrollment request",
			"person_id", personID.String(),
			"requested", len(classIDs),
			"dropped", dropped,
		)
	}

	enrollments := make([]models.Enrollment, 0, len(matched))
	for _, class := range matched {
		enrollments = append(enrollments, models.Enrollment{ClassID: class.ID, PersonID: personID})
	}
	if len(enrollments) > 0 {
		err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := r.enrollments.CreateBatch(ctx, enrollments); err != nil {
				return wrapStoreErr(err, "enrollments")
			}
			return nil
		})
		if err != nil {
			r.logger.ErrorContext(ctx, "add classes to person failed", "error", err)
			return result.Fail[result.Void](err)
		}
	}

	if r.metrics != nil {
		r.metrics.AddEnrollmentsCreated(len(enrollments))
	}
	r.emit(ctx, audit.Event{
		Action:  audit.ActionClassesAssigned,
		Subject: personID.String(),
		Detail:  fmt.Sprintf("%d of %d requested classes assigned", len(enrollments), len(classIDs)),
	})
	r.invalidateView(ctx)
	return result.OkVoid()
}

// GetPerson fetches one person by id.
func (r *Roster) GetPerson(ctx context.Context, personID id.PersonID) result.Result[models.Person] {
	person, err := r.people.FindByID(ctx, personID)
	if err != nil {
		return result.Fail[models.Person](wrapStoreErr(err, "person"))
	}
	return result.Ok(*person)
}

// UpdatePerson replaces a person's attributes wholesale after re-validating
// the candidate. The id and creation time are immutable.
func (r *Roster) UpdatePerson(ctx context.Context, person models.Person) result.Result[models.Person] {
	ctx, span := r.tracer.Start(ctx, "UpdatePerson")
	defer span.End()

	existing, err := r.people.FindByID(ctx, person.ID)
	if err != nil {
		return result.Fail[models.Person](wrapStoreErr(err, "person"))
	}
	person.CreatedAt = existing.CreatedAt
	person.UpdatedAt = requestcontext.Now(ctx)

	report := r.validator.Validate(ctx, person)
	if !report.Valid() {
		r.logger.InfoContext(ctx, "person update rejected by validation",
			"person_id", person.ID.String(),
			"failures", report.Failures,
		)
		return result.Fail[models.Person](dErrors.NewValidation("person failed validation", report.Violations()))
	}

	if err := r.people.Update(ctx, &person); err != nil {
		return result.Fail[models.Person](wrapStoreErr(err, "person"))
	}

	r.emit(ctx, audit.Event{
		Action:  audit.ActionPersonUpdated,
		Subject: person.ID.String(),
	})
	r.invalidateView(ctx)
	return result.Ok(person)
}

// DeletePerson removes a person and their enrollments atomically.
func (r *Roster) DeletePerson(ctx context.Context, personID id.PersonID) result.Result[result.Void] {
	ctx, span := r.tracer.Start(ctx, "DeletePerson")
	defer span.End()

	if _, err := r.people.FindByID(ctx, personID); err != nil {
		return result.Fail[result.Void](wrapStoreErr(err, "person"))
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.enrollments.DeleteByPerson(ctx, personID); err != nil {
			return wrapStoreErr(err, "enrollments")
		}
		if err := r.people.Delete(ctx, personID); err != nil {
			return wrapStoreErr(err, "person")
		}
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "delete person failed", "error", err)
		return result.Fail[result.Void](err)
	}

	r.emit(ctx, audit.Event{
		Action:  audit.ActionPersonDeleted,
		Subject: personID.String(),
	})
	r.invalidateView(ctx)
	return result.OkVoid()
}
