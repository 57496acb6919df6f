package service

import (
	"context"
	"strings"

	"rollbook/internal/audit"
	"rollbook/internal/roster/models"
	"rollbook/internal/roster/result"
	id "rollbook/pkg/domain"
	dErrors "rollbook/pkg/domain-errors"
	"rollbook/pkg/requestcontext"
)

// CreateSchool registers a new school.
func (r *Roster) CreateSchool(ctx context.Context, name string) result.Result[models.School] {
	ctx, span := r.tracer.Start(ctx, "CreateSchool")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return result.Fail[models.School](dErrors.New(dErrors.CodeInvalidInput, "school name is required"))
	}

	now := requestcontext.Now(ctx)
	school := models.School{
		ID:        id.NewSchoolID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.schools.Create(ctx, &school); err != nil {
		r.logger.ErrorContext(ctx, "create school failed", "error", err)
		return result.Fail[models.School](wrapStoreErr(err, "school"))
	}

	r.emit(ctx, audit.Event{
		Action:  audit.ActionSchoolCreated,
		Subject: school.ID.String(),
		Detail:  school.Name,
	})
	r.invalidateView(ctx)
	return result.Ok(school)
}

// GetSchool fetches one school by id.
func (r *Roster) GetSchool(ctx context.Context, schoolID id.SchoolID) result.Result[models.School] {
	school, err := r.schools.FindByID(ctx, schoolID)
	if err != nil {
		return result.Fail[models.School](wrapStoreErr(err, "school"))
	}
	return result.Ok(*school)
}

// ListSchools returns every school.
func (r *Roster) ListSchools(ctx context.Context) result.Result[[]models.School] {
	schools, err := r.schools.List(ctx)
	if err != nil {
		return result.Fail[[]models.School](wrapStoreErr(err, "schools"))
	}
	return result.Ok(schools)
}

// UpdateSchool renames a school. CreatedAt is immutable.
func (r *Roster) UpdateSchool(ctx context.Context, school models.School) result.Result[models.School] {
	ctx, span := r.tracer.Start(ctx, "UpdateSchool")
	defer span.End()

	school.Name = strings.TrimSpace(school.Name)
	if school.Name == "" {
		return result.Fail[models.School](dErrors.New(dErrors.CodeInvalidInput, "school name is required"))
	}
	existing, err := r.schools.FindByID(ctx, school.ID)
	if err != nil {
		return result.Fail[models.School](wrapStoreErr(err, "school"))
	}
	school.CreatedAt = existing.CreatedAt
	school.UpdatedAt = requestcontext.Now(ctx)

	if err := r.schools.Update(ctx, &school); err != nil {
		return result.Fail[models.School](wrapStoreErr(err, "school"))
	}

	r.emit(ctx, audit.Event{
		Action:  audit.ActionSchoolUpdated,
		Subject: school.ID.String(),
		Detail:  school.Name,
	})
	r.invalidateView(ctx)
	return result.Ok(school)
}

// DeleteSchool removes a school together with every person registered to it
// and their enrollments, atomically. People are never left pointing at a
// school that no longer exists.
func (r *Roster) DeleteSchool(ctx context.Context, schoolID id.SchoolID) result.Result[result.Void] {
	ctx, span := r.tracer.Start(ctx, "DeleteSchool")
	defer span.End()

	if _, err := r.schools.FindByID(ctx, schoolID); err != nil {
		return result.Fail[result.Void](wrapStoreErr(err, "school"))
	}

	var removed int
	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		people, err := r.people.ListBySchool(ctx, schoolID)
		if err != nil {
			return wrapStoreErr(err, "people")
		}
		for _, person := range people {
			if err := r.enrollments.DeleteByPerson(ctx, person.ID); err != nil {
				return wrapStoreErr(err, "enrollments")
			}
			if err := r.people.Delete(ctx, person.ID); err != nil {
				return wrapStoreErr(err, "person")
			}
		}
		removed = len(people)
		if err := r.schools.Delete(ctx, schoolID); err != nil {
			return wrapStoreErr(err, "school")
		}
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "delete school failed", "error", err)
		return result.Fail[result.Void](err)
	}

	r.logger.InfoContext(ctx, "school deleted",
		"school_id", schoolID.String(),
		"people_removed", removed,
	)
	r.emit(ctx, audit.Event{
		Action:  audit.ActionSchoolDeleted,
		Subject: schoolID.String(),
	})
	r.invalidateView(ctx)
	return result.OkVoid()
}
