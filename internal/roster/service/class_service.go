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

// CreateClass registers a new class.
func (r *Roster) CreateClass(ctx context.Context, name, description string) result.Result[models.Class] {
	ctx, span := r.tracer.Start(ctx, "CreateClass")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return result.Fail[models.Class](dErrors.New(dErrors.CodeInvalidInput, "class name is required"))
	}

	now := requestcontext.Now(ctx)
	class := models.Class{
		ID:          id.NewClassID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.classes.Create(ctx, &class); err != nil {
		r.logger.ErrorContext(ctx, "create class failed", "error", err)
		return result.Fail[models.Class](wrapStoreErr(err, "class"))
	}

	r.emit(ctx, audit.Event{
		Action:  audit.ActionClassCreated,
		Subject: class.ID.String(),
		Detail:  class.Name,
	})
	r.invalidateView(ctx)
	return result.Ok(class)
}

// GetClass fetches one class by id.
func (r *Roster) GetClass(ctx context.Context, classID id.ClassID) result.Result[models.Class] {
	class, err := r.classes.FindByID(ctx, classID)
	if err != nil {
		return result.Fail[models.Class](wrapStoreErr(err, "class"))
	}
	return result.Ok(*class)
}

// ListClasses returns every class.
func (r *Roster) ListClasses(ctx context.Context) result.Result[[]models.Class] {
	classes, err := r.classes.List(ctx)
	if err != nil {
		return result.Fail[[]models.Class](wrapStoreErr(err, "classes"))
	}
	return result.Ok(classes)
}

// UpdateClass replaces a class's name and description. CreatedAt is immutable.
func (r *Roster) UpdateClass(ctx context.Context, class models.Class) result.Result[models.Class] {
	ctx, span := r.tracer.Start(ctx, "UpdateClass")
	defer span.End()

	class.Name = strings.TrimSpace(class.Name)
	if class.Name == "" {
		return result.Fail[models.Class](dErrors.New(dErrors.CodeInvalidInput, "class name is required"))
	}
	existing, err := r.classes.FindByID(ctx, class.ID)
	if err != nil {
		return result.Fail[models.Class](wrapStoreErr(err, "class"))
	}
	class.CreatedAt = existing.CreatedAt
	class.UpdatedAt = requestcontext.Now(ctx)

	if err := r.classes.Update(ctx, &class); err != nil {
		return result.Fail[models.Class](wrapStoreErr(err, "class"))
	}

	r.emit(ctx, audit.Event{
		Action:  audit.ActionClassUpdated,
		Subject: class.ID.String(),
		Detail:  class.Name,
	})
	r.invalidateView(ctx)
	return result.Ok(class)
}

// DeleteClass removes a class and every enrollment that references it,
// atomically. The enrolled people themselves are untouched.
func (r *Roster) DeleteClass(ctx context.Context, classID id.ClassID) result.Result[result.Void] {
	ctx, span := r.tracer.Start(ctx, "DeleteClass")
	defer span.End()

	if _, err := r.classes.FindByID(ctx, classID); err != nil {
		return result.Fail[result.Void](wrapStoreErr(err, "class"))
	}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.enrollments.DeleteByClass(ctx, classID); err != nil {
			return wrapStoreErr(err, "enrollments")
		}
		if err := r.classes.Delete(ctx, classID); err != nil {
			return wrapStoreErr(err, "class")
		}
		return nil
	})
	if err != nil {
		r.logger.ErrorContext(ctx, "delete class failed", "error", err)
		return result.Fail[result.Void](err)
	}

	r.emit(ctx, audit.Event{
		Action:  audit.ActionClassDeleted,
		Subject: classID.String(),
	})
	r.invalidateView(ctx)
	return result.OkVoid()
}
