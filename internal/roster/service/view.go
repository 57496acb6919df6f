package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rollbook/internal/roster/filter"
	"rollbook/internal/roster/models"
	"rollbook/internal/roster/result"
	id "rollbook/pkg/domain"
)

// ListPeople returns the roster view, narrowed by the single dynamic filter
// when fieldName is non-empty. Unrecognized field names and unparseable
// queries leave the view unfiltered.
func (r *Roster) ListPeople(ctx context.Context, fieldName, query string) result.Result[[]filter.Record] {
	ctx, span := r.tracer.Start(ctx, "ListPeople")
	defer span.End()

	records, err := r.rosterView(ctx)
	if err != nil {
		return result.Fail[[]filter.Record](err)
	}
	if fieldName != "" {
		records = filter.By(records, fieldName, query)
	}
	if r.metrics != nil {
		r.metrics.IncrementSearches()
	}
	return result.Ok(records)
}

// SearchPeople returns the roster view narrowed by every populated criterion
// in params, conjunctively.
func (r *Roster) SearchPeople(ctx context.Context, params filter.Params) result.Result[[]filter.Record] {
	ctx, span := r.tracer.Start(ctx, "SearchPeople")
	defer span.End()

	records, err := r.rosterView(ctx)
	if err != nil {
		return result.Fail[[]filter.Record](err)
	}
	if r.metrics != nil {
		r.metrics.IncrementSearches()
	}
	return result.Ok(filter.Search(records, params))
}

// rosterView assembles the joined person/school/class view the filters run
// over, fetching the four collections concurrently. Reads go through the
// cache when one is configured; writes invalidate it.
func (r *Roster) rosterView(ctx context.Context) ([]filter.Record, error) {
	if r.cache != nil {
		if records, ok := r.cache.Get(ctx); ok {
			return records, nil
		}
	}

	var (
		people      []models.Person
		schools     []models.School
		classes     []models.Class
		enrollments []models.Enrollment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		people, err = r.people.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		schools, err = r.schools.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		classes, err = r.classes.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		enrollments, err = r.enrollments.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, wrapStoreErr(err, "roster view")
	}

	schoolNames := make(map[id.SchoolID]string, len(schools))
	for _, s := range schools {
		schoolNames[s.ID] = s.Name
	}
	classNames := make(map[id.ClassID]string, len(classes))
	for _, c := range classes {
		classNames[c.ID] = c.Name
	}
	classesByPerson := make(map[id.PersonID][]string, len(people))
	for _, e := range enrollments {
		if name, ok := classNames[e.ClassID]; ok {
			classesByPerson[e.PersonID] = append(classesByPerson[e.PersonID], name)
		}
	}

	records := make([]filter.Record, 0, len(people))
	for _, p := range people {
		records = append(records, filter.Record{
			Person:     p,
			SchoolName: schoolNames[p.SchoolID],
			ClassNames: classesByPerson[p.ID],
		})
	}

	if r.cache != nil {
		r.cache.Set(ctx, records)
	}
	return records, nil
}
