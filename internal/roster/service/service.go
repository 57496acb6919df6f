// Package service implements the roster operations: validated person writes,
// enrollment management, and the filter/search read path. Every public
// operation returns the Result envelope and never lets an error escape to the
// caller; store sentinels and validation reports are translated into coded
// domain errors inside the envelope.
package service

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"rollbook/internal/audit"
	"rollbook/internal/platform/metrics"
	"rollbook/internal/roster/filter"
	"rollbook/internal/roster/models"
	"rollbook/internal/roster/validation"
	id "rollbook/pkg/domain"
	dErrors "rollbook/pkg/domain-errors"
	"rollbook/pkg/platform/sentinel"
)

// SchoolStore is the school persistence collaborator.
type SchoolStore interface {
	Create(ctx context.Context, school *models.School) error
	FindByID(ctx context.Context, schoolID id.SchoolID) (*models.School, error)
	List(ctx context.Context) ([]models.School, error)
	Update(ctx context.Context, school *models.School) error
	Delete(ctx context.Context, schoolID id.SchoolID) error
	Exists(ctx context.Context, schoolID id.SchoolID) (bool, error)
}

// ClassStore is the class persistence collaborator. FindByIDs drops ids with
// no match rather than reporting them.
type ClassStore interface {
	Create(ctx context.Context, class *models.Class) error
	FindByID(ctx context.Context, classID id.ClassID) (*models.Class, error)
	FindByIDs(ctx context.Context, classIDs []id.ClassID) ([]models.Class, error)
	List(ctx context.Context) ([]models.Class, error)
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, classID id.ClassID) error
}

// PersonStore is the person persistence collaborator.
type PersonStore interface {
	Create(ctx context.Context, person *models.Person) error
	FindByID(ctx context.Context, personID id.PersonID) (*models.Person, error)
	List(ctx context.Context) ([]models.Person, error)
	ListBySchool(ctx context.Context, schoolID id.SchoolID) ([]models.Person, error)
	Update(ctx context.Context, person *models.Person) error
	Delete(ctx context.Context, personID id.PersonID) error
}

// EnrollmentStore is the enrollment persistence collaborator.
type EnrollmentStore interface {
	CreateBatch(ctx context.Context, enrollments []models.Enrollment) error
	List(ctx context.Context) ([]models.Enrollment, error)
	ListByPerson(ctx context.Context, personID id.PersonID) ([]models.Enrollment, error)
	DeleteByPerson(ctx context.Context, personID id.PersonID) error
	DeleteByClass(ctx context.Context, classID id.ClassID) error
}

// StoreTx runs a callback atomically with respect to the stores. The SQL
// implementation opens a transaction; the in-memory default just runs the
// callback.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ViewCache caches the joined roster view between writes.
type ViewCache interface {
	Get(ctx context.Context) ([]filter.Record, bool)
	Set(ctx context.Context, records []filter.Record)
	Invalidate(ctx context.Context)
}

// Roster orchestrates all roster operations.
type Roster struct {
	schools     SchoolStore
	classes     ClassStore
	people      PersonStore
	enrollments EnrollmentStore
	validator   *validation.Engine
	tx          StoreTx
	audit       audit.Publisher
	metrics     *metrics.Metrics
	cache       ViewCache
	logger      *slog.Logger
	tracer      trace.Tracer
}

type config struct {
	tx      StoreTx
	audit   audit.Publisher
	metrics *metrics.Metrics
	cache   ViewCache
	logger  *slog.Logger
}

// Option configures a Roster.
type Option func(*config)

// WithTx sets the transaction runner; defaults to a pass-through.
func WithTx(tx StoreTx) Option { return func(c *config) { c.tx = tx } }

// WithAudit sets the audit publisher; defaults to none.
func WithAudit(p audit.Publisher) Option { return func(c *config) { c.audit = p } }

// WithMetrics sets the metrics; defaults to none.
func WithMetrics(m *metrics.Metrics) Option { return func(c *config) { c.metrics = m } }

// WithCache sets the roster view cache; defaults to none.
func WithCache(cache ViewCache) Option { return func(c *config) { c.cache = cache } }

// WithLogger sets the logger; defaults to slog.Default.
func WithLogger(l *slog.Logger) Option { return func(c *config) { c.logger = l } }

// New builds a Roster over the given stores. The validation engine is wired
// with the school existence rule backed by the school store.
func New(schools SchoolStore, classes ClassStore, people PersonStore, enrollments EnrollmentStore, opts ...Option) *Roster {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.tx == nil {
		cfg.tx = passthroughTx{}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	r := &Roster{
		schools:     schools,
		classes:     classes,
		people:      people,
		enrollments: enrollments,
		tx:          cfg.tx,
		audit:       cfg.audit,
		metrics:     cfg.metrics,
		cache:       cfg.cache,
		logger:      cfg.logger,
		tracer:      otel.Tracer("rollbook/roster"),
	}
	r.validator = validation.New(validation.WithSchoolExists(func(ctx context.Context, schoolID id.SchoolID) bool {
		exists, err := schools.Exists(ctx, schoolID)
		if err != nil {
			r.logger.ErrorContext(ctx, "school existence check failed", "error", err)
			return false
		}
		return exists
	}))
	return r
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// wrapStoreErr translates store sentinels into coded domain errors.
func wrapStoreErr(err error, what string) error {
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, what+" not found")
	case errors.Is(err, sentinel.ErrConflict):
		return dErrors.New(dErrors.CodeConflict, what+" already exists")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to access "+what)
	}
}

func (r *Roster) emit(ctx context.Context, event audit.Event) {
	if r.audit == nil {
		return
	}
	if err := r.audit.Emit(ctx, event); err != nil {
		r.logger.ErrorContext(ctx, "audit emit failed",
			"action", string(event.Action),
			"error", err,
		)
	}
}

func (r *Roster) invalidateView(ctx context.Context) {
	if r.cache != nil {
		r.cache.Invalidate(ctx)
	}
}
