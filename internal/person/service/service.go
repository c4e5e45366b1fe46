// Package service holds the business layer for the persons directory.
// Handlers delegate here; stores stay dumb.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"demonym/internal/person/models"
	"demonym/internal/platform/metrics"
	"demonym/pkg/nationality"
)

// Store is the persistence contract the service depends on. Both the memory
// and Postgres stores satisfy it.
type Store interface {
	Create(ctx context.Context, p *models.Person) error
	FindByID(ctx context.Context, personID uuid.UUID) (*models.Person, error)
	List(ctx context.Context) ([]*models.Person, error)
	ListByNationality(ctx context.Context, code string) ([]*models.Person, error)
}

// Service coordinates person operations and nationality lookups.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	now     func() time.Time
}

// New constructs a Service. Metrics may be nil in tests.
func New(store Store, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		store:   store,
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer("demonym/person"),
		now:     time.Now,
	}
}

// CreatePerson validates the request and stores a new person. The
// nationality code is not checked against the table: unknown codes are
// stored as-is and resolve no display name, per column semantics.
func (s *Service) CreatePerson(ctx context.Context, req *models.CreatePersonRequest) (*models.Person, error) {
	ctx, span := s.tracer.Start(ctx, "person.create")
	defer span.End()

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validate create person: %w", err)
	}

	p := &models.Person{
		ID:          uuid.New(),
		FullName:    req.FullName,
		Nationality: nationality.New(req.Nationality),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("store person: %w", err)
	}

	if s.metrics != nil {
		s.metrics.PersonsCreated.Inc()
	}
	span.SetAttributes(attribute.String("person.nationality", p.Nationality.Code()))
	s.logger.InfoContext(ctx, "person created",
		"person_id", p.ID.String(),
		"nationality", p.Nationality.Code(),
	)
	return p, nil
}

// GetPerson fetches a single person.
func (s *Service) GetPerson(ctx context.Context, personID uuid.UUID) (*models.Person, error) {
	ctx, span := s.tracer.Start(ctx, "person.get")
	defer span.End()
	return s.store.FindByID(ctx, personID)
}

// ListPersons lists the directory, optionally filtered by nationality code.
func (s *Service) ListPersons(ctx context.Context, code string) ([]*models.Person, error) {
	ctx, span := s.tracer.Start(ctx, "person.list")
	defer span.End()
	if code != "" {
		return s.store.ListByNationality(ctx, code)
	}
	return s.store.List(ctx)
}

// ResolveName resolves a nationality code to its display name, counting
// table hits and misses. A miss is a valid outcome, not an error.
func (s *Service) ResolveName(ctx context.Context, code string) (string, bool) {
	_, span := s.tracer.Start(ctx, "nationality.resolve")
	defer span.End()

	name, ok := nationality.NameFor(code)
	if s.metrics != nil {
		if ok {
			s.metrics.LookupHits.Inc()
		} else {
			s.metrics.LookupMisses.Inc()
		}
	}
	span.SetAttributes(
		attribute.String("nationality.code", code),
		attribute.Bool("nationality.resolved", ok),
	)
	return name, ok
}
