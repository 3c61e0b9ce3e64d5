package validation

import (
	"context"
	"errors"
	"time"

	"github.com/edelwud/pillar-validator/internal/domain"
	"github.com/edelwud/pillar-validator/internal/infrastructure/logger"
)

// Service loads the pillar from a source and validates it.
type Service struct {
	source  domain.PillarSource
	metrics domain.MetricsService
	logger  domain.Logger
}

// NewService creates a validation service.
func NewService(src domain.PillarSource, metrics domain.MetricsService, log domain.Logger) *Service {
	return &Service{
		source:  src,
		metrics: metrics,
		logger:  log.With(logger.Component("validation")),
	}
}

// Validate loads the current pillar and runs every check against it.
func (s *Service) Validate(ctx context.Context, deployed []domain.Node) (*domain.ValidationReport, error) {
	start := time.Now()
	sourceName := s.source.Name()

	p, err := s.source.Load(ctx)
	loadDuration := time.Since(start)
	s.metrics.RecordSourceLoad(ctx, sourceName, err == nil, loadDuration)
	if err != nil {
		s.logger.Error("Failed to load pillar", logger.Source(sourceName), logger.Error(err))
		return nil, err
	}

	report := &domain.ValidationReport{
		Valid:     true,
		Source:    sourceName,
		Deployed:  len(deployed),
		CheckedAt: start,
	}

	kind := domain.ValidationKindNone
	if verr := ValidateConfig(p, deployed); verr != nil {
		var issue *domain.ValidationError
		if !errors.As(verr, &issue) {
			return nil, domain.NewInternalError("unexpected validation failure", verr)
		}
		report.Valid = false
		report.Issue = issue
		kind = issue.Kind
	}

	report.Duration = time.Since(start)
	s.metrics.RecordValidation(ctx, sourceName, kind, report.Valid, report.Duration)

	switch {
	case report.Valid:
		s.logger.Info("Pillar is valid",
			logger.Source(sourceName),
			logger.Int("deployed", report.Deployed),
			logger.Duration("duration", report.Duration))
	case report.Issue.Severity() == domain.ValidationSeverityAdvisory:
		s.logger.Warn("Pillar validation advisory",
			logger.Source(sourceName),
			logger.PillarKey(report.Issue.Key),
			logger.String("message", report.Issue.Error()))
	default:
		fields := []domain.Field{
			logger.Source(sourceName),
			logger.Kind(report.Issue.Kind),
			logger.PillarKey(report.Issue.Key),
			logger.String("message", report.Issue.Error()),
		}
		if report.Issue.Hostname != "" {
			fields = append(fields, logger.Hostname(report.Issue.Hostname))
		}
		s.logger.Warn("Pillar is invalid", fields...)
	}

	return report, nil
}

// Check loads the pillar without validating it. It is used as a
// readiness probe for the configured source.
func (s *Service) Check(ctx context.Context) error {
	start := time.Now()
	_, err := s.source.Load(ctx)
	s.metrics.RecordSourceLoad(ctx, s.source.Name(), err == nil, time.Since(start))

	return err
}

// SourceName returns the name of the configured pillar source.
func (s *Service) SourceName() string {
	return s.source.Name()
}
