package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// ReportService records animal-abuse reports.
type ReportService struct {
	repo ports.ReportRepository
	log  zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, log zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, log: log}
}

func (s *ReportService) Submit(ctx context.Context, input ports.ReportInput) (*domain.AbuseReport, error) {
	now := time.Now().UTC()

	// Evidence checkboxes are stored as a single joined string, matching the
	// document shape the reportes collection has always had.
	report := &domain.AbuseReport{
		UserID:        input.UserID,
		AbuseType:     input.AbuseType,
		IncidentDate:  input.IncidentDate,
		Evidence:      strings.Join(input.Evidence, ", "),
		EvidenceOther: input.EvidenceOther,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, report)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store abuse report")
		return nil, err
	}

	s.log.Info().Str("report_id", created.ID).Str("tipo", created.AbuseType).Msg("abuse report filed")
	return created, nil
}

func (s *ReportService) ListReports(ctx context.Context) ([]*domain.AbuseReport, error) {
	return s.repo.List(ctx)
}
