package ports

import (
	"context"
	"time"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// ReportInput carries a submitted abuse report. Evidence arrives as the raw
// checkbox selection; the service joins it for storage.
type ReportInput struct {
	UserID        string
	AbuseType     string
	IncidentDate  time.Time
	Evidence      []string
	EvidenceOther string
}

// ReportService records and lists animal-abuse reports.
type ReportService interface {
	Submit(ctx context.Context, input ReportInput) (*domain.AbuseReport, error)
	ListReports(ctx context.Context) ([]*domain.AbuseReport, error)
}
