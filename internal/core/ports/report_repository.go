package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// ReportRepository defines persistence for the reportes collection.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.AbuseReport) (*domain.AbuseReport, error)
	List(ctx context.Context) ([]*domain.AbuseReport, error)
}
