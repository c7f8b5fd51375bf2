package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// DonationRepository defines persistence for the donaciones collection.
type DonationRepository interface {
	Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error)
	List(ctx context.Context) ([]*domain.Donation, error)
}
