package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// DonationInput carries a submitted donation. Amount and Supplies are each
// optional, but at least one must be present.
type DonationInput struct {
	UserID        string
	Amount        float64
	PaymentMethod string
	Supplies      []string
	SuppliesOther string
}

// DonationService records and lists donations.
type DonationService interface {
	Submit(ctx context.Context, input DonationInput) (*domain.Donation, error)
	ListDonations(ctx context.Context) ([]*domain.Donation, error)
}
