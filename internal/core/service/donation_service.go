package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// DonationService records money and supply donations.
type DonationService struct {
	repo ports.DonationRepository
	log  zerolog.Logger
}

func NewDonationService(repo ports.DonationRepository, log zerolog.Logger) *DonationService {
	return &DonationService{repo: repo, log: log}
}

// Submit stores a donation. A donation must carry a positive amount, supply
// items, or both; the payment method is only kept alongside an amount and the
// free-text supply note only alongside supply items.
func (s *DonationService) Submit(ctx context.Context, input ports.DonationInput) (*domain.Donation, error) {
	if input.Amount <= 0 && len(input.Supplies) == 0 {
		return nil, domain.ErrEmptyDonation
	}

	now := time.Now().UTC()
	donation := &domain.Donation{
		UserID:    input.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if input.Amount > 0 {
		donation.Amount = input.Amount
		donation.PaymentMethod = input.PaymentMethod
	}
	if len(input.Supplies) > 0 {
		donation.Supplies = strings.Join(input.Supplies, ", ")
		donation.SuppliesOther = input.SuppliesOther
	}

	created, err := s.repo.Create(ctx, donation)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to store donation")
		return nil, err
	}

	s.log.Info().Str("donation_id", created.ID).Float64("monto", created.Amount).Msg("donation received")
	return created, nil
}

func (s *DonationService) ListDonations(ctx context.Context) ([]*domain.Donation, error) {
	return s.repo.List(ctx)
}
