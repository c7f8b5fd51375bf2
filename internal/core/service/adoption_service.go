package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// AdoptionService implements the adoption-request workflow.
type AdoptionService struct {
	repo ports.AdoptionRepository
	dogs ports.DogRepository
	log  zerolog.Logger
}

func NewAdoptionService(repo ports.AdoptionRepository, dogs ports.DogRepository, log zerolog.Logger) *AdoptionService {
	return &AdoptionService{repo: repo, dogs: dogs, log: log}
}

// Submit records a pending request after confirming the dog exists.
func (s *AdoptionService) Submit(ctx context.Context, input ports.AdoptionInput) (*domain.AdoptionRequest, error) {
	if _, err := s.dogs.FindByID(ctx, input.DogID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	req := &domain.AdoptionRequest{
		UserID:        input.UserID,
		FullName:      input.FullName,
		DogID:         input.DogID,
		Questionnaire: input.Questionnaire,
		State:         domain.AdoptionPending,
		RequestedAt:   now,
		UpdatedAt:     now,
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("id_perro", input.DogID).Msg("failed to store adoption request")
		return nil, err
	}

	s.log.Info().Str("request_id", created.ID).Str("id_perro", created.DogID).Str("id_usuario", created.UserID).Msg("adoption request submitted")
	return created, nil
}

func (s *AdoptionService) ListRequests(ctx context.Context) ([]*domain.AdoptionRequest, error) {
	return s.repo.List(ctx)
}

// Decide applies an admin decision. Only pending requests move; a second
// decision on the same request fails with ErrInvalidState.
func (s *AdoptionService) Decide(ctx context.Context, id string, state domain.AdoptionState) (*domain.AdoptionRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !req.State.CanTransitionTo(state) {
		return nil, domain.ErrInvalidState
	}

	if err := s.repo.UpdateState(ctx, id, state); err != nil {
		return nil, err
	}

	req.State = state
	req.UpdatedAt = time.Now().UTC()
	s.log.Info().Str("request_id", id).Str("estado", string(state)).Msg("adoption request decided")
	return req, nil
}
