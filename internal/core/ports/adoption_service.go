package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// AdoptionInput carries a submitted adoption application. The requester
// fields come from the session identity, never from the request body.
type AdoptionInput struct {
	UserID        string
	FullName      string
	DogID         string
	Questionnaire domain.Questionnaire
}

// AdoptionService defines the adoption-request workflow.
type AdoptionService interface {
	// Submit validates the target dog exists and records a pending request.
	Submit(ctx context.Context, input AdoptionInput) (*domain.AdoptionRequest, error)
	ListRequests(ctx context.Context) ([]*domain.AdoptionRequest, error)
	// Decide moves a pending request to aprobada or rechazada.
	Decide(ctx context.Context, id string, state domain.AdoptionState) (*domain.AdoptionRequest, error)
}
