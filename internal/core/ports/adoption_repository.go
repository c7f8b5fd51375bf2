package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// AdoptionRepository defines persistence for the solicitudes_adopcion collection.
type AdoptionRepository interface {
	Create(ctx context.Context, req *domain.AdoptionRequest) (*domain.AdoptionRequest, error)
	FindByID(ctx context.Context, id string) (*domain.AdoptionRequest, error)
	// List returns all requests, newest first.
	List(ctx context.Context) ([]*domain.AdoptionRequest, error)
	UpdateState(ctx context.Context, id string, state domain.AdoptionState) error
}
