package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// DogRepository defines persistence for the perros collection.
type DogRepository interface {
	List(ctx context.Context) ([]*domain.Dog, error)
	// FindByID returns domain.ErrDogNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.Dog, error)
	Create(ctx context.Context, dog *domain.Dog) (*domain.Dog, error)
	Update(ctx context.Context, dog *domain.Dog) error
}
