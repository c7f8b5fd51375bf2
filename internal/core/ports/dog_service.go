package ports

import (
	"context"

	"github.com/patitas/shelter-api/internal/core/domain"
)

// DogInput carries the fields an admin provides when adding or editing a dog.
type DogInput struct {
	Name        string
	Breed       string
	AgeYears    int
	Size        string
	Sex         string
	Description string
	PhotoURL    string
	Adopted     bool
}

// DogService defines catalog operations over the shelter's dogs.
type DogService interface {
	ListDogs(ctx context.Context) ([]*domain.Dog, error)
	GetDog(ctx context.Context, id string) (*domain.Dog, error)
	AddDog(ctx context.Context, input DogInput) (*domain.Dog, error)
	UpdateDog(ctx context.Context, id string, input DogInput) (*domain.Dog, error)
}
