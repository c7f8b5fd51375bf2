package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

// DogService implements the adoptable-dog catalog.
type DogService struct {
	repo ports.DogRepository
	log  zerolog.Logger
}

func NewDogService(repo ports.DogRepository, log zerolog.Logger) *DogService {
	return &DogService{repo: repo, log: log}
}

func (s *DogService) ListDogs(ctx context.Context) ([]*domain.Dog, error) {
	return s.repo.List(ctx)
}

func (s *DogService) GetDog(ctx context.Context, id string) (*domain.Dog, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *DogService) AddDog(ctx context.Context, input ports.DogInput) (*domain.Dog, error) {
	now := time.Now().UTC()
	dog := &domain.Dog{
		Name:        input.Name,
		Breed:       input.Breed,
		AgeYears:    input.AgeYears,
		Size:        input.Size,
		Sex:         input.Sex,
		Description: input.Description,
		PhotoURL:    input.PhotoURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, dog)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create dog")
		return nil, err
	}

	s.log.Info().Str("dog_id", created.ID).Str("nombre", created.Name).Msg("dog added to catalog")
	return created, nil
}

func (s *DogService) UpdateDog(ctx context.Context, id string, input ports.DogInput) (*domain.Dog, error) {
	dog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dog.Name = input.Name
	dog.Breed = input.Breed
	dog.AgeYears = input.AgeYears
	dog.Size = input.Size
	dog.Sex = input.Sex
	dog.Description = input.Description
	dog.PhotoURL = input.PhotoURL
	dog.Adopted = input.Adopted
	dog.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}
