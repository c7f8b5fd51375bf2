package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/patitas/shelter-api/internal/core/domain"
)

const dogsCollection = "perros"

// DogRepository implements ports.DogRepository on the perros collection.
type DogRepository struct {
	coll *mongo.Collection
}

func NewDogRepository(db *mongo.Database) *DogRepository {
	return &DogRepository{coll: db.Collection(dogsCollection)}
}

type dogDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"nombre"`
	Breed       string             `bson:"raza"`
	AgeYears    int                `bson:"edad"`
	Size        string             `bson:"tamano"`
	Sex         string             `bson:"sexo"`
	Description string             `bson:"descripcion"`
	PhotoURL    string             `bson:"foto_url,omitempty"`
	Adopted     bool               `bson:"adoptado"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *dogDoc) toDomain() *domain.Dog {
	return &domain.Dog{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Breed:       d.Breed,
		AgeYears:    d.AgeYears,
		Size:        d.Size,
		Sex:         d.Sex,
		Description: d.Description,
		PhotoURL:    d.PhotoURL,
		Adopted:     d.Adopted,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func fromDog(dog *domain.Dog) dogDoc {
	return dogDoc{
		Name:        dog.Name,
		Breed:       dog.Breed,
		AgeYears:    dog.AgeYears,
		Size:        dog.Size,
		Sex:         dog.Sex,
		Description: dog.Description,
		PhotoURL:    dog.PhotoURL,
		Adopted:     dog.Adopted,
		CreatedAt:   dog.CreatedAt,
		UpdatedAt:   dog.UpdatedAt,
	}
}

func (r *DogRepository) List(ctx context.Context) ([]*domain.Dog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list dogs: %w", err)
	}
	defer cur.Close(ctx)

	var dogs []*domain.Dog
	for cur.Next(ctx) {
		var doc dogDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode dog: %w", err)
		}
		dogs = append(dogs, doc.toDomain())
	}
	return dogs, cur.Err()
}

func (r *DogRepository) FindByID(ctx context.Context, id string) (*domain.Dog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDogNotFound
	}

	var doc dogDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDogNotFound
		}
		return nil, fmt.Errorf("find dog: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DogRepository) Create(ctx context.Context, dog *domain.Dog) (*domain.Dog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDog(dog))
	if err != nil {
		return nil, fmt.Errorf("insert dog: %w", err)
	}

	created := *dog
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DogRepository) Update(ctx context.Context, dog *domain.Dog) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(dog.ID)
	if err != nil {
		return domain.ErrDogNotFound
	}

	doc := fromDog(dog)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("update dog: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDogNotFound
	}
	return nil
}
