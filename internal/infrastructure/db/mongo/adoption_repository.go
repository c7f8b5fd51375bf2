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

const adoptionsCollection = "solicitudes_adopcion"

// AdoptionRepository implements ports.AdoptionRepository on the
// solicitudes_adopcion collection.
type AdoptionRepository struct {
	coll *mongo.Collection
}

func NewAdoptionRepository(db *mongo.Database) *AdoptionRepository {
	return &AdoptionRepository{coll: db.Collection(adoptionsCollection)}
}

type adoptionDoc struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	UserID        string               `bson:"id_usuario"`
	FullName      string               `bson:"nombre_completo"`
	DogID         string               `bson:"id_perro"`
	Questionnaire domain.Questionnaire `bson:"cuestionario,inline"`
	State         string               `bson:"estado"`
	RequestedAt   time.Time            `bson:"fecha_solicitud"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

func (d *adoptionDoc) toDomain() *domain.AdoptionRequest {
	return &domain.AdoptionRequest{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		FullName:      d.FullName,
		DogID:         d.DogID,
		Questionnaire: d.Questionnaire,
		State:         domain.AdoptionState(d.State),
		RequestedAt:   d.RequestedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r *AdoptionRepository) Create(ctx context.Context, req *domain.AdoptionRequest) (*domain.AdoptionRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, adoptionDoc{
		UserID:        req.UserID,
		FullName:      req.FullName,
		DogID:         req.DogID,
		Questionnaire: req.Questionnaire,
		State:         string(req.State),
		RequestedAt:   req.RequestedAt,
		UpdatedAt:     req.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert adoption request: %w", err)
	}

	created := *req
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *AdoptionRepository) FindByID(ctx context.Context, id string) (*domain.AdoptionRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAdoptionNotFound
	}

	var doc adoptionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAdoptionNotFound
		}
		return nil, fmt.Errorf("find adoption request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AdoptionRepository) List(ctx context.Context) ([]*domain.AdoptionRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "fecha_solicitud", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list adoption requests: %w", err)
	}
	defer cur.Close(ctx)

	var reqs []*domain.AdoptionRequest
	for cur.Next(ctx) {
		var doc adoptionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode adoption request: %w", err)
		}
		reqs = append(reqs, doc.toDomain())
	}
	return reqs, cur.Err()
}

func (r *AdoptionRepository) UpdateState(ctx context.Context, id string, state domain.AdoptionState) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAdoptionNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"estado":     string(state),
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return fmt.Errorf("update adoption state: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAdoptionNotFound
	}
	return nil
}
