package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/patitas/shelter-api/internal/core/domain"
)

const donationsCollection = "donaciones"

// DonationRepository implements ports.DonationRepository on the donaciones
// collection. Optional fields are omitted from the document entirely rather
// than stored zeroed, preserving the historical shape.
type DonationRepository struct {
	coll *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{coll: db.Collection(donationsCollection)}
}

type donationDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"id_usuario"`
	Amount        float64            `bson:"monto,omitempty"`
	PaymentMethod string             `bson:"metodoPago,omitempty"`
	Supplies      string             `bson:"material,omitempty"`
	SuppliesOther string             `bson:"materialOtro,omitempty"`
	CreatedAt     time.Time          `bson:"creado_en"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (r *DonationRepository) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, donationDoc{
		UserID:        donation.UserID,
		Amount:        donation.Amount,
		PaymentMethod: donation.PaymentMethod,
		Supplies:      donation.Supplies,
		SuppliesOther: donation.SuppliesOther,
		CreatedAt:     donation.CreatedAt,
		UpdatedAt:     donation.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}

	created := *donation
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DonationRepository) List(ctx context.Context) ([]*domain.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "creado_en", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer cur.Close(ctx)

	var donations []*domain.Donation
	for cur.Next(ctx) {
		var doc donationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode donation: %w", err)
		}
		donations = append(donations, &domain.Donation{
			ID:            doc.ID.Hex(),
			UserID:        doc.UserID,
			Amount:        doc.Amount,
			PaymentMethod: doc.PaymentMethod,
			Supplies:      doc.Supplies,
			SuppliesOther: doc.SuppliesOther,
			CreatedAt:     doc.CreatedAt,
			UpdatedAt:     doc.UpdatedAt,
		})
	}
	return donations, cur.Err()
}
