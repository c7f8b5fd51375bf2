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

const reportsCollection = "reportes"

// ReportRepository implements ports.ReportRepository on the reportes collection.
type ReportRepository struct {
	coll *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{coll: db.Collection(reportsCollection)}
}

type reportDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"id_usuario"`
	AbuseType     string             `bson:"tipoDeMaltrato"`
	IncidentDate  time.Time          `bson:"fecha"`
	Evidence      string             `bson:"pruebas"`
	EvidenceOther string             `bson:"pruebasOtro,omitempty"`
	CreatedAt     time.Time          `bson:"creado_en"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.AbuseReport) (*domain.AbuseReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, reportDoc{
		UserID:        report.UserID,
		AbuseType:     report.AbuseType,
		IncidentDate:  report.IncidentDate,
		Evidence:      report.Evidence,
		EvidenceOther: report.EvidenceOther,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}

	created := *report
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ReportRepository) List(ctx context.Context) ([]*domain.AbuseReport, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "creado_en", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer cur.Close(ctx)

	var reports []*domain.AbuseReport
	for cur.Next(ctx) {
		var doc reportDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		reports = append(reports, &domain.AbuseReport{
			ID:            doc.ID.Hex(),
			UserID:        doc.UserID,
			AbuseType:     doc.AbuseType,
			IncidentDate:  doc.IncidentDate,
			Evidence:      doc.Evidence,
			EvidenceOther: doc.EvidenceOther,
			CreatedAt:     doc.CreatedAt,
			UpdatedAt:     doc.UpdatedAt,
		})
	}
	return reports, cur.Err()
}
