package domain

import "time"

// AbuseReport is an animal-abuse report filed by a user, stored in the
// reportes collection. Evidence checkboxes arrive as a list and are stored
// joined, matching the historical document shape.
type AbuseReport struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	UserID        string    `json:"id_usuario" bson:"id_usuario"`
	AbuseType     string    `json:"tipoDeMaltrato" bson:"tipoDeMaltrato"`
	IncidentDate  time.Time `json:"fecha" bson:"fecha"`
	Evidence      string    `json:"pruebas" bson:"pruebas"`
	EvidenceOther string    `json:"pruebasOtro,omitempty" bson:"pruebasOtro,omitempty"`
	CreatedAt     time.Time `json:"creado_en" bson:"creado_en"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
