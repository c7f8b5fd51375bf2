package domain

import (
	"errors"
	"time"
)

// AdoptionState represents the review state of an adoption request.
type AdoptionState string

const (
	AdoptionPending  AdoptionState = "pendiente"
	AdoptionApproved AdoptionState = "aprobada"
	AdoptionRejected AdoptionState = "rechazada"
)

// Requests leave pendiente exactly once; a decision is final.
var adoptionTransitions = map[AdoptionState][]AdoptionState{
	AdoptionPending: {AdoptionApproved, AdoptionRejected},
}

var ErrAdoptionNotFound = errors.New("adoption request not found")
var ErrInvalidState = errors.New("invalid adoption state transition")

// CanTransitionTo reports whether a transition from s to next is allowed.
func (s AdoptionState) CanTransitionTo(next AdoptionState) bool {
	for _, allowed := range adoptionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Questionnaire holds the applicant's answers on the adoption form. All
// fields are required; blank answers are rejected before persistence.
type Questionnaire struct {
	Housing              string `json:"vivienda" bson:"vivienda"`
	TimeAvailable        string `json:"tiempo" bson:"tiempo"`
	CurrentPets          string `json:"mascotas_actuales" bson:"mascotas_actuales"`
	Experience           string `json:"experiencia" bson:"experiencia"`
	Reason               string `json:"motivo_adopcion" bson:"motivo_adopcion"`
	CareKnowledge        string `json:"conocimiento_cuidado" bson:"conocimiento_cuidado"`
	FinancialResponsible string `json:"responsable_financiero" bson:"responsable_financiero"`
	HousingAgreement     string `json:"acuerdo_vivienda" bson:"acuerdo_vivienda"`
	PhysicalActivity     string `json:"actividad_fisica" bson:"actividad_fisica"`
	TimeCommitment       string `json:"tiempo_compromiso" bson:"tiempo_compromiso"`
}

// AdoptionRequest records a user's application to adopt a specific dog,
// stored in the solicitudes_adopcion collection. The requester's name is
// snapshotted at submission time, as later profile edits must not rewrite
// past requests.
type AdoptionRequest struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	UserID        string        `json:"id_usuario" bson:"id_usuario"`
	FullName      string        `json:"nombre_completo" bson:"nombre_completo"`
	DogID         string        `json:"id_perro" bson:"id_perro"`
	Questionnaire Questionnaire `json:"cuestionario" bson:"cuestionario"`
	State         AdoptionState `json:"estado" bson:"estado"`
	RequestedAt   time.Time     `json:"fecha_solicitud" bson:"fecha_solicitud"`
	UpdatedAt     time.Time     `json:"updated_at" bson:"updated_at"`
}
