package domain

import (
	"errors"
	"time"
)

var ErrEmptyDonation = errors.New("donation must include an amount or supplies")

// Donation records money and/or supplies given by a user, stored in the
// donaciones collection. Amount and Supplies are each optional but at least
// one must be present; PaymentMethod only accompanies an amount and
// SuppliesOther only accompanies supplies.
type Donation struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	UserID        string    `json:"id_usuario" bson:"id_usuario"`
	Amount        float64   `json:"monto,omitempty" bson:"monto,omitempty"`
	PaymentMethod string    `json:"metodoPago,omitempty" bson:"metodoPago,omitempty"`
	Supplies      string    `json:"material,omitempty" bson:"material,omitempty"`
	SuppliesOther string    `json:"materialOtro,omitempty" bson:"materialOtro,omitempty"`
	CreatedAt     time.Time `json:"creado_en" bson:"creado_en"`
	UpdatedAt     time.Time `json:"updated_at" bson:"updated_at"`
}
