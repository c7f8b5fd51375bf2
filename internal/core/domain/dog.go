package domain

import (
	"errors"
	"time"
)

var ErrDogNotFound = errors.New("dog not found")

// Dog is an animal listed for adoption, stored in the perros collection.
type Dog struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"nombre" bson:"nombre"`
	Breed       string    `json:"raza" bson:"raza"`
	AgeYears    int       `json:"edad" bson:"edad"`
	Size        string    `json:"tamano" bson:"tamano"`
	Sex         string    `json:"sexo" bson:"sexo"`
	Description string    `json:"descripcion" bson:"descripcion"`
	PhotoURL    string    `json:"foto_url,omitempty" bson:"foto_url,omitempty"`
	Adopted     bool      `json:"adoptado" bson:"adoptado"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
