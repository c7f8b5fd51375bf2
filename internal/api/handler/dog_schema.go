package handler

import "github.com/patitas/shelter-api/internal/core/ports"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type dogRequest struct {
	Name        string `json:"nombre"      validate:"required"`
	Breed       string `json:"raza"        validate:"required"`
	AgeYears    int    `json:"edad"        validate:"gte=0"`
	Size        string `json:"tamano"      validate:"required,oneof=chico mediano grande"`
	Sex         string `json:"sexo"        validate:"required,oneof=macho hembra"`
	Description string `json:"descripcion" validate:"required"`
	PhotoURL    string `json:"foto_url"`
	Adopted     bool   `json:"adoptado"`
}

func (r dogRequest) toInput() ports.DogInput {
	return ports.DogInput{
		Name:        r.Name,
		Breed:       r.Breed,
		AgeYears:    r.AgeYears,
		Size:        r.Size,
		Sex:         r.Sex,
		Description: r.Description,
		PhotoURL:    r.PhotoURL,
		Adopted:     r.Adopted,
	}
}
