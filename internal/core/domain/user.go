package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrUserNotFound = errors.New("user not found")

// Address is the postal address attached to a user profile.
type Address struct {
	Street       string `json:"calle" bson:"calle"`
	Neighborhood string `json:"colonia" bson:"colonia"`
	City         string `json:"ciudad" bson:"ciudad"`
	ZipCode      string `json:"codigo_postal" bson:"codigo_postal"`
}

// User is a principal stored in the usuarios collection. The password hash
// never serializes: profile responses and session identities carry every
// field but that one.
type User struct {
	ID              string    `json:"id"`
	Name            string    `json:"nombre"`
	PaternalSurname string    `json:"apellido_paterno"`
	MaternalSurname string    `json:"apellido_materno"`
	Address         Address   `json:"direccion"`
	Phone           string    `json:"telefono"`
	Email           string    `json:"correo"`
	PasswordHash    string    `json:"-"`
	Active          bool      `json:"activo"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// FullName joins the name parts, skipping any that are empty.
func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.Name, u.PaternalSurname, u.MaternalSurname} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Admin is a principal stored in the administradores collection. Admins are
// provisioned out of band and carry no profile beyond a display name.
type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"nombre"`
	Email        string    `json:"correo"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
