package domain

import "errors"

var ErrSessionNotFound = errors.New("session not found")

// SessionIdentity is the authenticated, role-tagged value held for a browser
// session. It is built from a principal at login time and carries every
// principal field except the password hash. Exactly one identity derives from
// one principal per session.
type SessionIdentity struct {
	ID              string   `json:"id"`
	Name            string   `json:"nombre"`
	PaternalSurname string   `json:"apellido_paterno,omitempty"`
	MaternalSurname string   `json:"apellido_materno,omitempty"`
	Address         *Address `json:"direccion,omitempty"`
	Phone           string   `json:"telefono,omitempty"`
	Email           string   `json:"correo"`
	Role            Role     `json:"role"`
}

// IdentityFromUser derives a user-role session identity.
func IdentityFromUser(u *User) SessionIdentity {
	addr := u.Address
	return SessionIdentity{
		ID:              u.ID,
		Name:            u.Name,
		PaternalSurname: u.PaternalSurname,
		MaternalSurname: u.MaternalSurname,
		Address:         &addr,
		Phone:           u.Phone,
		Email:           u.Email,
		Role:            RoleUser,
	}
}

// IdentityFromAdmin derives an admin-role session identity.
func IdentityFromAdmin(a *Admin) SessionIdentity {
	return SessionIdentity{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  RoleAdmin,
	}
}

// FullName joins the identity's name parts, skipping any that are empty.
func (s SessionIdentity) FullName() string {
	full := s.Name
	for _, p := range []string{s.PaternalSurname, s.MaternalSurname} {
		if p != "" {
			full += " " + p
		}
	}
	return full
}
