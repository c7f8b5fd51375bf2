package domain

// Role tags a session identity with the collection it authenticated against.
type Role string

const (
	// RoleUser is a principal from the usuarios collection.
	RoleUser Role = "user"
	// RoleAdmin is a principal from the administradores collection.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
