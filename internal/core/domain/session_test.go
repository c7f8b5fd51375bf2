package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIdentityFromAdmin_OmitsProfileFields(t *testing.T) {
	identity := IdentityFromAdmin(&Admin{ID: "admin_1", Name: "Root", Email: "root@example.com"})
	if identity.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %s", identity.Role)
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		t.Fatalf("marshal identity: %v", err)
	}
	for _, field := range []string{"direccion", "telefono", "apellido_paterno"} {
		if strings.Contains(string(payload), field) {
			t.Fatalf("admin identity must not carry %s: %s", field, payload)
		}
	}
}

func TestIdentityFromUser_CarriesProfile(t *testing.T) {
	identity := IdentityFromUser(&User{
		ID:      "user_1",
		Name:    "Ana",
		Address: Address{Street: "Av. Reforma 1", City: "CDMX"},
		Email:   "ana@example.com",
	})
	if identity.Role != RoleUser {
		t.Fatalf("expected user role, got %s", identity.Role)
	}
	if identity.Address == nil || identity.Address.Street != "Av. Reforma 1" {
		t.Fatalf("expected address on user identity: %+v", identity.Address)
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		t.Fatalf("marshal identity: %v", err)
	}
	if !strings.Contains(string(payload), `"direccion"`) {
		t.Fatalf("user identity must serialize its address: %s", payload)
	}
	if strings.Contains(string(payload), "password") {
		t.Fatalf("identity must never carry a password: %s", payload)
	}
}
