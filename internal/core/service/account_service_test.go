package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

func TestAccountService_SetUserActive(t *testing.T) {
	users := newStubUserRepo()
	auth := newTestAuthService(users, newStubAdminRepo())
	user, err := auth.Register(context.Background(), registerInput("ana@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	svc := NewAccountService(users, zerolog.Nop())
	updated, err := svc.SetUserActive(context.Background(), user.ID, false)
	if err != nil {
		t.Fatalf("SetUserActive returned error: %v", err)
	}
	if updated.Active {
		t.Fatalf("expected deactivated user")
	}

	stored, _ := users.FindByID(context.Background(), user.ID)
	if stored.Active {
		t.Fatalf("deactivation not persisted")
	}
}

func TestAccountService_UpdateUser(t *testing.T) {
	users := newStubUserRepo()
	auth := newTestAuthService(users, newStubAdminRepo())
	user, err := auth.Register(context.Background(), registerInput("ana@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	svc := NewAccountService(users, zerolog.Nop())
	updated, err := svc.UpdateUser(context.Background(), user.ID, ports.UserProfileUpdate{
		Name:            "Ana María",
		PaternalSurname: "García",
		MaternalSurname: "López",
		Address:         domain.Address{Street: "Calle 2", Neighborhood: "Roma", City: "CDMX", ZipCode: "06700"},
		Phone:           "5587654321",
		Email:           "ana@example.com",
	})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if updated.Name != "Ana María" || updated.Address.Neighborhood != "Roma" {
		t.Fatalf("unexpected user after update: %+v", updated)
	}
	if updated.PasswordHash == "" {
		t.Fatalf("profile update must not clear the password hash")
	}
}

func TestAccountService_UpdateUser_Unknown(t *testing.T) {
	svc := NewAccountService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.UpdateUser(context.Background(), "missing", ports.UserProfileUpdate{}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.SetUserActive(context.Background(), "missing", true); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
