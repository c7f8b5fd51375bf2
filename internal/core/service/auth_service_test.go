package service

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
)

type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }
func (fakeHasher) Verify(plaintext, digest string) bool  { return "hashed:"+plaintext == digest }

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneUser(user)
	r.nextID++
	copy.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, _ ports.UserListFilter) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, update ports.UserProfileUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Name = update.Name
	u.PaternalSurname = update.PaternalSurname
	u.MaternalSurname = update.MaternalSurname
	u.Address = update.Address
	u.Phone = update.Phone
	u.Email = update.Email
	return nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	return nil
}

type stubAdminRepo struct {
	admins map[string]*domain.Admin
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAdminRepo) Create(_ context.Context, admin *domain.Admin) (*domain.Admin, error) {
	clone := *admin
	clone.ID = "admin_" + admin.Email
	r.admins[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.admins)), nil
}

func newTestAuthService(users ports.UserRepository, admins ports.AdminRepository) *AuthService {
	return NewAuthService(users, admins, fakeHasher{}, zerolog.Nop())
}

func registerInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Name:            "Ana",
		PaternalSurname: "García",
		MaternalSurname: "López",
		Street:          "Av. Reforma 1",
		Neighborhood:    "Centro",
		City:            "CDMX",
		ZipCode:         "06000",
		Phone:           "5512345678",
		Email:           email,
		Password:        "s3cret",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubAdminRepo())

	user, err := svc.Register(context.Background(), registerInput("ana@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected store-assigned id")
	}
	if user.PasswordHash == "s3cret" {
		t.Fatalf("expected password to be hashed")
	}
	if !user.Active {
		t.Fatalf("expected new user to be active")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubAdminRepo())

	input := registerInput("")
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}

	input = registerInput("ana@example.com")
	input.Password = ""
	if _, err := svc.Register(context.Background(), input); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubAdminRepo())

	if _, err := svc.Register(context.Background(), registerInput("ana@example.com")); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput("ana@example.com")); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubAdminRepo())

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Register(context.Background(), registerInput("ana@example.com"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var created, taken int
	for err := range errs {
		switch err {
		case nil:
			created++
		case domain.ErrEmailTaken:
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if created != 1 || taken != 1 {
		t.Fatalf("expected exactly one winner, got %d created and %d rejected", created, taken)
	}
}

func TestAuthService_EmailExists(t *testing.T) {
	users := newStubUserRepo()
	admins := newStubAdminRepo()
	svc := newTestAuthService(users, admins)

	exists, err := svc.EmailExists(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("EmailExists returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected email to be free")
	}

	if _, err := svc.Register(context.Background(), registerInput("ana@example.com")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	exists, err = svc.EmailExists(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("EmailExists returned error: %v", err)
	}
	if !exists {
		t.Fatalf("expected email to be taken")
	}
}

func TestAuthService_EmailExists_IgnoresAdmins(t *testing.T) {
	admins := newStubAdminRepo()
	hash, _ := fakeHasher{}.Hash("adminpass")
	_, _ = admins.Create(context.Background(), &domain.Admin{Name: "Root", Email: "root@example.com", PasswordHash: hash})
	svc := newTestAuthService(newStubUserRepo(), admins)

	exists, err := svc.EmailExists(context.Background(), "root@example.com")
	if err != nil {
		t.Fatalf("EmailExists returned error: %v", err)
	}
	if exists {
		t.Fatalf("admin email must stay available for user registration")
	}
}

func TestAuthService_Login_UserSuccess(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubAdminRepo())
	user, err := svc.Register(context.Background(), registerInput("ana@example.com"))
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	identity, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("expected user role, got %s", identity.Role)
	}
	if identity.ID != user.ID || identity.Email != "ana@example.com" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Login_AdminSuccess(t *testing.T) {
	admins := newStubAdminRepo()
	hash, _ := fakeHasher{}.Hash("adminpass")
	_, _ = admins.Create(context.Background(), &domain.Admin{Name: "Root", Email: "root@example.com", PasswordHash: hash})
	svc := newTestAuthService(newStubUserRepo(), admins)

	identity, err := svc.Login(context.Background(), "root@example.com", "adminpass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", identity.Role)
	}
}

func TestAuthService_Login_UserWinsOverAdmin(t *testing.T) {
	admins := newStubAdminRepo()
	adminHash, _ := fakeHasher{}.Hash("adminpass")
	_, _ = admins.Create(context.Background(), &domain.Admin{Name: "Root", Email: "shared@example.com", PasswordHash: adminHash})
	svc := newTestAuthService(newStubUserRepo(), admins)

	input := registerInput("shared@example.com")
	input.Password = "userpass"
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	identity, err := svc.Login(context.Background(), "shared@example.com", "userpass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if identity.Role != domain.RoleUser {
		t.Fatalf("usuarios must take precedence, got role %s", identity.Role)
	}

	// The user account owns the email: the admin's own password no longer
	// reaches the administradores lookup.
	if _, err := svc.Login(context.Background(), "shared@example.com", "adminpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UniformFailures(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubAdminRepo())
	if _, err := svc.Register(context.Background(), registerInput("ana@example.com")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@example.com", "s3cret"},
		{"wrong password", "ana@example.com", "wrong"},
		{"empty email", "", "s3cret"},
		{"empty password", "ana@example.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.email, tc.password); err != domain.ErrInvalidCredentials {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Login_IdentityOmitsPasswordHash(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), newStubAdminRepo())
	if _, err := svc.Register(context.Background(), registerInput("ana@example.com")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	identity, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if identity.FullName() != "Ana García López" {
		t.Fatalf("unexpected full name: %q", identity.FullName())
	}
}

func TestAuthService_EnsureAdmin_SeedsWhenEmpty(t *testing.T) {
	admins := newStubAdminRepo()
	svc := newTestAuthService(newStubUserRepo(), admins)

	if err := svc.EnsureAdmin(context.Background(), "Root", "root@example.com", "adminpass"); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	n, _ := admins.Count(context.Background())
	if n != 1 {
		t.Fatalf("expected one seeded admin, got %d", n)
	}

	identity, err := svc.Login(context.Background(), "root@example.com", "adminpass")
	if err != nil {
		t.Fatalf("Login as seeded admin failed: %v", err)
	}
	if identity.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", identity.Role)
	}
}

func TestAuthService_EnsureAdmin_SkipsWhenPopulated(t *testing.T) {
	admins := newStubAdminRepo()
	_, _ = admins.Create(context.Background(), &domain.Admin{Name: "Existing", Email: "existing@example.com"})
	svc := newTestAuthService(newStubUserRepo(), admins)

	if err := svc.EnsureAdmin(context.Background(), "Root", "root@example.com", "adminpass"); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	n, _ := admins.Count(context.Background())
	if n != 1 {
		t.Fatalf("expected no new admin, got %d", n)
	}
}

func TestAuthService_EnsureAdmin_NoCredentialsConfigured(t *testing.T) {
	admins := newStubAdminRepo()
	svc := newTestAuthService(newStubUserRepo(), admins)

	if err := svc.EnsureAdmin(context.Background(), "Root", "", ""); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	n, _ := admins.Count(context.Background())
	if n != 0 {
		t.Fatalf("expected no seeding without credentials, got %d", n)
	}
}
