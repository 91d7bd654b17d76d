package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ekalbevoldog/contested/internal/infrastructure/repository/memory"
	"github.com/ekalbevoldog/contested/internal/platform/id"
)

func newAuthServiceForTest() (*AuthService, *memory.Stores) {
	stores := memory.NewStores()
	svc := NewAuthService(
		stores.Users,
		stores.Sessions,
		id.NewRandomGenerator(),
		[]byte("test-session-secret"),
		time.Hour,
	)
	return svc, stores
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	registered, err := svc.Register(ctx, RegisterInput{
		Email:    "Athlete@Example.com",
		Password: "super-secret-1",
		Username: "athlete1",
		FullName: "Test Athlete",
		Role:     "athlete",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Email != "athlete@example.com" {
		t.Fatalf("expected lowercased email, got %q", registered.Email)
	}

	token, loggedIn, err := svc.Login(ctx, LoginInput{
		Email:    "athlete@example.com",
		Password: "super-secret-1",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if loggedIn.ID != registered.ID {
		t.Fatalf("login returned user %q, registered %q", loggedIn.ID, registered.ID)
	}

	principal, err := svc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if principal.UserID != registered.ID {
		t.Fatalf("session resolves to user %q, want %q", principal.UserID, registered.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Email:    "biz@example.com",
		Password: "correct-password",
		Username: "biz1",
		Role:     "business",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Login(ctx, LoginInput{Email: "biz@example.com", Password: "wrong-password"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	_, _, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever-password"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown email, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, stores := newAuthServiceForTest()
	ctx := context.Background()

	input := RegisterInput{
		Email:    "dup@example.com",
		Password: "super-secret-1",
		Username: "dup1",
		Role:     "athlete",
	}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	input.Username = "dup2"
	if _, err := svc.Register(ctx, input); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Exactly one row survives.
	items, err := stores.Users.ListByRole(ctx, "athlete")
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 user, got %d", len(items))
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newAuthServiceForTest()

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "x@example.com",
		Password: "super-secret-1",
		Username: "x1",
		Role:     "superuser",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Email:    "out@example.com",
		Password: "super-secret-1",
		Username: "out1",
		Role:     "athlete",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := svc.Login(ctx, LoginInput{Email: "out@example.com", Password: "super-secret-1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}

	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}

func TestAuthenticateExpiredSession(t *testing.T) {
	svc, _ := newAuthServiceForTest()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		Email:    "exp@example.com",
		Password: "super-secret-1",
		Username: "exp1",
		Role:     "athlete",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	token, _, err := svc.Login(ctx, LoginInput{Email: "exp@example.com", Password: "super-secret-1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, err := svc.Authenticate(ctx, token); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired session, got %v", err)
	}
}

func TestGetUnknownUserReportsMissingWithoutError(t *testing.T) {
	_, stores := newAuthServiceForTest()

	_, exists, err := stores.Users.GetByID(context.Background(), "no-such-user")
	if err != nil {
		t.Fatalf("lookup must not error for missing rows: %v", err)
	}
	if exists {
		t.Fatalf("expected exists=false for unknown id")
	}
}
