package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/ekalbevoldog/contested/internal/domain/session"
	"github.com/ekalbevoldog/contested/internal/domain/storage"
	"github.com/ekalbevoldog/contested/internal/domain/user"
	"github.com/ekalbevoldog/contested/internal/platform/id"
	"github.com/ekalbevoldog/contested/internal/platform/password"
)

const minPasswordLength = 8

type RegisterInput struct {
	Email    string
	Password string
	Username string
	FullName string
	Role     string
}

type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

type AuthService struct {
	userRepo    user.Repository
	sessionRepo session.Repository
	idGen       id.Generator
	secret      []byte
	ttl         time.Duration
	now         func() time.Time
}

func NewAuthService(
	userRepo user.Repository,
	sessionRepo session.Repository,
	idGen id.Generator,
	secret []byte,
	ttl time.Duration,
) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		idGen:       idGen,
		secret:      secret,
		ttl:         ttl,
		now:         time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.FullName = strings.TrimSpace(input.FullName)

	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return user.User{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	}
	if input.Username == "" {
		return user.User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return user.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	role, ok := user.ParseRole(strings.ToLower(strings.TrimSpace(input.Role)))
	if !ok {
		return user.User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, input.Role)
	}

	if _, exists, err := s.userRepo.GetByEmail(ctx, input.Email); err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: email is already registered", ErrConflict)
	}
	if _, exists, err := s.userRepo.GetByUsername(ctx, input.Username); err != nil {
		return user.User{}, fmt.Errorf("get user by username: %w", err)
	} else if exists {
		return user.User{}, fmt.Errorf("%w: username is already taken", ErrConflict)
	}

	hash, salt, err := password.Hash(input.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	created := user.User{
		ID:           userID,
		Email:        input.Email,
		Username:     input.Username,
		FullName:     input.FullName,
		Role:         role,
		PasswordHash: hash,
		PasswordSalt: salt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, created); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return user.User{}, fmt.Errorf("%w: email or username is already registered", ErrConflict)
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

// Login verifies credentials and mints a new session token. The caller
// receives the raw token exactly once; only its keyed hash is persisted.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (string, user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || input.Password == "" {
		return "", user.User{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	found, exists, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		// Burn a full derivation so unknown emails cost the same as wrong
		// passwords.
		password.Verify(input.Password, nil, []byte("contested-missing-user"))
		return "", user.User{}, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	if !password.Verify(input.Password, found.PasswordHash, found.PasswordSalt) {
		return "", user.User{}, fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
	}

	token, err := newSessionToken()
	if err != nil {
		return "", user.User{}, fmt.Errorf("generate session token: %w", err)
	}

	payload, err := sonic.Marshal(map[string]string{
		"ip":         strings.TrimSpace(input.IPAddress),
		"user_agent": strings.TrimSpace(input.UserAgent),
	})
	if err != nil {
		return "", user.User{}, fmt.Errorf("encode session payload: %w", err)
	}

	now := s.now().UTC()
	if err := s.sessionRepo.Create(ctx, session.Session{
		TokenHash: s.TokenHash(token),
		UserID:    found.ID,
		Role:      string(found.Role),
		Payload:   payload,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}); err != nil {
		return "", user.User{}, fmt.Errorf("create session: %w", err)
	}

	return token, found, nil
}

// Logout deletes the session for the given token. Unknown or already expired
// tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteByTokenHash(ctx, s.TokenHash(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (user.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Authenticate")
	defer span.End()

	if strings.TrimSpace(token) == "" {
		return user.Principal{}, fmt.Errorf("%w: missing session token", ErrUnauthorized)
	}

	sess, exists, err := s.sessionRepo.GetByTokenHash(ctx, s.TokenHash(token))
	if err != nil {
		return user.Principal{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return user.Principal{}, fmt.Errorf("%w: session not found", ErrUnauthorized)
	}
	if sess.Expired(s.now().UTC()) {
		_ = s.sessionRepo.DeleteByTokenHash(ctx, sess.TokenHash)
		return user.Principal{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}

	found, exists, err := s.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return user.Principal{}, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return user.Principal{}, fmt.Errorf("%w: session user no longer exists", ErrUnauthorized)
	}

	return user.Principal{
		UserID: found.ID,
		Email:  found.Email,
		Role:   found.Role,
	}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, principal user.Principal) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.CurrentUser")
	defer span.End()

	found, exists, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}

	return found, nil
}

// TokenHash derives the storable form of a raw session token. The raw token
// never touches the database.
func (s *AuthService) TokenHash(token string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
