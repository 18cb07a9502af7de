package v1

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/dramon11/boat-rental/internal/auth"
	"github.com/dramon11/boat-rental/internal/core/domain"
	"github.com/dramon11/boat-rental/middleware"
)

// AuthService verifies credentials and issues session tokens.
// It depends on repository interfaces (injected via constructor) and
// MUST NOT access the database or SQL directly.
type AuthService struct {
	users        domain.UserRepository
	sessions     domain.SessionRepository
	tokens       *auth.TokenManager
	strictLogout bool
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, tokens *auth.TokenManager, strictLogout bool) *AuthService {
	return &AuthService{
		users:        users,
		sessions:     sessions,
		tokens:       tokens,
		strictLogout: strictLogout,
	}
}

// Login checks a username/password pair against the credential store and
// issues a signed session token on success.
//
// An unknown username and a wrong password both return ErrInvalidCredentials;
// nothing in the error distinguishes the two cases.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("username", req.Username),
	))
	defer span.End()

	row, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", req.Username, err)
	}
	if row == nil {
		// Burn a bcrypt comparison anyway so the unknown-username path costs
		// the same as the wrong-password path.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		span.SetAttributes(attribute.Bool("auth.success", false))
		return nil, fmt.Errorf("authenticate user %q: %w", req.Username, ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(req.Password)); err != nil {
		span.SetAttributes(attribute.Bool("auth.success", false))
		return nil, fmt.Errorf("authenticate user %q: %w", req.Username, ErrInvalidCredentials)
	}

	token, jti, err := s.tokens.Issue(row.ID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if s.strictLogout {
		// The guard requires a live session row in strict mode, so this
		// insert must succeed for the token to be usable.
		expiresAt := time.Now().Add(s.tokens.TTL())
		if err := s.sessions.Create(ctx, jti, row.ID, expiresAt); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("create session: %w", err)
		}
		// Housekeeping while we are here.
		_ = s.sessions.DeleteExpired(ctx)
	}

	// Best-effort, don't fail login.
	if updateErr := s.users.UpdateLastLogin(ctx, row.ID); updateErr != nil {
		span.RecordError(fmt.Errorf("update last_login: %w", updateErr))
	}

	span.SetAttributes(
		attribute.Int("user.id", row.ID),
		attribute.Bool("auth.success", true),
	)

	return &domain.AuthResponse{Token: token, User: *row}, nil
}

// Logout revokes the session behind the given token when strict logout is
// enabled. An unparseable or absent token is a no-op: the client-held
// credential is gone either way.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if !s.strictLogout || token == "" {
		return nil
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// CurrentUser loads the user record behind an authenticated session.
func (s *AuthService) CurrentUser(ctx context.Context, userID int) (*domain.User, error) {
	row, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query user %d: %w", userID, err)
	}
	if row == nil {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	return row, nil
}

// BootstrapAdmin seeds the first credential record when the store is empty.
// Provisioning stays outside the HTTP surface; this is the only writer.
func (s *AuthService) BootstrapAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if _, err := s.users.Create(ctx, username, string(hash)); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	return nil
}

// dummyHash is a valid bcrypt hash of a random string, used to equalize
// timing on the unknown-username path.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
