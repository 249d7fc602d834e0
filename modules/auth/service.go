package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/pkg/cookie"
	"github.com/hirehub/jobboard/pkg/jwt"
	"github.com/hirehub/jobboard/pkg/logger"
	"github.com/hirehub/jobboard/pkg/sanitizer"
	"github.com/hirehub/jobboard/pkg/validator"
)

// RefreshCookieName is the HTTP-only cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

// passwordPolicy applies to self-service registration only. Seeded accounts
// bypass it. The 72-byte ceiling is what bcrypt actually hashes.
var passwordPolicy = validator.PasswordStrengthConfig{
	MinLength:      6,
	MaxLength:      72,
	MinCharClasses: 2,
}

// Account is the credential view of a user account. The store decides how
// it maps onto the persisted user document.
type Account struct {
	ID           bson.ObjectID
	Email        string
	Name         string
	Role         string
	PasswordHash string
	RefreshToken string
}

// NewAccount is the payload for account creation during registration.
type NewAccount struct {
	Email        string
	PasswordHash string
	Name         string
	Age          int
	Gender       string
	Address      string
	Role         string
}

// UserStore persists accounts and their active refresh token. FindByEmail
// and FindByRefreshToken return ErrAccountNotFound when nothing matches;
// Create returns ErrEmailTaken on a duplicate email.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (Account, error)
	FindByRefreshToken(ctx context.Context, token string) (Account, error)
	SetRefreshToken(ctx context.Context, id bson.ObjectID, token string) error
	Create(ctx context.Context, acc NewAccount) (bson.ObjectID, time.Time, error)
}

// Profile is the public projection of an account returned on login.
type Profile struct {
	ID    bson.ObjectID `json:"_id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  string        `json:"role"`
}

// Session is the result of a successful login or refresh.
type Session struct {
	AccessToken string  `json:"access_token"`
	User        Profile `json:"user"`
}

// Registration is the minimal acknowledgment of a new account.
type Registration struct {
	ID        string    `json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterInput is the self-service registration payload.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Address  string `json:"address"`
}

// Option configures the auth service.
type Option func(*Service)

// WithLogger sets the service logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCookieManager overrides the cookie manager used for the refresh
// token cookie.
func WithCookieManager(cookies *cookie.Manager) Option {
	return func(s *Service) {
		if cookies != nil {
			s.cookies = cookies
		}
	}
}

// Service implements the credential and token lifecycle: login, refresh
// rotation, logout, and registration.
type Service struct {
	store      UserStore
	access     *jwt.Service
	refresh    *jwt.Service
	cookies    *cookie.Manager
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        *slog.Logger
}

// NewService creates the auth service from config. Separate JWT services
// guarantee an access token can never pass refresh verification.
func NewService(store UserStore, cfg Config, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("auth: user store is required")
	}

	access, err := jwt.NewFromString(cfg.AccessSecret)
	if err != nil {
		return nil, fmt.Errorf("access token service: %w", err)
	}
	refresh, err := jwt.NewFromString(cfg.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("refresh token service: %w", err)
	}

	s := &Service{
		store:      store,
		access:     access,
		refresh:    refresh,
		cookies:    cookie.New(),
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		log:        logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Resolver returns the identity resolver verifying access tokens minted by
// this service.
func (s *Service) Resolver() IdentityResolver {
	return NewBearerResolver(s.access)
}

// Login verifies credentials and opens a new session. Any failure maps to
// the same generic error so callers cannot probe which emails exist.
func (s *Service) Login(ctx context.Context, w http.ResponseWriter, email, password string) (Session, error) {
	email = sanitizer.NormalizeEmail(email)

	acc, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return Session{}, ErrInvalidCredentials
	}
	if !VerifyPassword(password, acc.PasswordHash) {
		return Session{}, ErrInvalidCredentials
	}

	return s.openSession(ctx, w, acc, subjectLogin)
}

// Refresh exchanges a presented refresh token for a new session. The token
// must pass signature and expiry verification and must byte-equal the
// single active token stored on the account; rotation replaces it.
func (s *Service) Refresh(ctx context.Context, w http.ResponseWriter, presented string) (Session, error) {
	if presented == "" {
		return Session{}, ErrUnauthorized
	}

	var claims Claims
	if err := s.refresh.Parse(presented, &claims); err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	acc, err := s.store.FindByRefreshToken(ctx, presented)
	if err != nil {
		return Session{}, ErrUnauthorized
	}

	return s.openSession(ctx, w, acc, subjectRefresh)
}

// RefreshFromRequest reads the refresh cookie and rotates the session.
// A missing cookie is indistinguishable from an invalid token.
func (s *Service) RefreshFromRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) (Session, error) {
	presented, err := s.cookies.Get(r, RefreshCookieName)
	if err != nil {
		return Session{}, ErrUnauthorized
	}
	return s.Refresh(ctx, w, presented)
}

// Logout revokes the stored refresh token and clears the cookie. The
// response side never fails: a store error is logged and the cookie is
// cleared anyway so the client ends up signed out.
func (s *Service) Logout(ctx context.Context, w http.ResponseWriter, identity Identity) {
	if err := s.store.SetRefreshToken(ctx, identity.ID, ""); err != nil {
		s.log.ErrorContext(ctx, "failed to revoke refresh token",
			logger.Error(err), logger.UserID(identity.ID.Hex()))
	}
	s.cookies.Delete(w, RefreshCookieName)
}

// Register creates a new account. The email is normalized and must be
// unique; the password is stored only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Registration, error) {
	input.Email = sanitizer.NormalizeEmail(input.Email)
	input.Name = sanitizer.CollapseWhitespace(input.Name)

	if err := validator.Apply(
		validator.RequiredString("name", input.Name),
		validator.RequiredString("email", input.Email),
		validator.ValidEmail("email", input.Email),
		validator.RequiredString("password", input.Password),
		validator.StrongPassword("password", input.Password, passwordPolicy),
		validator.NotCommonPassword("password", input.Password),
	); err != nil {
		return Registration{}, err
	}

	if _, err := s.store.FindByEmail(ctx, input.Email); err == nil {
		return Registration{}, ErrEmailTaken
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return Registration{}, fmt.Errorf("hash password: %w", err)
	}

	id, createdAt, err := s.store.Create(ctx, NewAccount{
		Email:        input.Email,
		PasswordHash: hash,
		Name:         input.Name,
		Age:          input.Age,
		Gender:       input.Gender,
		Address:      input.Address,
		Role:         RoleUser,
	})
	if err != nil {
		return Registration{}, err
	}

	s.log.InfoContext(ctx, "account registered", logger.Email(input.Email))

	return Registration{ID: id.Hex(), CreatedAt: createdAt}, nil
}

// openSession mints an access/refresh pair, rotates the stored refresh
// token, and sets the refresh cookie.
func (s *Service) openSession(ctx context.Context, w http.ResponseWriter, acc Account, subject string) (Session, error) {
	now := time.Now()

	accessToken, err := s.access.Generate(newClaims(acc, subject, s.accessTTL, now))
	if err != nil {
		return Session{}, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.refresh.Generate(newClaims(acc, subjectRefresh, s.refreshTTL, now))
	if err != nil {
		return Session{}, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.store.SetRefreshToken(ctx, acc.ID, refreshToken); err != nil {
		return Session{}, fmt.Errorf("store refresh token: %w", err)
	}

	s.cookies.Set(w, RefreshCookieName, refreshToken,
		cookie.WithMaxAge(int(s.refreshTTL.Seconds())))

	return Session{
		AccessToken: accessToken,
		User: Profile{
			ID:    acc.ID,
			Name:  acc.Name,
			Email: acc.Email,
			Role:  acc.Role,
		},
	}, nil
}
