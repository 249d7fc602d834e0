package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/hirehub/jobboard/handler"
	"github.com/hirehub/jobboard/modules/audit"
	"github.com/hirehub/jobboard/pkg/jwt"
)

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	ID    bson.ObjectID `json:"_id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  string        `json:"role"`
}

// Stamp converts the identity to an audit stamp for created/updated/deleted
// attribution.
func (i Identity) Stamp() audit.Stamp {
	return audit.NewStamp(i.ID, i.Name)
}

// IdentityResolver extracts the caller identity from a request. There is
// exactly one production implementation; everything behind the guard goes
// through it.
type IdentityResolver interface {
	Resolve(r *http.Request) (Identity, error)
}

// BearerResolver resolves identities from Authorization bearer tokens
// signed with the access key. It is stateless: a valid unexpired signature
// is the whole check.
type BearerResolver struct {
	tokens *jwt.Service
}

// NewBearerResolver creates a resolver verifying against the given access
// token service.
func NewBearerResolver(tokens *jwt.Service) *BearerResolver {
	return &BearerResolver{tokens: tokens}
}

func (b *BearerResolver) Resolve(r *http.Request) (Identity, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return Identity{}, ErrMissingToken
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return Identity{}, ErrMissingToken
	}

	var claims Claims
	if err := b.tokens.Parse(token, &claims); err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	id, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: malformed subject id", ErrUnauthorized)
	}

	return Identity{
		ID:    id,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

type identityContextKey struct{}

// WithIdentity returns a context carrying the identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext returns the identity attached by the guard middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(Identity)
	return identity, ok
}

// Middleware guards routes: requests without a resolvable identity are
// rejected with 401 before any handler runs.
func Middleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolver.Resolve(r)
			if err != nil {
				_ = handler.JSONError(handler.ErrUnauthorized).Render(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
