package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/hirehub/jobboard/pkg/jwt"
)

// Token subjects distinguish how a token pair was minted.
const (
	subjectLogin   = "token login"
	subjectRefresh = "refresh"
	tokenIssuer    = "from server"
)

// Claims is the payload carried by both access and refresh tokens.
type Claims struct {
	jwt.StandardClaims
	UserID string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// newClaims mints the claim set for one token. The jti makes every mint
// unique, so rotating a refresh token always produces a different string
// even within the same second.
func newClaims(acc Account, subject string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		StandardClaims: jwt.StandardClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			Issuer:    tokenIssuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		UserID: acc.ID.Hex(),
		Name:   acc.Name,
		Email:  acc.Email,
		Role:   acc.Role,
	}
}
