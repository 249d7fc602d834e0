package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirehub/jobboard/pkg/jwt"
)

type accessClaims struct {
	jwt.StandardClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("with valid signing key", func(t *testing.T) {
		service, err := jwt.New([]byte("secret"))
		require.NoError(t, err)
		require.NotNil(t, service)
	})

	t.Run("with empty signing key", func(t *testing.T) {
		service, err := jwt.New([]byte{})
		require.Error(t, err)
		require.Equal(t, jwt.ErrMissingSigningKey, err)
		require.Nil(t, service)
	})

	t.Run("from string", func(t *testing.T) {
		service, err := jwt.NewFromString("secret")
		require.NoError(t, err)
		require.NotNil(t, service)

		_, err = jwt.NewFromString("")
		require.Equal(t, jwt.ErrMissingSigningKey, err)
	})
}

func TestGenerateAndParse(t *testing.T) {
	t.Parallel()

	service, err := jwt.New([]byte("secret"))
	require.NoError(t, err)

	t.Run("round trip with custom claims", func(t *testing.T) {
		claims := accessClaims{
			StandardClaims: jwt.StandardClaims{
				Subject:   "token login",
				Issuer:    "from server",
				ExpiresAt: time.Now().Add(time.Hour).Unix(),
			},
			Name: "Eric",
			Role: "ADMIN",
		}

		token, err := service.Generate(claims)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		var parsed accessClaims
		require.NoError(t, service.Parse(token, &parsed))
		assert.Equal(t, claims.Subject, parsed.Subject)
		assert.Equal(t, claims.Name, parsed.Name)
		assert.Equal(t, claims.Role, parsed.Role)
	})

	t.Run("nil claims rejected", func(t *testing.T) {
		_, err := service.Generate(nil)
		require.Equal(t, jwt.ErrMissingClaims, err)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		claims := jwt.StandardClaims{
			Subject:   "refresh",
			ExpiresAt: time.Now().Add(-time.Minute).Unix(),
		}
		token, err := service.Generate(claims)
		require.NoError(t, err)

		var parsed jwt.StandardClaims
		err = service.Parse(token, &parsed)
		require.Equal(t, jwt.ErrExpiredToken, err)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		token, err := service.Generate(jwt.StandardClaims{Subject: "x"})
		require.NoError(t, err)

		other, err := jwt.New([]byte("another-secret"))
		require.NoError(t, err)

		var parsed jwt.StandardClaims
		err = other.Parse(token, &parsed)
		require.Equal(t, jwt.ErrInvalidSignature, err)
	})

	t.Run("malformed token rejected", func(t *testing.T) {
		var parsed jwt.StandardClaims
		err := service.Parse("not-a-token", &parsed)
		require.Equal(t, jwt.ErrInvalidToken, err)
	})

	t.Run("tampered payload rejected", func(t *testing.T) {
		token, err := service.Generate(jwt.StandardClaims{Subject: "x"})
		require.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		var parsed jwt.StandardClaims
		err = service.Parse(tampered, &parsed)
		require.Error(t, err)
	})
}
