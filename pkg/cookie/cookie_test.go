package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirehub/jobboard/pkg/cookie"
)

func TestManagerSetGet(t *testing.T) {
	t.Parallel()

	t.Run("set and read back", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()

		rec := httptest.NewRecorder()
		m.Set(rec, "refreshToken", "abc123", cookie.WithMaxAge(3600))

		res := rec.Result()
		cookies := res.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "refreshToken", cookies[0].Name)
		assert.Equal(t, "abc123", cookies[0].Value)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookies[0])
		value, err := m.Get(req, "refreshToken")
		require.NoError(t, err)
		assert.Equal(t, "abc123", value)
	})

	t.Run("missing cookie", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := m.Get(req, "refreshToken")
		require.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("delete expires cookie", func(t *testing.T) {
		t.Parallel()
		m := cookie.New()
		rec := httptest.NewRecorder()
		m.Delete(rec, "refreshToken")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, -1, cookies[0].MaxAge)
		assert.Empty(t, cookies[0].Value)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	m := cookie.NewFromConfig(cookie.Config{
		Path:     "/api",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	rec := httptest.NewRecorder()
	m.Set(rec, "refreshToken", "v")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "/api", cookies[0].Path)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}
