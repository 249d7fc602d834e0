package binder_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirehub/jobboard/pkg/binder"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	type loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	t.Run("binds valid body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"a@b.com","password":"secret"}`))
		r.Header.Set("Content-Type", "application/json")

		var req loginRequest
		require.NoError(t, binder.JSON()(r, &req))
		assert.Equal(t, "a@b.com", req.Username)
		assert.Equal(t, "secret", req.Password)
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"a@b.com"}`))
		r.Header.Set("Content-Type", "application/json; charset=utf-8")

		var req loginRequest
		require.NoError(t, binder.JSON()(r, &req))
		assert.Equal(t, "a@b.com", req.Username)
	})

	t.Run("missing content type is not applicable", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/auth/logout", nil)

		var req loginRequest
		err := binder.JSON()(r, &req)
		assert.ErrorIs(t, err, binder.ErrBinderNotApplicable)
	})

	t.Run("rejects wrong media type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/auth/login", strings.NewReader("username=a"))
		r.Header.Set("Content-Type", "text/plain")

		var req loginRequest
		err := binder.JSON()(r, &req)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"username":"a","extra":1}`))
		r.Header.Set("Content-Type", "application/json")

		var req loginRequest
		err := binder.JSON()(r, &req)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("POST", "/auth/login", strings.NewReader(""))
		r.Header.Set("Content-Type", "application/json")

		var req loginRequest
		err := binder.JSON()(r, &req)
		assert.ErrorIs(t, err, binder.ErrInvalidJSON)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type listRequest struct {
		Current  int      `query:"current"`
		PageSize int      `query:"pageSize"`
		Sort     string   `query:"sort"`
		Skills   []string `query:"skills"`
		Internal string   `query:"-"`
	}

	t.Run("binds typed params", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/jobs?current=2&pageSize=25&sort=-updatedAt&skills=go,mongodb", nil)

		var req listRequest
		require.NoError(t, binder.Query()(r, &req))
		assert.Equal(t, 2, req.Current)
		assert.Equal(t, 25, req.PageSize)
		assert.Equal(t, "-updatedAt", req.Sort)
		assert.Equal(t, []string{"go", "mongodb"}, req.Skills)
	})

	t.Run("missing params keep zero values", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/jobs", nil)

		var req listRequest
		require.NoError(t, binder.Query()(r, &req))
		assert.Zero(t, req.Current)
		assert.Empty(t, req.Skills)
	})

	t.Run("invalid int reported", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/jobs?current=abc", nil)

		var req listRequest
		err := binder.Query()(r, &req)
		assert.ErrorIs(t, err, binder.ErrInvalidQuery)
	})
}

func TestPath(t *testing.T) {
	t.Parallel()

	type getRequest struct {
		ID string `path:"id"`
	}

	t.Run("binds from extractor", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/jobs/64f0c2a1b5d3e4f6a7b8c9d0", nil)

		var req getRequest
		bind := binder.Path(func(_ *http.Request, name string) string {
			if name == "id" {
				return "64f0c2a1b5d3e4f6a7b8c9d0"
			}
			return ""
		})
		require.NoError(t, bind(r, &req))
		assert.Equal(t, "64f0c2a1b5d3e4f6a7b8c9d0", req.ID)
	})

	t.Run("nil extractor fails", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/jobs/1", nil)

		var req getRequest
		err := binder.Path(nil)(r, &req)
		assert.ErrorIs(t, err, binder.ErrInvalidPath)
	})
}
