package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/tokens"
)

func newAuthEnv(t *testing.T) (*echo.Echo, *tokens.Manager) {
	t.Helper()

	tm := &tokens.Manager{
		Secret:   []byte("test-signing-secret"),
		Issuer:   "skillbridge-test",
		Audience: "skillbridge-test",
	}

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"user_id": c.Get("user_id"),
			"email":   c.Get("email"),
		})
	}, NewBearerAuth(tm).RequireAuth)

	return e, tm
}

func getWithHeader(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_ValidToken(t *testing.T) {
	t.Parallel()

	e, tm := newAuthEnv(t)
	token, _, err := tm.Issue(42, "ana@example.com")
	require.NoError(t, err)

	rec := getWithHeader(e, "Bearer "+token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
	assert.Contains(t, rec.Body.String(), `"email":"ana@example.com"`)
}

func TestRequireAuth_Rejections(t *testing.T) {
	t.Parallel()

	e, _ := newAuthEnv(t)

	other := &tokens.Manager{
		Secret:   []byte("different-secret"),
		Issuer:   "skillbridge-test",
		Audience: "skillbridge-test",
	}
	forged, _, err := other.Issue(42, "ana@example.com")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not bearer", header: "Basic abc123"},
		{name: "empty bearer", header: "Bearer "},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "wrong signature", header: "Bearer " + forged},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := getWithHeader(e, tt.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
