package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pieclinic/clinic-api/internal/model"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

type stubValidator struct {
	claims *model.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(context.Context, string) (*model.TokenClaims, error) {
	return s.claims, s.err
}

func authTestRouter(validator TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewAuthMiddleware(validator).Authenticate())
	r.GET("/protected", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r := authTestRouter(&stubValidator{})

	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	r := authTestRouter(&stubValidator{})

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer"} {
		w := doRequest(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "invalid authorization format")
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	r := authTestRouter(&stubValidator{err: apperrors.ErrInvalidToken})

	w := doRequest(r, "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthenticateExpiredToken(t *testing.T) {
	r := authTestRouter(&stubValidator{err: apperrors.ErrExpiredToken})

	w := doRequest(r, "Bearer stale-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	doctorID := uuid.New()
	validator := &stubValidator{claims: &model.TokenClaims{DoctorID: doctorID, Email: "dr@example.com"}}

	r := gin.New()
	r.Use(NewAuthMiddleware(validator).Authenticate())

	var gotID, gotEmail string
	r.GET("/protected", func(c *gin.Context) {
		gotID = c.GetString(ContextDoctorID)
		gotEmail = c.GetString(ContextDoctorEmail)
		c.Status(http.StatusOK)
	})

	w := doRequest(r, "Bearer good-token")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, doctorID.String(), gotID)
	assert.Equal(t, "dr@example.com", gotEmail)
}
