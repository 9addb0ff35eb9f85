package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pieclinic/clinic-api/internal/handler"
	"github.com/pieclinic/clinic-api/internal/model"
	apperrors "github.com/pieclinic/clinic-api/pkg/errors"
)

// Context keys for the resolved doctor identity
const (
	ContextDoctorID    = "doctorID"
	ContextDoctorEmail = "doctorEmail"
)

// TokenValidator verifies a bearer token and resolves the doctor identity.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*model.TokenClaims, error)
}

type AuthMiddleware struct {
	authService TokenValidator
}

func NewAuthMiddleware(authService TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the JWT token and sets doctor info in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("missing authorization header"))
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("invalid authorization format"))
			c.Abort()
			return
		}

		claims, err := m.authService.ValidateToken(c.Request.Context(), parts[1])
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, apperrors.ErrExpiredToken) {
				msg = "token expired"
			}
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse(msg))
			c.Abort()
			return
		}

		c.Set(ContextDoctorID, claims.DoctorID.String())
		c.Set(ContextDoctorEmail, claims.Email)
		c.Next()
	}
}
