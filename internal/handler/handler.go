package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Handler serves the operational endpoints.
type Handler struct {
	db *sqlx.DB
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{db: db}
}

// RespondError maps a service error onto its client-facing status code.
// Errors without a status mapping are logged and surfaced as a generic 500.
func RespondError(c *gin.Context, err error) {
	if mapped, ok := err.(interface{ StatusCode() int }); ok {
		c.JSON(mapped.StatusCode(), NewErrorResponse(err.Error()))
		return
	}
	log.Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Str("method", c.Request.Method).
		Msg("unexpected error")
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}

// DoctorID reads the authenticated doctor's id set by the auth middleware.
func DoctorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("doctorID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, NewErrorResponse("invalid doctor identity"))
		return uuid.Nil, false
	}
	return id, true
}
