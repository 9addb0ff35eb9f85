package appointment

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pieclinic/clinic-api/internal/handler"
	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/service/appointment"
)

const defaultAgendaWindow = 7 * 24 * time.Hour

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/patients/:mrn/appointments", h.CreateAppointment)
	r.GET("/patients/:mrn/appointments", h.ListByPatient)

	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.Agenda)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)
	}
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	apt, err := h.service.CreateAppointment(c.Request.Context(), doctorID, c.Param("mrn"), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(apt))
}

func (h *Handler) ListByPatient(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	apts, err := h.service.ListByPatient(c.Request.Context(), doctorID, c.Param("mrn"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(apts))
}

// Agenda lists the authenticated doctor's appointments, defaulting to
// the coming week.
func (h *Handler) Agenda(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	from := time.Now()
	to := from.Add(defaultAgendaWindow)
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid from time"))
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid to time"))
			return
		}
		to = parsed
	}

	apts, err := h.service.Agenda(c.Request.Context(), doctorID, from, to)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(apts))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	apt, err := h.service.UpdateAppointment(c.Request.Context(), doctorID, id, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(apt))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), doctorID, id); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"deleted": true}))
}
