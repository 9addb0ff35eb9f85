package history

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pieclinic/clinic-api/internal/handler"
	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/service/history"
)

type Handler struct {
	service *history.Service
}

func NewHandler(service *history.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/patients/:mrn/histories", h.CreateHistory)
	r.GET("/patients/:mrn/histories", h.ListHistories)

	histories := r.Group("/histories")
	{
		histories.POST("/:id/lab-results", h.AddLabResult)
		histories.GET("/:id/lab-results", h.ListLabResults)
	}
}

func (h *Handler) CreateHistory(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	var req model.CreateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	entry, err := h.service.CreateHistory(c.Request.Context(), doctorID, c.Param("mrn"), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(entry))
}

func (h *Handler) ListHistories(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	entries, err := h.service.ListHistories(c.Request.Context(), doctorID, c.Param("mrn"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(entries))
}

func (h *Handler) AddLabResult(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	historyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid history ID"))
		return
	}

	var req model.CreateLabResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.AddLabResult(c.Request.Context(), doctorID, historyID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(result))
}

func (h *Handler) ListLabResults(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	historyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid history ID"))
		return
	}

	results, err := h.service.ListLabResults(c.Request.Context(), doctorID, historyID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(results))
}
