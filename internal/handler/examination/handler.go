package examination

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pieclinic/clinic-api/internal/handler"
	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/service/examination"
)

type Handler struct {
	service *examination.Service
}

func NewHandler(service *examination.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/patients/:mrn/examinations", h.CreateExamination)
	r.GET("/patients/:mrn/examinations", h.ListExaminations)
}

func (h *Handler) CreateExamination(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	var req model.CreateExaminationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	exam, err := h.service.CreateExamination(c.Request.Context(), doctorID, c.Param("mrn"), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(exam))
}

func (h *Handler) ListExaminations(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	exams, err := h.service.ListExaminations(c.Request.Context(), doctorID, c.Param("mrn"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(exams))
}
