package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pieclinic/clinic-api/internal/handler"
	"github.com/pieclinic/clinic-api/internal/model"
	"github.com/pieclinic/clinic-api/internal/service/auth"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public auth endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	ar := r.Group("/auth")
	{
		ar.POST("/register", h.Register)
		ar.POST("/login", h.Login)
		ar.POST("/find-email", h.FindEmail)
	}
}

// RegisterProtectedRoutes wires the auth endpoints that require identity.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	ar := r.Group("/auth")
	{
		ar.GET("/me", h.Me)
		ar.POST("/change-password", h.ChangePassword)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	doctor, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(doctor))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	tokens, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(tokens))
}

func (h *Handler) Me(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	doctor, err := h.service.GetDoctor(c.Request.Context(), doctorID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctor))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	doctorID, ok := handler.DoctorID(c)
	if !ok {
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), doctorID, req.CurrentPassword, req.NewPassword); err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"changed": true}))
}

func (h *Handler) FindEmail(c *gin.Context) {
	var req model.FindEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	email, err := h.service.FindEmail(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"email": email}))
}
