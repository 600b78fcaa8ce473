package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healsmart/healsmart-api/internal/handler"
	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/service/auth"
)

// DirectoryInvalidator drops the cached doctor directory after a doctor
// signup so the new doctor shows up immediately.
type DirectoryInvalidator interface {
	Invalidate()
}

type Handler struct {
	service   *auth.Service
	directory DirectoryInvalidator
}

func NewHandler(service *auth.Service, directory DirectoryInvalidator) *Handler {
	return &Handler{
		service:   service,
		directory: directory,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
}

func (h *Handler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	token, err := h.service.Signup(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	if req.Role == model.RoleDoctor {
		h.directory.Invalidate()
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(token))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(token))
}
