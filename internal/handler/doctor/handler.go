package doctor

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healsmart/healsmart-api/internal/handler"
	"github.com/healsmart/healsmart-api/internal/service/doctor"
)

type Handler struct {
	service *doctor.Service
}

func NewHandler(service *doctor.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/doctors", h.ListDoctors)
}

func (h *Handler) RegisterDoctorRoutes(r *gin.RouterGroup) {
	r.GET("/me", h.Me)
}

// ListDoctors returns the public directory of registered doctors.
func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.service.ListDoctors(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) Me(c *gin.Context) {
	doctorID, ok := handler.CurrentUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetDoctor(c.Request.Context(), doctorID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(profile))
}
