package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healsmart/healsmart-api/internal/handler"
	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/service/appointment"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the patient-facing request endpoint; the
// requester does not need an account.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/request", h.Request)
}

// RegisterDoctorRoutes mounts the doctor inbox. The group must already
// enforce authentication and the doctor role.
func (h *Handler) RegisterDoctorRoutes(r *gin.RouterGroup) {
	r.GET("/doctor/pending", h.ListPending)
	r.GET("/doctor/approved", h.ListApproved)
	r.PATCH("/approve/:id", h.Approve)
}

func (h *Handler) Request(c *gin.Context) {
	var req model.RequestAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appt, err := h.service.Request(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appt))
}

func (h *Handler) ListPending(c *gin.Context) {
	doctorID, ok := handler.CurrentUserID(c)
	if !ok {
		return
	}

	appts, err := h.service.ListPending(c.Request.Context(), doctorID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appts))
}

func (h *Handler) ListApproved(c *gin.Context) {
	doctorID, ok := handler.CurrentUserID(c)
	if !ok {
		return
	}

	appts, err := h.service.ListApproved(c.Request.Context(), doctorID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appts))
}

func (h *Handler) Approve(c *gin.Context) {
	doctorID, ok := handler.CurrentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid appointment ID"))
		return
	}

	var req model.ApproveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appt, err := h.service.Approve(c.Request.Context(), id, doctorID, req.ConfirmedTime)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appt))
}
