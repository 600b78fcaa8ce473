package predict

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healsmart/healsmart-api/internal/handler"
	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/service/prediction"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

type Handler struct {
	service *prediction.Service
}

func NewHandler(service *prediction.Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts prediction; anyone can check symptoms.
func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/predict", h.Predict)
}

// RegisterProtectedRoutes mounts the per-user prediction history.
func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/predictions", h.Save)
	r.GET("/predictions/history", h.History)
}

func (h *Handler) Predict(c *gin.Context) {
	var req model.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.service.Predict(c.Request.Context(), req.Symptoms)
	if err != nil {
		// Unknown symptoms come back with suggestions attached so the
		// client can correct the input.
		if appErr, ok := apperrors.AsAppError(err); ok && result != nil {
			c.Error(err)
			body := handler.NewErrorResponse(appErr.Message)
			body.Data = result
			c.JSON(appErr.StatusCode(), body)
			return
		}
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) Save(c *gin.Context) {
	userID, ok := handler.CurrentUserID(c)
	if !ok {
		return
	}

	var req model.SavePredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	p, err := h.service.Save(c.Request.Context(), userID, &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(p))
}

func (h *Handler) History(c *gin.Context) {
	userID, ok := handler.CurrentUserID(c)
	if !ok {
		return
	}

	history, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(history))
}
