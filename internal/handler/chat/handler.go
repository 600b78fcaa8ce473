package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healsmart/healsmart-api/internal/handler"
	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/service/chat"
)

type Handler struct {
	service *chat.Service
}

func NewHandler(service *chat.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
}

func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), req.Message)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"reply": reply}))
}
