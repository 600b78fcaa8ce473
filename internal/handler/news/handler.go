package news

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healsmart/healsmart-api/internal/handler"
	"github.com/healsmart/healsmart-api/internal/model"
	"github.com/healsmart/healsmart-api/internal/service/news"
)

type Handler struct {
	service *news.Service
}

func NewHandler(service *news.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", h.Search)
	r.POST("/summarize", h.Summarize)
}

// Search returns health news for a symptom passed as ?symptom=.
func (h *Handler) Search(c *gin.Context) {
	articles, err := h.service.SearchBySymptom(c.Request.Context(), c.Query("symptom"))
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(articles))
}

func (h *Handler) Summarize(c *gin.Context) {
	var req model.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"summary": summary}))
}
