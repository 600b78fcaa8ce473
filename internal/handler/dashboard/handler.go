package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healsmart/healsmart-api/internal/handler"
)

// Feature is one card on the landing dashboard.
type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

var features = []Feature{
	{
		Name:        "Symptom Checker",
		Description: "Enter your symptoms and get a possible condition with suggestions.",
		Path:        "/predict",
	},
	{
		Name:        "Book Appointment",
		Description: "Browse doctors and request a consultation.",
		Path:        "/appointments/request",
	},
	{
		Name:        "Health News",
		Description: "Read recent medical news related to your symptoms.",
		Path:        "/news/search",
	},
	{
		Name:        "Mind-Bot",
		Description: "Chat with a supportive mental wellness assistant.",
		Path:        "/chat",
	},
	{
		Name:        "Awareness Blogs",
		Description: "Read and share community health stories.",
		Path:        "/blogs",
	},
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Dashboard)
}

func (h *Handler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(features))
}
