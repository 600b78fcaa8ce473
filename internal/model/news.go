package model

// NewsArticle is the trimmed article shape returned to clients.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	Source      string `json:"source"`
	PubDate     string `json:"pub_date"`
}

type SummarizeRequest struct {
	URL       string `json:"url" binding:"required,url"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}
