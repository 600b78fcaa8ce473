package news

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/healsmart/healsmart-api/internal/client"
	"github.com/healsmart/healsmart-api/internal/model"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

const (
	pageSize       = 20
	maxInputLength = 3500
	minArticleText = 100

	defaultMinLength = 200
	defaultMaxLength = 600
)

// medicalKeywords bias the news query toward health coverage and filter
// out articles that merely mention a symptom word in another context.
var medicalKeywords = []string{
	"health", "medical", "disease", "symptom", "treatment", "medicine",
	"doctor", "hospital", "virus", "covid", "vaccine", "patient",
}

// Searcher finds articles and fetches article pages.
type Searcher interface {
	Search(ctx context.Context, query string, pageSize int) ([]client.RawArticle, error)
	FetchPage(ctx context.Context, pageURL string) ([]byte, error)
}

// Summarizer condenses article text.
type Summarizer interface {
	Summarize(ctx context.Context, text string, minLength, maxLength int) (string, error)
}

// Service finds health news for known symptoms and summarizes articles.
// Both operations are passthroughs to external APIs; no content is stored.
type Service struct {
	searcher   Searcher
	summarizer Summarizer
}

func NewService(searcher Searcher, summarizer Summarizer) *Service {
	return &Service{
		searcher:   searcher,
		summarizer: summarizer,
	}
}

// SearchBySymptom returns health articles for a symptom from the
// predictor's vocabulary.
func (s *Service) SearchBySymptom(ctx context.Context, symptom string) ([]model.NewsArticle, error) {
	symptom = strings.ToLower(strings.TrimSpace(symptom))
	if symptom == "" || !model.IsKnownSymptom(symptom) {
		return nil, apperrors.BadRequest("invalid or missing symptom query parameter", nil)
	}

	query := fmt.Sprintf("%s AND (%s)",
		strings.ReplaceAll(symptom, "_", " "),
		strings.Join(medicalKeywords, " OR "),
	)

	raw, err := s.searcher.Search(ctx, query, pageSize)
	if err != nil {
		return nil, apperrors.Upstream("news", err)
	}

	articles := make([]model.NewsArticle, 0, len(raw))
	for _, item := range raw {
		content := strings.ToLower(item.Title + " " + item.Description)
		if !containsAny(content, medicalKeywords) {
			continue
		}
		articles = append(articles, model.NewsArticle{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			Image:       item.URLToImage,
			Source:      item.Source.Name,
			PubDate:     item.PublishedAt,
		})
	}

	return articles, nil
}

// Summarize fetches an article, extracts its paragraph text, and relays it
// to the summarization model.
func (s *Service) Summarize(ctx context.Context, req *model.SummarizeRequest) (string, error) {
	minLength := req.MinLength
	if minLength <= 0 {
		minLength = defaultMinLength
	}
	maxLength := req.MaxLength
	if maxLength <= 0 {
		maxLength = defaultMaxLength
	}

	page, err := s.searcher.FetchPage(ctx, req.URL)
	if err != nil {
		return "", apperrors.Upstream("news", err)
	}

	text := extractParagraphText(page)
	if len(text) < minArticleText {
		return "", apperrors.BadRequest("could not extract content from the article", nil)
	}
	if len(text) > maxInputLength {
		text = text[:maxInputLength]
	}

	summary, err := s.summarizer.Summarize(ctx, text, minLength, maxLength)
	if err != nil {
		return "", apperrors.Upstream("summarization", err)
	}
	return summary, nil
}

func containsAny(content string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(content, k) {
			return true
		}
	}
	return false
}

// extractParagraphText joins the text content of all <p> elements.
func extractParagraphText(page []byte) string {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return ""
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			parts = append(parts, nodeText(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(strings.Join(parts, " "))
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
