package news

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healsmart/healsmart-api/internal/client"
	"github.com/healsmart/healsmart-api/internal/model"
	apperrors "github.com/healsmart/healsmart-api/pkg/errors"
)

type fakeSearcher struct {
	articles  []client.RawArticle
	page      []byte
	lastQuery string
	err       error
}

func (f *fakeSearcher) Search(_ context.Context, query string, _ int) ([]client.RawArticle, error) {
	f.lastQuery = query
	return f.articles, f.err
}

func (f *fakeSearcher) FetchPage(context.Context, string) ([]byte, error) {
	return f.page, f.err
}

type fakeSummarizer struct {
	summary  string
	lastText string
	err      error
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string, _, _ int) (string, error) {
	f.lastText = text
	return f.summary, f.err
}

func rawArticle(title, description string) client.RawArticle {
	a := client.RawArticle{
		Title:       title,
		Description: description,
		URL:         "https://example.com/a",
	}
	a.Source.Name = "Example News"
	return a
}

func TestSearchBySymptom_UnknownSymptomRejected(t *testing.T) {
	svc := NewService(&fakeSearcher{}, &fakeSummarizer{})

	for _, q := range []string{"", "DROP TABLE", "notasymptom"} {
		_, err := svc.SearchBySymptom(context.Background(), q)
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok, "query %q", q)
		assert.Equal(t, 400, appErr.StatusCode())
	}
}

func TestSearchBySymptom_FiltersNonMedical(t *testing.T) {
	searcher := &fakeSearcher{articles: []client.RawArticle{
		rawArticle("New migraine treatment shows promise", "A study on headache medicine"),
		rawArticle("Local team wins championship", "Sports roundup"),
	}}
	svc := NewService(searcher, &fakeSummarizer{})

	articles, err := svc.SearchBySymptom(context.Background(), "headache")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "New migraine treatment shows promise", articles[0].Title)
	assert.Equal(t, "Example News", articles[0].Source)

	// Underscored vocabulary terms are turned into words for the query.
	_, err = svc.SearchBySymptom(context.Background(), "chest_pain")
	require.NoError(t, err)
	assert.Contains(t, searcher.lastQuery, "chest pain")
}

func TestSearchBySymptom_UpstreamDown(t *testing.T) {
	svc := NewService(&fakeSearcher{err: errors.New("timeout")}, &fakeSummarizer{})

	_, err := svc.SearchBySymptom(context.Background(), "headache")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 502, appErr.StatusCode())
}

func TestSummarize_ExtractsParagraphs(t *testing.T) {
	body := "<html><body><nav>menu</nav><p>" + strings.Repeat("Medical findings. ", 20) +
		"</p><p>Second paragraph of the article text.</p></body></html>"
	summarizer := &fakeSummarizer{summary: "A short summary."}
	svc := NewService(&fakeSearcher{page: []byte(body)}, summarizer)

	summary, err := svc.Summarize(context.Background(), &model.SummarizeRequest{
		URL: "https://example.com/article",
	})
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", summary)
	assert.Contains(t, summarizer.lastText, "Medical findings.")
	assert.NotContains(t, summarizer.lastText, "menu")
}

func TestSummarize_TooLittleContent(t *testing.T) {
	svc := NewService(&fakeSearcher{page: []byte("<html><body><p>short</p></body></html>")}, &fakeSummarizer{})

	_, err := svc.Summarize(context.Background(), &model.SummarizeRequest{
		URL: "https://example.com/article",
	})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
	assert.Equal(t, "could not extract content from the article", appErr.Message)
}

func TestSummarize_TruncatesLongArticles(t *testing.T) {
	long := "<html><body><p>" + strings.Repeat("word ", 2000) + "</p></body></html>"
	summarizer := &fakeSummarizer{summary: "ok"}
	svc := NewService(&fakeSearcher{page: []byte(long)}, summarizer)

	_, err := svc.Summarize(context.Background(), &model.SummarizeRequest{
		URL: "https://example.com/article",
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, len(summarizer.lastText), maxInputLength)
}
