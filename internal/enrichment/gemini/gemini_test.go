package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Koushal55/GitReceipt/config"
	"github.com/Koushal55/GitReceipt/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestProvider(t *testing.T, handler http.Handler) *Gemini {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(zap.NewNop().Sugar(), config.GeminiConfig{
		APIKey:         "test-key",
		Model:          "gemini-pro",
		BaseURL:        srv.URL,
		RequestTimeout: 2 * time.Second,
	})
}

func candidateResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + strconvQuote(text) + `}]}}]}`
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateSurchargeLabel(t *testing.T) {
	g := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.True(t, strings.HasPrefix(r.URL.Path, "/v1beta/models/gemini-pro:generateContent"))
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), "octocat")

		_, _ = w.Write([]byte(candidateResponse("Late Night Tax")))
	}))

	label, err := g.GenerateSurchargeLabel(context.Background(), "octocat", entities.DerivedStatistics{Commits: 10}, "Go")
	require.NoError(t, err)
	require.Equal(t, "Late Night Tax", label)
}

func TestGenerateSurchargeLabelSanitizes(t *testing.T) {
	g := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(candidateResponse("  \"Whitespace Remorse Fee.\"  ")))
	}))

	label, err := g.GenerateSurchargeLabel(context.Background(), "octocat", entities.DerivedStatistics{}, "Python")
	require.NoError(t, err)
	require.Equal(t, "Whitespace Remorse Fee", label)
}

func TestGenerateSurchargeLabelEmptyCandidates(t *testing.T) {
	g := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))

	_, err := g.GenerateSurchargeLabel(context.Background(), "octocat", entities.DerivedStatistics{}, "Go")
	require.Error(t, err)
}

func TestGenerateSurchargeLabelUpstreamError(t *testing.T) {
	g := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := g.GenerateSurchargeLabel(context.Background(), "octocat", entities.DerivedStatistics{}, "Go")
	require.Error(t, err)
}

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Late Night Tax", "Late Night Tax"},
		{"'Yak Shaving Premium'", "Yak Shaving Premium"},
		{"Tab Hoarding Fee!!", "Tab Hoarding Fee"},
		{"   ", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.expected, sanitizeLabel(tc.in), "input %q", tc.in)
	}
}
