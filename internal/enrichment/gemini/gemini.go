// Package gemini implements the enrichment provider against the Google
// generative-language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Koushal55/GitReceipt/config"
	"github.com/Koushal55/GitReceipt/internal/entities"

	"go.uber.org/zap"
)

// Gemini wraps an HTTP client and configuration.
type Gemini struct {
	log    *zap.SugaredLogger
	client *http.Client
	cfg    config.GeminiConfig
}

// New creates a Gemini enrichment provider instance.
func New(log *zap.SugaredLogger, cfg config.GeminiConfig) *Gemini {
	return &Gemini{
		log:    log.Named("enrichment.gemini"),
		client: &http.Client{Timeout: cfg.RequestTimeout},
		cfg:    cfg,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateSurchargeLabel asks the model for one deadpan receipt fee line.
func (g *Gemini) GenerateSurchargeLabel(ctx context.Context, login string, stats entities.DerivedStatistics, topLanguage string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.cfg.BaseURL, g.cfg.Model, g.cfg.APIKey)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(login, stats, topLanguage)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty candidate list")
	}

	label := sanitizeLabel(out.Candidates[0].Content.Parts[0].Text)
	if label == "" {
		return "", errors.New("empty label after sanitization")
	}
	return label, nil
}

// sanitizeLabel strips surrounding quotes and trailing punctuation so the
// label drops straight onto the receipt.
func sanitizeLabel(text string) string {
	label := strings.TrimSpace(text)
	label = strings.Trim(label, "\"'`")
	label = strings.TrimRight(label, ".!?,;:")
	return strings.TrimSpace(label)
}

func buildPrompt(login string, stats entities.DerivedStatistics, topLanguage string) string {
	commitTimes := "Mostly daytime"
	if stats.LateNightCount > stats.MorningCount {
		commitTimes = "Mostly between 12AM-4AM"
	}
	weekendActivity := "No"
	if stats.WeekendCount > 0 {
		weekendActivity = "Yes"
	}

	return fmt.Sprintf(`INPUT:
Username: %s
Top Language: %s
Commit Times: %s
Active Days: %d
Commits: %d
PRs Opened: %d
Weekend Activity: %s

INSTRUCTION:
You are generating a SINGLE line item for a developer "coding receipt".
Generate ONE humorous but subtle "Fee" or "Tax" based on the developer's activity.

Rules:
- Output ONLY ONE line
- Max 4-5 words
- No emojis
- No punctuation at the end
- Must sound like a receipt charge
- Must be playful, not insulting
- Must NOT explain anything
- Must NOT mention AI, GitHub, or analysis

Tone: dry, deadpan, understated, slightly sarcastic.
Use only TIME-BASED behavior, light LANGUAGE stereotypes, or CODING HABITS.
Return ONLY the fee name.`,
		login, topLanguage, commitTimes, stats.ActiveDayCount,
		stats.Commits, stats.PullRequestsOpened, weekendActivity)
}
