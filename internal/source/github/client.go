// Package github implements the source provider against the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Koushal55/GitReceipt/config"
	"github.com/Koushal55/GitReceipt/internal/entities"

	"go.uber.org/zap"
)

// GitHub wraps an HTTP client and configuration.
type GitHub struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	client  *http.Client
	cfg     config.GitHubConfig
}

// New creates a GitHub source provider instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *GitHub {
	return &GitHub{
		baseCtx: ctx,
		log:     log.Named("source.github"),
		cfg:     cfg.GitHub,
	}
}

// OnStart prepares the HTTP client.
func (g *GitHub) OnStart(_ context.Context) error {
	g.client = &http.Client{Timeout: g.cfg.RequestTimeout}
	if g.cfg.Token == "" {
		g.log.Warnw("no token configured, using unauthenticated GitHub API (rate limited)")
	}
	g.log.Infow("github source ready", "base_url", g.cfg.BaseURL)
	return nil
}

// OnStop releases idle connections.
func (g *GitHub) OnStop(_ context.Context) error {
	if g.client != nil {
		g.client.CloseIdleConnections()
	}
	return nil
}

func (g *GitHub) applyHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", g.cfg.UserAgent)
	if g.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	}
}

// getJSON issues a GET and decodes a 2xx JSON body into out. A non-2xx
// status is returned to the caller undecoded so it can map 404 specially.
func (g *GitHub) getJSON(ctx context.Context, endpoint string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("new request: %w", err)
	}
	g.applyHeaders(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func sourceErr(op string, err error) error {
	return fmt.Errorf("%w: github %s: %v", entities.ErrSourceUnavailable, op, err)
}

func statusErr(op string, status int) error {
	return fmt.Errorf("%w: github %s: unexpected status %d", entities.ErrSourceUnavailable, op, status)
}
