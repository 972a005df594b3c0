package github

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

type githubRepo struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// GetRepositories fetches the most recently updated repositories.
func (g *GitHub) GetRepositories(ctx context.Context, login string, limit int) ([]entities.RepositorySummary, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", g.cfg.BaseURL, url.PathEscape(login), limit)

	var raw []githubRepo
	status, err := g.getJSON(ctx, endpoint, &raw)
	if err != nil {
		return nil, sourceErr("repos", err)
	}
	if status < 200 || status >= 300 {
		return nil, statusErr("repos", status)
	}

	repos := make([]entities.RepositorySummary, 0, len(raw))
	for _, r := range raw {
		repos = append(repos, entities.RepositorySummary{PrimaryLanguage: r.Language})
	}
	return repos, nil
}
