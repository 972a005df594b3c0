package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Koushal55/GitReceipt/internal/entities"
)

type githubUser struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// GetProfile fetches the public profile for a login. A 404 from the API is
// mapped to entities.ErrIdentityNotFound; every other failure is
// entities.ErrSourceUnavailable.
func (g *GitHub) GetProfile(ctx context.Context, login string) (*entities.Identity, error) {
	endpoint := fmt.Sprintf("%s/users/%s", g.cfg.BaseURL, url.PathEscape(login))

	var u githubUser
	status, err := g.getJSON(ctx, endpoint, &u)
	if err != nil {
		return nil, sourceErr("profile", err)
	}
	if status == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", entities.ErrIdentityNotFound, login)
	}
	if status < 200 || status >= 300 {
		return nil, statusErr("profile", status)
	}

	name := u.Name
	if name == "" {
		name = u.Login
	}

	return &entities.Identity{
		Login:       u.Login,
		DisplayName: name,
		AvatarURL:   u.AvatarURL,
		ProfileURL:  u.HTMLURL,
	}, nil
}
