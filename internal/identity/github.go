package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cli/go-gh/v2/pkg/api"
)

// restDoer is the part of the go-gh REST client we use
type restDoer interface {
	DoWithContext(ctx context.Context, method string, path string, body io.Reader, response interface{}) error
}

// GitHub reads the user of the active gh CLI session
type GitHub struct {
	rest restDoer
}

// NewGitHub creates a provider using gh's stored credentials.
// An empty host means the gh default host.
func NewGitHub(host string) (*GitHub, error) {
	var (
		rest *api.RESTClient
		err  error
	)
	if host == "" {
		rest, err = api.DefaultRESTClient()
	} else {
		rest, err = api.NewRESTClient(api.ClientOptions{Host: host})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create REST client: %w", err)
	}
	return &GitHub{rest: rest}, nil
}

type ghUser struct {
	Login string `json:"login"`
	Email string `json:"email"`
}

type ghEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// Current returns the gh user with their public or primary verified email.
// Tokens without the user:email scope fall back to the login alone.
func (g *GitHub) Current(ctx context.Context) (Principal, error) {
	var user ghUser
	if err := g.rest.DoWithContext(ctx, http.MethodGet, "user", nil, &user); err != nil {
		return Principal{}, fmt.Errorf("failed to get GitHub user: %w", err)
	}
	if user.Login == "" {
		return Principal{}, ErrNoIdentity
	}

	p := Principal{Login: user.Login, Email: user.Email, Source: "gh"}
	if p.Email != "" {
		return p, nil
	}

	var emails []ghEmail
	if err := g.rest.DoWithContext(ctx, http.MethodGet, "user/emails", nil, &emails); err != nil {
		if missingScope(err) {
			return p, nil
		}
		return Principal{}, fmt.Errorf("failed to get GitHub emails: %w", err)
	}
	for _, e := range emails {
		if e.Primary && e.Verified {
			p.Email = e.Email
			break
		}
	}
	return p, nil
}

// missingScope reports a 403 or 404 from an endpoint the token cannot read
func missingScope(err error) bool {
	var httpErr *api.HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	return httpErr.StatusCode == http.StatusForbidden || httpErr.StatusCode == http.StatusNotFound
}
