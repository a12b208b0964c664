package docloud

import (
	"context"
	"os"
	"time"

	"github.com/digitalocean/godo"
	"golang.org/x/oauth2"

	doerrors "github.com/digitalocean/ansible-collection-sub001/pkg/errors"
)

const (
	// pageSize matches the page size doctl uses for listings.
	pageSize = 10

	// defaultPollInterval is the fixed delay between convergence checks.
	defaultPollInterval = 10 * time.Second
)

// TokenEnvVars is the ordered list of environment variables consulted when no
// explicit token is supplied. The first entry keeps parity with doctl.
var TokenEnvVars = []string{
	"DIGITALOCEAN_ACCESS_TOKEN",
	"DIGITALOCEAN_TOKEN",
	"DO_API_TOKEN",
	"DO_API_KEY",
	"DO_OAUTH_TOKEN",
	"OAUTH_TOKEN",
}

// ResolveToken returns the explicit token when set, otherwise the first
// non-empty fallback environment variable.
func ResolveToken(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range TokenEnvVars {
		if value := os.Getenv(name); value != "" {
			return value, nil
		}
	}
	return "", doerrors.NewValidationError("token",
		"no API token provided and none of the fallback environment variables are set", nil)
}

// ClientOptions are the developer escape hatches for client construction.
type ClientOptions struct {
	BaseURL   string
	UserAgent string
}

// Session bundles an authenticated DigitalOcean API client for one module
// invocation. Sessions are never shared across invocations.
type Session struct {
	Client *godo.Client
}

// NewSession builds an authenticated session from a resolved token.
func NewSession(token string, opts ClientOptions) (*Session, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), source)

	var clientOpts []godo.ClientOpt
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, godo.SetBaseURL(opts.BaseURL))
	}
	if opts.UserAgent != "" {
		clientOpts = append(clientOpts, godo.SetUserAgent(opts.UserAgent))
	}

	client, err := godo.New(httpClient, clientOpts...)
	if err != nil {
		return nil, err
	}

	return &Session{Client: client}, nil
}
