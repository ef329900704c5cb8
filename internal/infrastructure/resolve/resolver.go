// Package resolve implements the version resolvers: direct URLs, GitHub
// latest-release assets, Maven repository metadata and the Forge installer
// index.
package resolve

import (
	"context"
	"net/http"
	"time"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
)

const (
	defaultGitHubAPIBase = "https://api.github.com"
	defaultForgeBase     = "https://maven.minecraftforge.net/net/minecraftforge/forge"
	requestTimeout       = 60 * time.Second
)

// Client resolves plugin descriptors against their upstream indexes.
type Client struct {
	httpClient *http.Client

	// Token, when set, is attached to GitHub API requests as a bearer
	// token to lift the anonymous rate limit.
	Token string

	// GitHubAPIBase and ForgeBase exist so tests can point the client at
	// local servers.
	GitHubAPIBase string
	ForgeBase     string
}

// NewClient creates a resolver client. token may be empty.
func NewClient(token string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: requestTimeout},
		Token:         token,
		GitHubAPIBase: defaultGitHubAPIBase,
		ForgeBase:     defaultForgeBase,
	}
}

// Resolve dispatches on the descriptor's source type.
func (c *Client) Resolve(ctx context.Context, d catalog.Descriptor) artifact.Resolution {
	switch d.Source {
	case catalog.SourceGitHubRelease:
		return c.resolveGitHubRelease(ctx, d)
	case catalog.SourceMaven:
		return c.resolveMaven(ctx, d)
	default:
		return ResolveDirect(d)
	}
}
