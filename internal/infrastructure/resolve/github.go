package resolve

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
)

// releaseResponse is the subset of the GitHub latest-release payload the
// resolver needs.
type releaseResponse struct {
	TagName string         `json:"tag_name"`
	Assets  []releaseAsset `json:"assets"`
}

type releaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// resolveGitHubRelease queries the latest release of the descriptor's repo
// and picks the first asset matching the descriptor's name pattern, in the
// order the API returns assets.
func (c *Client) resolveGitHubRelease(ctx context.Context, d catalog.Descriptor) artifact.Resolution {
	meta := d.GitHub
	if meta == nil {
		return artifact.Unresolvable(fmt.Sprintf("plugin %s has no GitHub release metadata", d.Name))
	}
	pattern, err := regexp.Compile(meta.AssetPattern)
	if err != nil {
		return artifact.Unresolvable(fmt.Sprintf("invalid asset pattern %q for %s/%s: %v", meta.AssetPattern, meta.Owner, meta.Repo, err))
	}

	apiURL := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.GitHubAPIBase, meta.Owner, meta.Repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return artifact.Unresolvable(fmt.Sprintf("build request for %s/%s: %v", meta.Owner, meta.Repo, err))
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return artifact.Unresolvable(fmt.Sprintf("query latest release of %s/%s: %v", meta.Owner, meta.Repo, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return artifact.RateLimited(fmt.Sprintf(
			"GitHub API rate limit reached while fetching %s/%s. Try again later, disable eager download, or set a GITHUB_TOKEN environment variable.",
			meta.Owner, meta.Repo))
	}
	if resp.StatusCode != http.StatusOK {
		return artifact.Unresolvable(fmt.Sprintf("latest release of %s/%s: unexpected status %d", meta.Owner, meta.Repo, resp.StatusCode))
	}

	var release releaseResponse
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return artifact.Unresolvable(fmt.Sprintf("decode release of %s/%s: %v", meta.Owner, meta.Repo, err))
	}

	for _, asset := range release.Assets {
		if pattern.MatchString(asset.Name) && asset.BrowserDownloadURL != "" {
			return artifact.Resolved(asset.Name, asset.BrowserDownloadURL)
		}
	}
	return artifact.Unresolvable(fmt.Sprintf("no asset matching %q in latest release of %s/%s", meta.AssetPattern, meta.Owner, meta.Repo))
}
