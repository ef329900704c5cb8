package resolve

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
)

// mavenMetadata models the maven-metadata.xml shape used by plugin
// repositories. The versions list is assumed ascending.
type mavenMetadata struct {
	Versioning struct {
		Release  string   `xml:"release"`
		Latest   string   `xml:"latest"`
		Versions []string `xml:"versions>version"`
	} `xml:"versioning"`
}

// resolveMaven fetches the repository metadata index and selects a version
// by the release > latest > last-listed precedence rule.
func (c *Client) resolveMaven(ctx context.Context, d catalog.Descriptor) artifact.Resolution {
	meta := d.Maven
	if meta == nil {
		return artifact.Unresolvable(fmt.Sprintf("plugin %s has no Maven metadata", d.Name))
	}
	base := strings.TrimRight(meta.BaseURL, "/")
	groupPath := strings.ReplaceAll(meta.Group, ".", "/")
	metadataURL := fmt.Sprintf("%s/%s/%s/maven-metadata.xml", base, groupPath, meta.Artifact)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metadataURL, nil)
	if err != nil {
		return artifact.Unresolvable(fmt.Sprintf("build metadata request for %s:%s: %v", meta.Group, meta.Artifact, err))
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return artifact.Unresolvable(fmt.Sprintf("fetch metadata for %s:%s: %v", meta.Group, meta.Artifact, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return artifact.Unresolvable(fmt.Sprintf("metadata for %s:%s: unexpected status %d", meta.Group, meta.Artifact, resp.StatusCode))
	}

	var doc mavenMetadata
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return artifact.Unresolvable(fmt.Sprintf("parse metadata for %s:%s: %v", meta.Group, meta.Artifact, err))
	}

	version := doc.Versioning.Release
	if version == "" {
		version = doc.Versioning.Latest
	}
	if version == "" && len(doc.Versioning.Versions) > 0 {
		version = doc.Versioning.Versions[len(doc.Versioning.Versions)-1]
	}
	if version == "" {
		return artifact.Unresolvable(fmt.Sprintf("unable to determine version for %s:%s", meta.Group, meta.Artifact))
	}

	filename := fmt.Sprintf("%s-%s.jar", meta.Artifact, version)
	downloadURL := fmt.Sprintf("%s/%s/%s/%s/%s", base, groupPath, meta.Artifact, version, filename)
	return artifact.Resolved(filename, downloadURL)
}
