package resolve

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"mcbundle.dev/cli/internal/core/domain/artifact"
)

// forgeMetadata models the Forge maven index: a flat version list with no
// release/latest fields, newest entries declared last.
type forgeMetadata struct {
	Versioning struct {
		Versions []string `xml:"versions>version"`
	} `xml:"versioning"`
}

// ResolveForgeInstaller finds the newest Forge build for a Minecraft
// version by scanning the flat version list in reverse for the first entry
// with a "{gameVersion}-" prefix, and builds the installer download URL
// from the match.
func (c *Client) ResolveForgeInstaller(ctx context.Context, gameVersion string) artifact.Resolution {
	base := strings.TrimRight(c.ForgeBase, "/")
	metadataURL := base + "/maven-metadata.xml"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, metadataURL, nil)
	if err != nil {
		return artifact.Unresolvable(fmt.Sprintf("build forge metadata request: %v", err))
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return artifact.Unresolvable(fmt.Sprintf("fetch forge metadata: %v", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return artifact.Unresolvable(fmt.Sprintf("forge metadata: unexpected status %d", resp.StatusCode))
	}

	var doc forgeMetadata
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return artifact.Unresolvable(fmt.Sprintf("parse forge metadata: %v", err))
	}

	prefix := gameVersion + "-"
	versions := doc.Versioning.Versions
	for i := len(versions) - 1; i >= 0; i-- {
		if strings.HasPrefix(versions[i], prefix) {
			full := versions[i]
			url := fmt.Sprintf("%s/%s/forge-%s-installer.jar", base, full, full)
			return artifact.Resolved(fmt.Sprintf("forge-%s-installer.jar", full), url)
		}
	}
	return artifact.Unresolvable(fmt.Sprintf(
		"Forge installer for Minecraft %s not found. Check https://files.minecraftforge.net/ for supported versions.", gameVersion))
}
