package resolve

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
)

// ResolveDirect resolves a direct-source descriptor. It needs no network:
// the descriptor URL is the download, and the filename is the URL's final
// path segment, URL-decoded. URLs without a usable path segment fall back
// to "{name}.jar".
func ResolveDirect(d catalog.Descriptor) artifact.Resolution {
	return artifact.Resolved(FilenameFromURL(d.URL, fmt.Sprintf("%s.jar", d.Name)), d.URL)
}

// FilenameFromURL derives a filename from a URL's last path segment,
// URL-decoded, or returns fallback when the URL has no path segment.
func FilenameFromURL(rawURL, fallback string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return fallback
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}
