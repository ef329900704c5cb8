package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
)

func TestResolveDirect(t *testing.T) {
	d := catalog.Descriptor{
		Name:   "CoreProtect",
		Source: catalog.SourceDirect,
		URL:    "https://cdn.example.com/files/CoreProtect-22.4.jar",
	}

	res := ResolveDirect(d)
	require.Equal(t, artifact.StatusResolved, res.Status)
	assert.Equal(t, "CoreProtect-22.4.jar", res.Filename)
	assert.Equal(t, d.URL, res.DownloadURL)
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		useFall bool
	}{
		{name: "SimplePath", url: "https://example.com/files/Vault.jar", want: "Vault.jar"},
		{name: "QueryStringIgnored", url: "https://example.com/dl/spark.jar?version=1.10", want: "spark.jar"},
		{name: "PercentDecoded", url: "https://example.com/dl/My%20Plugin.jar", want: "My Plugin.jar"},
		{name: "NoPath", url: "https://example.com", useFall: true},
		{name: "RootPath", url: "https://example.com/", useFall: true},
		{name: "EncodedWhitespaceOnly", url: "https://example.com/%20%20", useFall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilenameFromURL(tt.url, "fallback.jar")
			if tt.useFall {
				assert.Equal(t, "fallback.jar", got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
