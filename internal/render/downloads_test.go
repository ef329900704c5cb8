package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/core/domain/deploy"
)

func downloadInput(plugins []string, resolved map[string]artifact.Resolution) Input {
	cfg := deploy.DefaultConfig()
	cfg.Plugins = plugins
	return Input{Config: cfg, Catalog: catalog.Default(), Resolved: resolved}
}

func TestRenderDownloadScriptSh_DirectPluginsNeedNoResolution(t *testing.T) {
	sh := RenderDownloadScriptSh(downloadInput([]string{"Vault"}, nil))

	assert.Contains(t, sh, "wget -O Vault.jar https://github.com/MilkBowl/Vault/releases/latest/download/Vault.jar")
}

func TestRenderDownloadScriptSh_ResolvedRemotePlugin(t *testing.T) {
	resolved := map[string]artifact.Resolution{
		"EssentialsX": artifact.Resolved("EssentialsX-2.21.0.jar", "https://dl.example/EssentialsX-2.21.0.jar"),
	}
	sh := RenderDownloadScriptSh(downloadInput([]string{"EssentialsX"}, resolved))

	assert.Contains(t, sh, "wget -O EssentialsX-2.21.0.jar https://dl.example/EssentialsX-2.21.0.jar")
	assert.NotContains(t, sh, "Manual download required")
}

func TestRenderDownloadScriptSh_UnresolvedFallsBackToManualNote(t *testing.T) {
	sh := RenderDownloadScriptSh(downloadInput([]string{"EssentialsX", "WorldEdit"}, nil))

	assert.Contains(t, sh, "Manual download required for EssentialsX: https://github.com/EssentialsX/Essentials/releases/latest")
	assert.Contains(t, sh, "Manual download required for WorldEdit:")
	assert.NotContains(t, sh, "wget -O EssentialsX")
}

func TestRenderDownloadScriptSh_ArchiveGetsExtractStep(t *testing.T) {
	sh := RenderDownloadScriptSh(downloadInput([]string{"GriefDefender"}, nil))

	assert.Contains(t, sh, "wget -O GriefDefender.zip")
	assert.Contains(t, sh, "unzip -o GriefDefender.zip")
	assert.Contains(t, sh, "rm GriefDefender.zip")
}

func TestRenderDownloadScriptSh_ManualURLNumbering(t *testing.T) {
	in := downloadInput(nil, nil)
	in.Config.ManualURLs = []string{"https://a.example/one.jar", "  ", "https://b.example/two.jar"}

	sh := RenderDownloadScriptSh(in)
	assert.Contains(t, sh, "wget -O manual-plugin-1.jar https://a.example/one.jar")
	assert.Contains(t, sh, "wget -O manual-plugin-2.jar https://b.example/two.jar")
	assert.NotContains(t, sh, "manual-plugin-3")
}

func TestRenderDownloadScriptSh_SkipsUnknownPlugins(t *testing.T) {
	sh := RenderDownloadScriptSh(downloadInput([]string{"Vault", "NotARealPlugin"}, nil))

	assert.Contains(t, sh, "Vault.jar")
	assert.NotContains(t, sh, "NotARealPlugin")
}

func TestRenderDownloadScriptPs1_MirrorsShEntries(t *testing.T) {
	resolved := map[string]artifact.Resolution{
		"EssentialsX": artifact.Resolved("EssentialsX-2.21.0.jar", "https://dl.example/EssentialsX-2.21.0.jar"),
	}
	in := downloadInput([]string{"Vault", "EssentialsX", "GriefDefender", "WorldEdit"}, resolved)
	in.Config.ManualURLs = []string{"https://a.example/one.jar"}

	ps1 := RenderDownloadScriptPs1(in)
	assert.Contains(t, ps1, `Invoke-WebRequest -Uri "https://dl.example/EssentialsX-2.21.0.jar" -OutFile "EssentialsX-2.21.0.jar"`)
	assert.Contains(t, ps1, `Expand-Archive -LiteralPath "GriefDefender.zip"`)
	assert.Contains(t, ps1, `Remove-Item "GriefDefender.zip" -Force`)
	assert.Contains(t, ps1, "Manual download required for WorldEdit")
	assert.Contains(t, ps1, `-OutFile "manual-plugin-1.jar"`)
}

func TestDownloadScripts_SelectionOrderIsPreserved(t *testing.T) {
	names := []string{"CoreProtect", "Vault", "GriefDefender"}
	sh := RenderDownloadScriptSh(downloadInput(names, nil))

	var positions []int
	for _, name := range names {
		idx := strings.Index(sh, name)
		require.GreaterOrEqual(t, idx, 0, "missing entry for %s", name)
		positions = append(positions, idx)
	}
	assert.IsIncreasing(t, positions, "script entries follow the selection order")
}
