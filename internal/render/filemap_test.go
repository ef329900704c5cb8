package render

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/core/domain/deploy"
)

func TestFileMap_OrderAndReplacement(t *testing.T) {
	m := NewFileMap()
	m.Add("a.txt", "one")
	m.Add("b.txt", "two")
	m.Add("a.txt", "three")

	assert.Equal(t, []string{"a.txt", "b.txt"}, m.Paths(), "re-adding keeps the original position")
	content, ok := m.Get("a.txt")
	require.True(t, ok)
	assert.Equal(t, "three", content)
	assert.Equal(t, 2, m.Len())
}

func TestRender_ProducesCompleteBundle(t *testing.T) {
	cfg := deploy.DefaultConfig()
	cat := catalog.Default()
	cfg.Plugins = cat.Defaults()

	m, err := Render(Input{Config: cfg, Catalog: cat})
	require.NoError(t, err)

	expected := []string{
		"start.sh",
		"start.ps1",
		"start.bat",
		"server.properties",
		"purpur.yml",
		"paper.yml",
		"backup.sh",
		"backup.ps1",
		"README.md",
		"REQUIRED DOWNLOAD!!!.txt",
		"setup.sh",
		"plugins/download_plugins.sh",
		"plugins/download_plugins.ps1",
		"plugins/README.md",
		"plugins/LuckPerms/yaml-storage/groups/default.yml",
		"plugins/LuckPerms/yaml-storage/groups/vip.yml",
		"plugins/LuckPerms/yaml-storage/groups/mod.yml",
		"plugins/LuckPerms/yaml-storage/groups/admin.yml",
		"plugins/Essentials/config.yml",
		"plugins/GriefDefender/global.conf",
		"plugins/Dynmap/configuration.txt",
		"plugins/mcMMO/config.yml",
	}
	assert.Equal(t, expected, m.Paths())

	for _, path := range m.Paths() {
		content, ok := m.Get(path)
		require.True(t, ok)
		assert.NotEmpty(t, content, "%s must not be empty", path)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	cfg := deploy.DefaultConfig()
	cat := catalog.Default()
	cfg.Plugins = cat.Defaults()
	cfg.ManualURLs = []string{"https://a.example/x.jar"}
	resolved := map[string]artifact.Resolution{
		"EssentialsX": artifact.Resolved("EssentialsX-2.21.0.jar", "https://dl.example/e.jar"),
	}
	in := Input{Config: cfg, Catalog: cat, Resolved: resolved}

	first, err := Render(in)
	require.NoError(t, err)
	second, err := Render(in)
	require.NoError(t, err)

	require.Equal(t, first.Paths(), second.Paths())
	for _, path := range first.Paths() {
		a, _ := first.Get(path)
		b, _ := second.Get(path)
		assert.Equal(t, a, b, "%s differs between renders", path)
	}
}

func TestRender_ConfigValuesFlowThrough(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cfg := deploy.DefaultConfig()
		cfg.MaxPlayers = rapid.IntRange(1, 1000).Draw(t, "maxPlayers")
		cfg.ViewDistance = rapid.IntRange(deploy.MinViewDistance, 32).Draw(t, "view")
		cfg.SimulationDistance = rapid.IntRange(deploy.MinSimulationDistance, 32).Draw(t, "sim")
		cfg.EnableVelocity = rapid.Bool().Draw(t, "velocity")

		m, err := Render(Input{Config: cfg, Catalog: catalog.Default()})
		if err != nil {
			t.Fatalf("render: %v", err)
		}

		props, _ := m.Get("server.properties")
		assert.Contains(t, props, "max-players="+strconv.Itoa(cfg.MaxPlayers))
		assert.Contains(t, props, "view-distance="+strconv.Itoa(cfg.ViewDistance))
		assert.Contains(t, props, "simulation-distance="+strconv.Itoa(cfg.SimulationDistance))

		paper, _ := m.Get("paper.yml")
		if cfg.EnableVelocity {
			assert.Contains(t, paper, "velocity-support:\n    enabled: true")
		} else {
			assert.Contains(t, paper, "velocity-support:\n    enabled: false")
		}
	})
}

func TestRenderPaperConfig_VelocityToggle(t *testing.T) {
	cfg := deploy.DefaultConfig()

	off := RenderPaperConfig(cfg)
	assert.Contains(t, off, "velocity-support:\n    enabled: false")
	assert.Contains(t, off, "secret: change-me-for-velocity")

	cfg.EnableVelocity = true
	on := RenderPaperConfig(cfg)
	assert.Contains(t, on, "velocity-support:\n    enabled: true")
}

func TestRenderServerProperties_MOTDCarriesServerName(t *testing.T) {
	cfg := deploy.DefaultConfig()
	cfg.ServerName = "My Realm"

	props := RenderServerProperties(cfg)
	assert.Contains(t, props, "motd=My Realm | Economy - Claims - Skills")
	assert.Contains(t, props, "difficulty=hard")
	assert.Contains(t, props, "online-mode=true")
}
