package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/core/domain/deploy"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_LayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `{"server_name": "My SMP", "ram_gb": 16}`)

	cfg, err := loadConfigFile(path, catalog.Default())
	require.NoError(t, err)

	assert.Equal(t, "My SMP", cfg.ServerName)
	assert.Equal(t, 16, cfg.RAMGB)
	assert.Equal(t, "1.21.10", cfg.Version, "unset fields keep the baseline")
	assert.Equal(t, deploy.ForkPurpur, cfg.Fork)
}

func TestLoadConfigFile_PluginSelection(t *testing.T) {
	cat := catalog.Default()

	cfg, err := loadConfigFile(writeConfig(t, `{}`), cat)
	require.NoError(t, err)
	assert.Equal(t, cat.Defaults(), cfg.Plugins, "nil selection means the default set")

	cfg, err = loadConfigFile(writeConfig(t, `{"plugins": []}`), cat)
	require.NoError(t, err)
	assert.Empty(t, cfg.Plugins, "an explicit empty list selects nothing")

	cfg, err = loadConfigFile(writeConfig(t, `{"plugins": ["Vault"]}`), cat)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vault"}, cfg.Plugins)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	_, err := loadConfigFile(filepath.Join(t.TempDir(), "missing.json"), catalog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read configuration")

	_, err = loadConfigFile(writeConfig(t, `{not json`), catalog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse configuration")
}

func TestGithubToken_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")
	assert.Equal(t, "flag-token", githubToken("flag-token"))
	assert.Equal(t, "env-token", githubToken(""))

	t.Setenv("GITHUB_TOKEN", "")
	assert.Equal(t, "", githubToken(""))
}

func TestNewAssembler_OfflineHasNoNetwork(t *testing.T) {
	asm := newAssembler(catalog.Default(), "", true, 4)
	assert.Nil(t, asm.Resolver)
	assert.Nil(t, asm.Forge)
	assert.Nil(t, asm.Fetcher)

	asm = newAssembler(catalog.Default(), "tok", false, 2)
	assert.NotNil(t, asm.Resolver)
	assert.NotNil(t, asm.Forge)
	assert.NotNil(t, asm.Fetcher)
	assert.Equal(t, 2, asm.Workers)
}
