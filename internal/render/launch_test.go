package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcbundle.dev/cli/internal/core/domain/deploy"
)

func TestNewLaunchPlan_Purpur(t *testing.T) {
	plan, err := NewLaunchPlan(deploy.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "purpur-1.21.10.jar", plan.JarName)
	assert.False(t, plan.AutoDetectJar)
	assert.Contains(t, plan.JVMFlags, "-Xms24G")
	assert.Contains(t, plan.JVMFlags, "-Xmx24G")
	assert.Contains(t, plan.JVMFlags, "-XX:+UseG1GC")
	assert.Contains(t, plan.JVMFlags, "-Dcom.mojang.eula.agree=true")
}

func TestNewLaunchPlan_ForgeAutoDetectsJar(t *testing.T) {
	cfg := deploy.DefaultConfig()
	cfg.Fork = deploy.ForkForge

	plan, err := NewLaunchPlan(cfg)
	require.NoError(t, err)

	assert.True(t, plan.AutoDetectJar)
	assert.Equal(t, "forge-*-server.jar", plan.JarGlob)
	assert.Contains(t, plan.MissingJarMessage, "--installServer")
}

// Every dialect is rendered from the same plan, so the flag list and the
// restart behavior must show up identically in all three.
func TestLaunchScripts_DialectsAgree(t *testing.T) {
	cfg := deploy.DefaultConfig()
	cfg.RAMGB = 16
	plan, err := NewLaunchPlan(cfg)
	require.NoError(t, err)

	scripts := map[string]string{
		"sh":  RenderStartSh(plan),
		"ps1": RenderStartPs1(plan),
		"bat": RenderStartBat(plan),
	}

	for dialect, script := range scripts {
		for _, flag := range plan.JVMFlags {
			assert.Contains(t, script, flag, "%s script is missing flag %s", dialect, flag)
		}
		assert.Contains(t, script, plan.JarName, "%s script does not reference the jar", dialect)
		assert.Contains(t, script, "10", "%s script does not carry the restart delay", dialect)
	}
}

func TestLaunchScripts_ForgeDetectionInEveryDialect(t *testing.T) {
	cfg := deploy.DefaultConfig()
	cfg.Fork = deploy.ForkForge
	plan, err := NewLaunchPlan(cfg)
	require.NoError(t, err)

	sh := RenderStartSh(plan)
	assert.Contains(t, sh, "resolve_server_jar")
	assert.Contains(t, sh, plan.JarGlob)
	assert.Contains(t, sh, plan.MissingJarMessage)

	ps1 := RenderStartPs1(plan)
	assert.Contains(t, ps1, "Resolve-ServerJar")
	assert.Contains(t, ps1, plan.JarGlob)
	assert.Contains(t, ps1, plan.MissingJarMessage)

	bat := RenderStartBat(plan)
	assert.Contains(t, bat, ":found_jar")
	assert.Contains(t, bat, plan.JarGlob)
	assert.Contains(t, bat, plan.MissingJarMessage)
}

func TestLaunchScripts_NoDetectionForDirectJarForks(t *testing.T) {
	plan, err := NewLaunchPlan(deploy.DefaultConfig())
	require.NoError(t, err)

	assert.NotContains(t, RenderStartSh(plan), "resolve_server_jar")
	assert.NotContains(t, RenderStartPs1(plan), "Resolve-ServerJar")
	assert.NotContains(t, RenderStartBat(plan), ":found_jar")
}

func TestRenderStartSh_ShellStructure(t *testing.T) {
	plan, err := NewLaunchPlan(deploy.DefaultConfig())
	require.NoError(t, err)

	sh := RenderStartSh(plan)
	assert.True(t, strings.HasPrefix(sh, "#!/bin/bash\n"))
	assert.Contains(t, sh, "set -euo pipefail")
	assert.Contains(t, sh, "tmux new-session")
	assert.Contains(t, sh, "while true; do")
}
