package render

import (
	"fmt"
	"strings"

	"mcbundle.dev/cli/internal/core/domain/deploy"
)

// LaunchPlan is the canonical launch model the three script dialects are
// rendered from, so the sh/ps1/bat variants cannot drift apart: one flag
// list, one restart-loop description, one jar-resolution strategy.
type LaunchPlan struct {
	JarName string
	// JVMFlags is the complete, ordered java flag list shared by every
	// dialect.
	JVMFlags []string
	// AutoDetectJar enables the installer-fork strategy: look for JarName,
	// fall back to globbing JarGlob, and when neither exists print
	// MissingJarMessage and retry instead of exiting.
	AutoDetectJar     bool
	JarGlob           string
	MissingJarMessage string
	// RestartDelaySeconds is the pause between server exit and restart.
	RestartDelaySeconds int
	SessionName         string
}

// NewLaunchPlan builds the launch plan for a configuration.
func NewLaunchPlan(cfg deploy.Config) (LaunchPlan, error) {
	rt, err := cfg.Runtime()
	if err != nil {
		return LaunchPlan{}, err
	}
	fork, err := deploy.ParseFork(string(cfg.Fork))
	if err != nil {
		return LaunchPlan{}, err
	}
	plan := LaunchPlan{
		JarName:             rt.JarName,
		JVMFlags:            jvmFlags(cfg.RAMGB),
		RestartDelaySeconds: 10,
		SessionName:         "purpur",
	}
	if fork.InstallerBased() {
		plan.AutoDetectJar = true
		plan.JarGlob = "forge-*-server.jar"
		plan.MissingJarMessage = "Forge server jar not found. Run 'java -jar forge-installer.jar --installServer' first."
	}
	return plan, nil
}

// jvmFlags returns the Aikar garbage-collector tuning set sized to ramGB.
func jvmFlags(ramGB int) []string {
	return []string{
		fmt.Sprintf("-Xms%dG", ramGB),
		fmt.Sprintf("-Xmx%dG", ramGB),
		"-XX:+UseG1GC",
		"-XX:+UnlockExperimentalVMOptions",
		"-XX:+ParallelRefProcEnabled",
		"-XX:G1NewSizePercent=30",
		"-XX:G1MaxNewSizePercent=40",
		"-XX:G1HeapRegionSize=8M",
		"-XX:G1ReservePercent=20",
		"-XX:G1HeapWastePercent=5",
		"-XX:G1MixedGCCountTarget=4",
		"-XX:InitiatingHeapOccupancyPercent=15",
		"-XX:G1MixedGCLiveThresholdPercent=85",
		"-XX:G1RSetUpdatingPauseTimePercent=5",
		"-XX:SurvivorRatio=32",
		"-XX:+PerfDisableSharedMem",
		"-XX:MaxTenuringThreshold=1",
		"-XX:+AlwaysPreTouch",
		"-Dusing.aikars.flags=https://mcflags.emc.gs",
		"-Daikars.new.flags=true",
		"-Dfile.encoding=UTF-8",
		"-Djline.terminal=jline.UnsupportedTerminal",
		"-Dcom.mojang.eula.agree=true",
	}
}

// RenderStartSh renders the POSIX launch script: tmux-backed infinite
// restart loop with optional jar auto-detection.
func RenderStartSh(plan LaunchPlan) string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("set -euo pipefail\n")
	b.WriteString("cd \"$(dirname \"$0\")\"\n")
	fmt.Fprintf(&b, "SESSION_NAME=%q\n", plan.SessionName)
	fmt.Fprintf(&b, "JAR_FILE=%q\n", plan.JarName)
	b.WriteString("if ! command -v tmux >/dev/null 2>&1; then\n")
	b.WriteString("  echo \"tmux is required. Install via 'sudo apt install -y tmux'.\"\n")
	b.WriteString("  exit 1\n")
	b.WriteString("fi\n")

	jarRef := "$JAR_FILE"
	if plan.AutoDetectJar {
		b.WriteString("resolve_server_jar() {\n")
		b.WriteString("  if [ -f \"$JAR_FILE\" ]; then\n")
		b.WriteString("    echo \"$JAR_FILE\"\n")
		b.WriteString("    return\n")
		b.WriteString("  fi\n")
		b.WriteString("  local candidate\n")
		fmt.Fprintf(&b, "  candidate=$(ls %s 2>/dev/null | head -n 1)\n", plan.JarGlob)
		b.WriteString("  if [ -n \"$candidate\" ]; then\n")
		b.WriteString("    echo \"$candidate\"\n")
		b.WriteString("    return\n")
		b.WriteString("  fi\n")
		b.WriteString("  echo \"\"\n")
		b.WriteString("}\n")
		jarRef = "$RESOLVED_JAR"
	}

	b.WriteString("while true; do\n")
	b.WriteString("  TIMESTAMP=$(date '+%Y-%m-%d %H:%M:%S')\n")
	b.WriteString("  echo \"[$TIMESTAMP] Starting server...\"\n")
	if plan.AutoDetectJar {
		b.WriteString("  RESOLVED_JAR=$(resolve_server_jar)\n")
		b.WriteString("  if [ -z \"$RESOLVED_JAR\" ]; then\n")
		fmt.Fprintf(&b, "    echo %q\n", plan.MissingJarMessage)
		fmt.Fprintf(&b, "    sleep %d\n", plan.RestartDelaySeconds)
		b.WriteString("    continue\n")
		b.WriteString("  fi\n")
	}
	b.WriteString("  tmux new-session -d -s \"$SESSION_NAME\" \"exec java \\\n")
	for _, flag := range plan.JVMFlags {
		fmt.Fprintf(&b, "    %s \\\n", flag)
	}
	fmt.Fprintf(&b, "    -jar %s nogui\"\n", jarRef)
	b.WriteString("  tmux attach -t \"$SESSION_NAME\"\n")
	b.WriteString("  EXIT_CODE=$?\n")
	fmt.Fprintf(&b, "  echo \"Server exited with code $EXIT_CODE. Restarting in %d seconds...\"\n", plan.RestartDelaySeconds)
	b.WriteString("  tmux kill-session -t \"$SESSION_NAME\" >/dev/null 2>&1 || true\n")
	fmt.Fprintf(&b, "  sleep %d\n", plan.RestartDelaySeconds)
	b.WriteString("done\n")
	return b.String()
}

// RenderStartPs1 renders the PowerShell launch script.
func RenderStartPs1(plan LaunchPlan) string {
	var b strings.Builder
	b.WriteString("$ErrorActionPreference = \"Stop\"\n")
	b.WriteString("$scriptDir = Split-Path -Parent $MyInvocation.MyCommand.Definition\n")
	b.WriteString("Set-Location $scriptDir\n")
	fmt.Fprintf(&b, "$jarFile = \"%s\"\n", plan.JarName)

	jarVar := "$jarFile"
	if plan.AutoDetectJar {
		b.WriteString("function Resolve-ServerJar {\n")
		b.WriteString("  param($Default)\n")
		b.WriteString("  if (Test-Path $Default) { return $Default }\n")
		fmt.Fprintf(&b, "  $candidate = Get-ChildItem -Filter '%s' | Select-Object -First 1\n", plan.JarGlob)
		b.WriteString("  if ($candidate) { return $candidate.Name }\n")
		b.WriteString("  return $null\n")
		b.WriteString("}\n")
		jarVar = "$selectedJar"
	}

	b.WriteString("while ($true) {\n")
	b.WriteString("  $timestamp = Get-Date -Format \"yyyy-MM-dd HH:mm:ss\"\n")
	b.WriteString("  Write-Host \"[$timestamp] Starting server...\"\n")
	if plan.AutoDetectJar {
		b.WriteString("  $selectedJar = Resolve-ServerJar -Default $jarFile\n")
		fmt.Fprintf(&b, "  if (-not $selectedJar) { Write-Host \"%s\"; Start-Sleep -Seconds %d; continue }\n",
			plan.MissingJarMessage, plan.RestartDelaySeconds)
	}
	b.WriteString("  $arguments = @(\n")
	for _, flag := range plan.JVMFlags {
		fmt.Fprintf(&b, "    \"%s\",\n", flag)
	}
	b.WriteString("    \"-jar\",\n")
	fmt.Fprintf(&b, "    %s,\n", jarVar)
	b.WriteString("    \"nogui\"\n")
	b.WriteString("  )\n")
	b.WriteString("  & java @arguments\n")
	b.WriteString("  $exitCode = $LASTEXITCODE\n")
	fmt.Fprintf(&b, "  Write-Host \"Server exited with code $exitCode. Restarting in %d seconds...\"\n", plan.RestartDelaySeconds)
	fmt.Fprintf(&b, "  Start-Sleep -Seconds %d\n", plan.RestartDelaySeconds)
	b.WriteString("}\n")
	return b.String()
}

// RenderStartBat renders the legacy batch launch script.
func RenderStartBat(plan LaunchPlan) string {
	var b strings.Builder
	b.WriteString("@echo off\n")
	b.WriteString("setlocal ENABLEDELAYEDEXPANSION\n")
	b.WriteString("cd /d %~dp0\n")
	fmt.Fprintf(&b, "set \"JAR_FILE=%s\"\n", plan.JarName)
	fmt.Fprintf(&b, "set \"JAVA_FLAGS=%s\"\n", strings.Join(plan.JVMFlags, " "))
	b.WriteString(":loop\n")
	b.WriteString("echo [%date% %time%] Starting server...\n")

	jarRef := "\"%JAR_FILE%\""
	if plan.AutoDetectJar {
		b.WriteString("set \"RESOLVED_JAR=%JAR_FILE%\"\n")
		b.WriteString("if not exist \"%RESOLVED_JAR%\" (\n")
		b.WriteString("  set \"RESOLVED_JAR=\"\n")
		fmt.Fprintf(&b, "  for %%%%F in (%s) do (\n", plan.JarGlob)
		b.WriteString("    set \"RESOLVED_JAR=%%F\"\n")
		b.WriteString("    goto found_jar\n")
		b.WriteString("  )\n")
		b.WriteString(")\n")
		b.WriteString(":found_jar\n")
		b.WriteString("if not defined RESOLVED_JAR (\n")
		fmt.Fprintf(&b, "  echo %s\n", plan.MissingJarMessage)
		fmt.Fprintf(&b, "  timeout /t %d /nobreak >nul\n", plan.RestartDelaySeconds)
		b.WriteString("  goto loop\n")
		b.WriteString(")\n")
		jarRef = "\"%RESOLVED_JAR%\""
	}

	fmt.Fprintf(&b, "java %%JAVA_FLAGS%% -jar %s nogui\n", jarRef)
	b.WriteString("set EXITCODE=%ERRORLEVEL%\n")
	fmt.Fprintf(&b, "echo Server exited with code %%EXITCODE%%. Restarting in %d seconds...\n", plan.RestartDelaySeconds)
	fmt.Fprintf(&b, "timeout /t %d /nobreak >nul\n", plan.RestartDelaySeconds)
	b.WriteString("goto loop\n")
	return b.String()
}
