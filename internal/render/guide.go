package render

import (
	"strings"
	"text/template"

	"mcbundle.dev/cli/internal/core/domain/deploy"
)

// guideTemplate is the operations guide. The unconditional sections are
// always present; the Velocity and Forge sections appear only when the
// configuration calls for them.
var guideTemplate = template.Must(template.New("guide").Parse(`# {{.ServerName}} Deployment Guide

## Requirements
- Ubuntu 24.04 LTS VPS (8c/16t CPU, 32 GB RAM, 200 GB NVMe, 1 Gbps)
- Java 21 (Eclipse Temurin) installed system-wide

## Quick Start (Linux)
1. Upload this folder to ` + "`/opt/minecraft/server`" + ` (owner ` + "`mc`" + ` user).
2. Run ` + "`chmod +x start.sh backup.sh plugins/download_plugins.sh setup.sh`" + `.
3. Execute ` + "`./setup.sh`" + ` once on a fresh VPS for firewall + Java install notes.
4. Download plugins: ` + "`cd plugins && ./download_plugins.sh`" + `.
5. Start the server with ` + "`./start.sh`" + ` (tmux auto-restart). Use ` + "`tmux attach -t purpur`" + ` to view console.
6. In-game: ` + "`/op YourName`" + `, ` + "`/lp user YourName parent set admin`" + `.

## Quick Start (Windows 10/11)
1. Ensure Java 21 is installed and on PATH (Eclipse Temurin recommended).
2. Open PowerShell in the server folder and run ` + "`powershell -ExecutionPolicy Bypass -File .\\plugins\\download_plugins.ps1`" + `.
3. Launch ` + "`start.ps1`" + ` the same way for auto-restarts, or double-click ` + "`start.bat`" + ` for a classic loop.
4. Use ` + "`powershell -ExecutionPolicy Bypass -File .\\backup.ps1`" + ` or Task Scheduler for periodic ZIP backups.
5. Use ` + "`stop`" + ` in the console to shut down cleanly before closing the window.

## Included Files
- ` + "`start.sh`" + `: Auto-restarting tmux launcher with Aikar flags sized to {{.RAMGB}}G.
- ` + "`start.ps1`" + ` / ` + "`start.bat`" + `: PowerShell or CMD loops for Windows hosts (same flags).
- ` + "`backup.sh`" + `: Hourly cron-ready tarball backups with 7-day retention.
- ` + "`backup.ps1`" + `: PowerShell backup alternative with ZIP archives and pruning.
- ` + "`setup.sh`" + `: idempotent script listing OS hardening, Java install, firewall, swap, Velocity notes.
- ` + "`server.properties`" + `, ` + "`paper.yml`" + `, ` + "`purpur.yml`" + `: tuned for 100p SMP.
- ` + "`plugins/download_plugins.sh`" + ` and ` + "`plugins/download_plugins.ps1`" + `: download selected plugins on Linux or Windows.
- ` + "`plugins/LuckPerms/...`" + `: predefined ranks (default/vip/mod/admin).
- ` + "`README.md`" + `: this file.

## World Pre-Generation
- Run ` + "`/chunky world world`" + `, ` + "`/chunky radius 5000`" + `, ` + "`/chunky start`" + ` after first join.

## Backups & Restarts
- Add cron jobs: ` + "`0 * * * * /opt/minecraft/server/backup.sh`" + ` and ` + "`0 */6 * * * tmux send-keys -t purpur \"stop\" ENTER`" + `.

## Monitoring
- ` + "`/spark profiler --timeout 60`" + `, ` + "`tail -f logs/latest.log`" + `, ` + "`htop`" + `, ` + "`df -h`" + `.
{{- if .EnableVelocity}}

## Scaling with Velocity/Bungee
- Deploy Velocity proxy, copy ` + "`forwarding-secret`" + ` into ` + "`paper.yml`" + `.
- Set ` + "`server.properties -> online-mode=false`" + ` on backend servers when proxying.
- Move lobby/resource worlds into dedicated servers, sync permissions via LuckPerms MySQL.
{{- end}}
{{- if .Forge}}

## Forge-specific notes
- The Forge installer (` + "`forge-installer.jar`" + `) is included. Run ` + "`java -jar forge-installer.jar --installServer`" + ` in this folder to generate the server jar.
- The start scripts auto-detect the generated ` + "`forge-*-server.jar`" + `. If it is missing, rerun the installer.
- Copy your mods into the ` + "`mods/`" + ` folder and ensure both client and server have matching mod versions.
- Forge servers do not use the Paper/Purpur configs; adjust ` + "`server.properties`" + ` and mod configs as needed.
{{- end}}
`))

// RenderGuide renders README.md for the bundle.
func RenderGuide(cfg deploy.Config, jarName string) string {
	fork, err := deploy.ParseFork(string(cfg.Fork))
	data := struct {
		ServerName     string
		RAMGB          int
		JarName        string
		EnableVelocity bool
		Forge          bool
	}{
		ServerName:     cfg.ServerName,
		RAMGB:          cfg.RAMGB,
		JarName:        jarName,
		EnableVelocity: cfg.EnableVelocity,
		Forge:          err == nil && fork.InstallerBased(),
	}
	var b strings.Builder
	// The template is static and the data struct matches it; execution
	// cannot fail at runtime.
	_ = guideTemplate.Execute(&b, data)
	return b.String()
}

// RenderJavaNotice renders the Windows Java prerequisite note.
func RenderJavaNotice() string {
	return `REQUIRED DOWNLOAD!!!

Please install Java 25 LTS before launching the server on Windows.
Download the official installer from:
https://adoptium.net/download?link=https%3A%2F%2Fgithub.com%2Fadoptium%2Ftemurin25-binaries%2Freleases%2Fdownload%2Fjdk-25.0.1%252B8%2FOpenJDK25U-jdk_x64_windows_hotspot_25.0.1_8.msi
`
}

// RenderSetupScript renders the one-shot VPS provisioning script: package
// updates, Java install, firewall, fail2ban, swap.
func RenderSetupScript() string {
	return `#!/bin/bash
set -euo pipefail
echo "Updating system packages..."
apt update && apt -y upgrade
echo "Installing base utilities..."
apt install -y curl wget git unzip htop screen tmux ufw fail2ban
if ! command -v java >/dev/null 2>&1; then
  echo "Installing Eclipse Temurin 21..."
  apt install -y wget apt-transport-https gpg
  wget -O- https://packages.adoptium.net/artifactory/api/gpg/key/public | gpg --dearmor | tee /etc/apt/keyrings/adoptium.gpg >/dev/null
  echo "deb [signed-by=/etc/apt/keyrings/adoptium.gpg] https://packages.adoptium.net/artifactory/deb noble main" > /etc/apt/sources.list.d/adoptium.list
  apt update && apt install -y temurin-21-jdk
fi
echo "Configuring firewall..."
ufw default deny incoming
ufw default allow outgoing
ufw allow 22/tcp
ufw allow 25565/tcp
ufw allow 25565/udp
ufw allow 8123/tcp
ufw --force enable
echo "Enabling fail2ban..."
systemctl enable --now fail2ban
if ! swapon --show | grep -q swapfile; then
  fallocate -l 8G /swapfile
  chmod 600 /swapfile
  mkswap /swapfile
  swapon /swapfile
  echo '/swapfile none swap sw 0 0' >> /etc/fstab
fi
echo "Setup complete. Review /etc/fail2ban/jail.local and secure SSH keys."
`
}

// RenderBackupSh renders the tarball backup script with 7-day retention.
func RenderBackupSh() string {
	return `#!/bin/bash
set -euo pipefail
BASE_DIR="$(cd "$(dirname "$0")" && pwd)"
SRC_DIR="$BASE_DIR"
BACKUP_DIR="$BASE_DIR/backups"
mkdir -p "$BACKUP_DIR"
TIMESTAMP=$(date +"%Y-%m-%d_%H-%M")
tar --exclude="backups" --exclude="plugins/dynmap/web/tiles" -czf "$BACKUP_DIR/server_$TIMESTAMP.tar.gz" "$SRC_DIR"
find "$BACKUP_DIR" -type f -mtime +7 -delete
echo "Backup complete: $BACKUP_DIR/server_$TIMESTAMP.tar.gz"
`
}

// RenderBackupPs1 renders the PowerShell backup alternative with ZIP
// archives and pruning.
func RenderBackupPs1() string {
	return `$ErrorActionPreference = "Stop"
$baseDir = Split-Path -Parent $MyInvocation.MyCommand.Definition
$backupDir = Join-Path $baseDir "backups"
if (-not (Test-Path $backupDir)) {
  New-Item -ItemType Directory -Path $backupDir | Out-Null
}
$timestamp = Get-Date -Format "yyyy-MM-dd_HH-mm"
$archivePath = Join-Path $backupDir ("server_{0}.zip" -f $timestamp)
$items = Get-ChildItem -LiteralPath $baseDir -Force | Where-Object { $_.Name -ne "backups" }
if ($items.Count -eq 0) {
  Write-Host "No files to back up."
  exit 0
}
Compress-Archive -Path ($items | ForEach-Object { $_.FullName }) -DestinationPath $archivePath -Force
$threshold = (Get-Date).AddDays(-7)
Get-ChildItem -Path $backupDir -File | Where-Object { $_.LastWriteTime -lt $threshold } | Remove-Item -Force
Write-Host ("Backup complete: {0}" -f $archivePath)
`
}
