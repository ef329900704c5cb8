package render

import (
	"fmt"
	"strings"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/infrastructure/resolve"
)

// pluginDownload is one entry in the generated download scripts.
type pluginDownload struct {
	Name     string
	Filename string
	URL      string
	Archive  bool
	// ManualNote is set instead of URL when the plugin could not be
	// resolved; the scripts print it rather than fetching anything.
	ManualNote string
}

// downloadEntries builds the per-plugin script entries from the selected
// names. Direct sources resolve without network; other sources consult the
// pre-resolved map and degrade to a manual-download note when absent.
func downloadEntries(in Input) []pluginDownload {
	var entries []pluginDownload
	for _, name := range in.Config.Plugins {
		d, ok := in.Catalog.Lookup(name)
		if !ok {
			continue
		}
		res := resolutionFor(d, in.Resolved)
		if !res.OK() {
			entries = append(entries, pluginDownload{
				Name:       d.Name,
				ManualNote: fmt.Sprintf("Manual download required for %s: %s", d.Name, d.URL),
			})
			continue
		}
		filename := res.Filename
		if filename == "" {
			filename = resolve.FilenameFromURL(res.DownloadURL, d.Name+".jar")
		}
		entries = append(entries, pluginDownload{
			Name:     d.Name,
			Filename: filename,
			URL:      res.DownloadURL,
			Archive:  d.Archive || strings.HasSuffix(strings.ToLower(filename), ".zip"),
		})
	}
	return entries
}

func resolutionFor(d catalog.Descriptor, resolved map[string]artifact.Resolution) artifact.Resolution {
	if d.Source == catalog.SourceDirect {
		return resolve.ResolveDirect(d)
	}
	if res, ok := resolved[d.Name]; ok {
		return res
	}
	return artifact.Unresolvable("not resolved")
}

// RenderDownloadScriptSh renders plugins/download_plugins.sh: one wget per
// plugin, with an extract-and-clean step for archive entries, followed by
// the manual URLs under their index-based fallback names.
func RenderDownloadScriptSh(in Input) string {
	lines := []string{
		"#!/bin/bash",
		"set -euo pipefail",
		"cd \"$(dirname \"$0\")\"",
	}
	for _, e := range downloadEntries(in) {
		if e.ManualNote != "" {
			lines = append(lines, fmt.Sprintf("echo %q", e.ManualNote))
			continue
		}
		if e.Archive {
			lines = append(lines, fmt.Sprintf("wget -O %s %s && unzip -o %s && rm %s",
				e.Filename, e.URL, e.Filename, e.Filename))
			continue
		}
		lines = append(lines, fmt.Sprintf("wget -O %s %s", e.Filename, e.URL))
	}
	for i, url := range in.Config.CleanManualURLs() {
		lines = append(lines, fmt.Sprintf("wget -O manual-plugin-%d.jar %s", i+1, url))
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderDownloadScriptPs1 renders plugins/download_plugins.ps1, the
// Windows counterpart of the sh script.
func RenderDownloadScriptPs1(in Input) string {
	lines := []string{
		"$ErrorActionPreference = \"Stop\"",
		"$scriptDir = Split-Path -Parent $MyInvocation.MyCommand.Definition",
		"Set-Location $scriptDir",
	}
	for _, e := range downloadEntries(in) {
		if e.ManualNote != "" {
			lines = append(lines, fmt.Sprintf("Write-Host \"%s\"", e.ManualNote))
			continue
		}
		lines = append(lines, fmt.Sprintf("Write-Host \"Downloading %s...\"", e.Name))
		lines = append(lines, fmt.Sprintf("Invoke-WebRequest -Uri \"%s\" -OutFile \"%s\" -UseBasicParsing", e.URL, e.Filename))
		if e.Archive {
			lines = append(lines, fmt.Sprintf("Expand-Archive -LiteralPath \"%s\" -DestinationPath . -Force", e.Filename))
			lines = append(lines, fmt.Sprintf("Remove-Item \"%s\" -Force", e.Filename))
		}
	}
	for i, url := range in.Config.CleanManualURLs() {
		lines = append(lines, fmt.Sprintf("Write-Host \"Downloading manual plugin from %s\"", url))
		lines = append(lines, fmt.Sprintf("Invoke-WebRequest -Uri \"%s\" -OutFile \"manual-plugin-%d.jar\" -UseBasicParsing", url, i+1))
	}
	return strings.Join(lines, "\n") + "\n"
}
