// Package assemble materializes a rendered bundle on disk and drives the
// artifact resolution and download phases.
package assemble

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/core/domain/deploy"
	"mcbundle.dev/cli/internal/core/ports"
	"mcbundle.dev/cli/internal/infrastructure/resolve"
	"mcbundle.dev/cli/internal/render"
)

// ForgeResolver locates the Forge installer for a game version.
// *resolve.Client satisfies it.
type ForgeResolver interface {
	ResolveForgeInstaller(ctx context.Context, gameVersion string) artifact.Resolution
}

// Assembler writes bundles. Resolver, Forge and Fetcher may be nil, which
// means no network capability: every artifact degrades to its manual
// fallback instead of failing.
type Assembler struct {
	Catalog  catalog.Catalog
	Resolver ports.Resolver
	Forge    ForgeResolver
	Fetcher  ports.Fetcher
	// Workers bounds the resolution/download pool.
	Workers int
	// OnStep, when set, receives per-file progress during generation.
	OnStep func(step, total int, label string)
}

// Result reports what Assemble wrote and what still needs manual action.
type Result struct {
	RootDir string
	// Written lists relative paths of generated files, in render order.
	Written []string
	// ManualActions lists instruction files written because an artifact
	// could not be resolved or fetched.
	ManualActions []string
	// Report aggregates the plugin download phase, keyed by plugin name.
	Report *artifact.Report
}

// Assemble validates the configuration, renders the file map, writes it
// under a slug-derived directory and handles the runtime binary. When
// download is true, selected plugins and manual URLs are fetched into the
// bundle's plugins directory.
func (a *Assembler) Assemble(ctx context.Context, cfg deploy.Config, download bool) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, &deploy.ConfigError{Field: "output_dir", Reason: "is required"}
	}

	rootDir := filepath.Join(cfg.OutputDir, deploy.Slug(cfg.ServerName)+"-server")
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("create bundle directory: %w", err)
	}

	// Phase 1: resolve the selected plugins so the rendered download
	// scripts carry concrete URLs where possible.
	resolved := a.resolveSelected(ctx, cfg.Plugins)

	fileMap, err := render.Render(render.Input{Config: cfg, Catalog: a.Catalog, Resolved: resolved})
	if err != nil {
		return nil, err
	}

	result := &Result{RootDir: rootDir, Report: artifact.NewReport()}
	total := fileMap.Len()
	for i, rel := range fileMap.Paths() {
		content, _ := fileMap.Get(rel)
		if err := writeBundleFile(rootDir, rel, content); err != nil {
			return nil, err
		}
		result.Written = append(result.Written, rel)
		if a.OnStep != nil {
			a.OnStep(i+1, total, rel)
		}
	}

	if err := a.installRuntime(ctx, cfg, rootDir, result); err != nil {
		return nil, err
	}

	// The context gate between the resolution and fetch phases is the
	// caller's cancellation point for the whole batch.
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if download {
		if err := a.downloadPlugins(ctx, cfg, filepath.Join(rootDir, "plugins"), resolved, result.Report); err != nil {
			return result, err
		}
	}
	return result, nil
}

// installRuntime fetches the server runtime binary for the configured fork,
// or writes a manual-download instruction file when that is impossible.
func (a *Assembler) installRuntime(ctx context.Context, cfg deploy.Config, rootDir string, result *Result) error {
	fork, err := deploy.ParseFork(string(cfg.Fork))
	if err != nil {
		return err
	}
	rt, err := cfg.Runtime()
	if err != nil {
		return err
	}

	if fork.InstallerBased() {
		if a.Forge == nil {
			return a.writeManualNote(rootDir, "FORGE_DOWNLOAD.txt", fmt.Sprintf(
				"Download the Forge installer for Minecraft %s from https://files.minecraftforge.net/\nSave as forge-installer.jar and run:\njava -jar forge-installer.jar --installServer\n",
				cfg.Version), result)
		}
		res := a.Forge.ResolveForgeInstaller(ctx, cfg.Version)
		if !res.OK() {
			return a.writeManualNote(rootDir, "FORGE_DOWNLOAD.txt", res.Reason+
				"\nDownload the installer manually from https://files.minecraftforge.net/ and place it here as forge-installer.jar.\n", result)
		}
		if a.Fetcher == nil {
			return a.writeManualNote(rootDir, "FORGE_DOWNLOAD.txt", fmt.Sprintf(
				"Download Forge installer from:\n%s\nSave as forge-installer.jar and run:\njava -jar forge-installer.jar --installServer\n",
				res.DownloadURL), result)
		}
		if _, err := a.Fetcher.Fetch(ctx, res.DownloadURL, "forge-installer.jar", rootDir); err != nil {
			return err
		}
		result.Written = append(result.Written, "forge-installer.jar")
		return nil
	}

	if a.Fetcher == nil {
		return a.writeManualNote(rootDir, "JAR_DOWNLOAD.txt", fmt.Sprintf(
			"Download the server jar manually from:\n%s\nSave as %s in this folder.\n",
			rt.DownloadURL, rt.JarName), result)
	}
	if _, err := a.Fetcher.Fetch(ctx, rt.DownloadURL, rt.JarName, rootDir); err != nil {
		return err
	}
	result.Written = append(result.Written, rt.JarName)
	return nil
}

func (a *Assembler) writeManualNote(rootDir, name, content string, result *Result) error {
	if err := writeBundleFile(rootDir, name, content); err != nil {
		return err
	}
	result.Written = append(result.Written, name)
	result.ManualActions = append(result.ManualActions, name)
	return nil
}

// writeBundleFile writes one rendered entry, creating parents as needed and
// marking shell scripts executable. Existing generated files are
// overwritten in place.
func writeBundleFile(rootDir, rel, content string) error {
	dest := filepath.Join(rootDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create parent directory for %s: %w", rel, err)
	}
	mode := os.FileMode(0o644)
	if strings.HasSuffix(rel, ".sh") {
		mode = 0o755
	}
	if err := os.WriteFile(dest, []byte(content), mode); err != nil {
		return fmt.Errorf("write %s: %w", rel, err)
	}
	// WriteFile does not change the mode of a pre-existing file.
	if err := os.Chmod(dest, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", rel, err)
	}
	return nil
}

// resolveSelected resolves the selected plugin names, keyed by name.
// Direct sources resolve without network. Unknown names are skipped, and
// non-direct sources stay unresolved when no resolver is available.
func (a *Assembler) resolveSelected(ctx context.Context, names []string) map[string]artifact.Resolution {
	results := make(map[string]artifact.Resolution, len(names))
	var remote []catalog.Descriptor
	for _, name := range names {
		d, ok := a.Catalog.Lookup(name)
		if !ok {
			continue
		}
		if d.Source == catalog.SourceDirect {
			results[d.Name] = resolve.ResolveDirect(d)
			continue
		}
		remote = append(remote, d)
	}
	if a.Resolver == nil || len(remote) == 0 {
		return results
	}
	for name, res := range a.resolvePool(ctx, remote) {
		results[name] = res
	}
	return results
}
