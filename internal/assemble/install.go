package assemble

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"mcbundle.dev/cli/internal/core/domain/artifact"
	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/core/domain/deploy"
	"mcbundle.dev/cli/internal/infrastructure/resolve"
	"mcbundle.dev/cli/internal/render"
)

const defaultWorkers = 4

func (a *Assembler) workers() int {
	if a.Workers < 1 {
		return defaultWorkers
	}
	return a.Workers
}

// resolvePool resolves descriptors concurrently with a bounded pool.
// Failures are independent: a rate-limited call never cancels siblings.
func (a *Assembler) resolvePool(ctx context.Context, descriptors []catalog.Descriptor) map[string]artifact.Resolution {
	results := make(map[string]artifact.Resolution, len(descriptors))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, a.workers())
	for _, d := range descriptors {
		wg.Add(1)
		sem <- struct{}{}
		go func(d catalog.Descriptor) {
			defer wg.Done()
			defer func() { <-sem }()
			res := a.Resolver.Resolve(ctx, d)
			mu.Lock()
			results[d.Name] = res
			mu.Unlock()
		}(d)
	}
	wg.Wait()
	return results
}

// downloadPlugins fetches every resolved plugin into pluginsDir. Catalog
// plugin failures are recorded per plugin and never abort the batch; a
// manual-URL failure aborts the install with the failing URL in the error.
func (a *Assembler) downloadPlugins(ctx context.Context, cfg deploy.Config, pluginsDir string, resolved map[string]artifact.Resolution, report *artifact.Report) error {
	if a.Fetcher == nil {
		return fmt.Errorf("plugin download requested but no network capability is available")
	}

	type task struct {
		name string
		res  artifact.Resolution
	}
	var tasks []task
	for _, name := range cfg.Plugins {
		d, ok := a.Catalog.Lookup(name)
		if !ok {
			continue
		}
		res, ok := resolved[d.Name]
		if !ok {
			res = artifact.Unresolvable("not resolved")
		}
		if !res.OK() {
			report.AddFailure(d.Name, res.Reason, res.Status == artifact.StatusRateLimited)
			continue
		}
		tasks = append(tasks, task{name: d.Name, res: res})
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, a.workers())
	for _, t := range tasks {
		wg.Add(1)
		sem <- struct{}{}
		go func(t task) {
			defer wg.Done()
			defer func() { <-sem }()
			path, err := a.Fetcher.Fetch(ctx, t.res.DownloadURL, t.res.Filename, pluginsDir)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.AddFailure(t.name, err.Error(), false)
				return
			}
			report.AddSuccess(t.name, path)
		}(t)
	}
	wg.Wait()

	// Manual URLs run sequentially: their order defines the fallback
	// filename index, and the first failure is fatal.
	for i, url := range cfg.CleanManualURLs() {
		fallback := fmt.Sprintf("manual-plugin-%d.jar", i+1)
		filename := resolve.FilenameFromURL(url, fallback)
		path, err := a.Fetcher.Fetch(ctx, url, filename, pluginsDir)
		if err != nil {
			return fmt.Errorf("failed to download manual plugin %s: %w", url, err)
		}
		report.AddSuccess(fmt.Sprintf("manual-%d", i+1), path)
	}
	return nil
}

// InstallPlugins refreshes the plugins subtree of an existing bundle:
// regenerates the download scripts and, when download is true, fetches the
// selected plugins and manual URLs. Mirrors Assemble's failure-isolation
// policy.
func (a *Assembler) InstallPlugins(ctx context.Context, cfg deploy.Config, serverDir string, download bool) (*artifact.Report, error) {
	if len(cfg.Plugins) == 0 {
		return nil, &deploy.ConfigError{Field: "plugins", Reason: "select at least one plugin to install"}
	}
	if _, err := os.Stat(serverDir); err != nil {
		return nil, fmt.Errorf("server directory %q does not exist: %w", serverDir, err)
	}
	pluginsDir := filepath.Join(serverDir, "plugins")
	if err := os.MkdirAll(pluginsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create plugins directory: %w", err)
	}

	resolved := a.resolveSelected(ctx, cfg.Plugins)
	in := render.Input{Config: cfg, Catalog: a.Catalog, Resolved: resolved}
	if err := writeBundleFile(pluginsDir, "download_plugins.sh", render.RenderDownloadScriptSh(in)); err != nil {
		return nil, err
	}
	if err := writeBundleFile(pluginsDir, "download_plugins.ps1", render.RenderDownloadScriptPs1(in)); err != nil {
		return nil, err
	}

	report := artifact.NewReport()
	if download {
		if err := a.downloadPlugins(ctx, cfg, pluginsDir, resolved, report); err != nil {
			return report, err
		}
	}
	return report, nil
}
