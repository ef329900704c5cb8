package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcbundle.dev/cli/internal/assemble"
	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/core/domain/deploy"
	"mcbundle.dev/cli/internal/infrastructure/fetch"
	"mcbundle.dev/cli/internal/infrastructure/resolve"
)

// GenerateFlags holds command-line flags for the generate command.
type GenerateFlags struct {
	ConfigPath string
	OutputDir  string
	Token      string
	Download   bool
	Offline    bool
	Workers    int
}

func newGenerateCommand() *cobra.Command {
	flags := &GenerateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a deployment bundle from a configuration file",
		Long: `Generate renders the full deployment bundle (launch scripts, tuned
configuration, permission presets, plugin download scripts) into a
directory derived from the server name, and fetches the server runtime
binary for the selected fork.

Examples:
  mcb generate -c server.json -o ./out
  mcb generate -c server.json --download --token $GITHUB_TOKEN
  mcb generate -c server.json --offline`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to the deployment configuration JSON (required)")
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Output directory (overrides output_dir in the configuration)")
	cmd.Flags().StringVar(&flags.Token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	cmd.Flags().BoolVar(&flags.Download, "download", false, "Download selected plugins and manual URLs into the bundle")
	cmd.Flags().BoolVar(&flags.Offline, "offline", false, "Skip all network access; write manual-download instructions instead")
	cmd.Flags().IntVar(&flags.Workers, "workers", 4, "Concurrent resolution/download workers")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func runGenerate(ctx context.Context, flags *GenerateFlags) error {
	cat := catalog.Default()
	cfg, err := loadConfigFile(flags.ConfigPath, cat)
	if err != nil {
		return err
	}
	if flags.OutputDir != "" {
		cfg.OutputDir = flags.OutputDir
	}

	asm := newAssembler(cat, flags.Token, flags.Offline, flags.Workers)

	var result *assemble.Result
	if isTerminal(os.Stdout) {
		result, err = runGenerateWithProgress(ctx, asm, cfg, flags.Download)
	} else {
		asm.OnStep = func(step, total int, label string) {
			fmt.Printf("[%d/%d] %s\n", step, total, label)
		}
		result, err = asm.Assemble(ctx, cfg, flags.Download)
	}
	if result != nil {
		printResult(result)
	}
	return err
}

// newAssembler builds the assembler wiring. Offline mode leaves the
// resolver and fetcher nil so every artifact takes its manual fallback.
func newAssembler(cat catalog.Catalog, token string, offline bool, workers int) *assemble.Assembler {
	asm := &assemble.Assembler{Catalog: cat, Workers: workers}
	if !offline {
		client := resolve.NewClient(githubToken(token))
		asm.Resolver = client
		asm.Forge = client
		asm.Fetcher = fetch.NewDownloader()
	}
	return asm
}

// isTerminal reports whether f is attached to a character device, which
// gates the interactive progress display.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func printResult(result *assemble.Result) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Bundle written to %s", result.RootDir)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d files generated", len(result.Written))))
	for _, note := range result.ManualActions {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Manual action required: see %s", note)))
	}
	if result.Report == nil {
		return
	}
	for name, path := range result.Report.Downloaded {
		fmt.Println(successStyle.Render(fmt.Sprintf("Downloaded %s -> %s", name, path)))
	}
	for _, failure := range result.Report.Failures {
		label := "failed"
		if failure.Retryable {
			label = "retry later"
		}
		fmt.Println(warnStyle.Render(fmt.Sprintf("%s (%s): %s", failure.Name, label, failure.Reason)))
	}
}

func runInstallPhase(ctx context.Context, asm *assemble.Assembler, cfg deploy.Config, serverDir string, download bool) error {
	report, err := asm.InstallPlugins(ctx, cfg, serverDir, download)
	if report != nil {
		for name, path := range report.Downloaded {
			fmt.Println(successStyle.Render(fmt.Sprintf("Downloaded %s -> %s", name, path)))
		}
		for _, failure := range report.Failures {
			fmt.Println(warnStyle.Render(fmt.Sprintf("%s: %s", failure.Name, failure.Reason)))
		}
	}
	return err
}
