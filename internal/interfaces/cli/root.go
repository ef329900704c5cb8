// Package cli wires the cobra command surface of the bundle generator.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// NewRootCommand builds the mcb command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mcb",
		Short: "mcbundle - Minecraft server deployment bundle generator",
		Long: `mcbundle (mcb) assembles a ready-to-run Minecraft server deployment
bundle from a declarative configuration: tuned launch scripts for three
platforms, server and plugin configuration, permission presets, and the
selected plugin jars resolved from their upstream release channels.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newPluginsCommand())
	rootCmd.AddCommand(newInstallCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

// Execute runs the CLI and exits non-zero on error. Interrupts cancel the
// command context so in-flight download batches can be abandoned between
// phases.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("mcbundle %s\n", Version)
			fmt.Printf("Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Printf("Go version: %s\n", runtime.Version())
		},
	}
}
