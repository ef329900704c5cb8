package cli

import (
	"github.com/spf13/cobra"

	"mcbundle.dev/cli/internal/core/domain/catalog"
)

// InstallFlags holds command-line flags for the install command.
type InstallFlags struct {
	ConfigPath string
	ServerDir  string
	Token      string
	Download   bool
	Offline    bool
	Workers    int
}

func newInstallCommand() *cobra.Command {
	flags := &InstallFlags{}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Refresh plugin scripts in an existing bundle and optionally download plugins",
		Long: `Install regenerates the plugin download scripts inside an existing
server directory and, with --download, fetches the selected plugins and
manual URLs into its plugins folder. Catalog plugin failures are reported
individually; a failing manual URL aborts the install.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			cfg, err := loadConfigFile(flags.ConfigPath, cat)
			if err != nil {
				return err
			}
			asm := newAssembler(cat, flags.Token, flags.Offline, flags.Workers)
			return runInstallPhase(cmd.Context(), asm, cfg, flags.ServerDir, flags.Download)
		},
	}

	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to the deployment configuration JSON (required)")
	cmd.Flags().StringVar(&flags.ServerDir, "server-dir", "", "Existing server directory (required)")
	cmd.Flags().StringVar(&flags.Token, "token", "", "GitHub API token (defaults to GITHUB_TOKEN)")
	cmd.Flags().BoolVar(&flags.Download, "download", false, "Download the selected plugins now")
	cmd.Flags().BoolVar(&flags.Offline, "offline", false, "Skip all network access")
	cmd.Flags().IntVar(&flags.Workers, "workers", 4, "Concurrent resolution/download workers")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("server-dir")
	return cmd
}
