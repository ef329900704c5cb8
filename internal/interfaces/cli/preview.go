package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcbundle.dev/cli/internal/core/domain/catalog"
	"mcbundle.dev/cli/internal/render"
)

func newPreviewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the rendered bundle files without writing anything",
		Long: `Preview renders every generated file for a configuration and prints it
to stdout. No network access happens and no files are written; plugins
that need online resolution show up as manual-download notes in the
download scripts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()
			cfg, err := loadConfigFile(configPath, cat)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			fileMap, err := render.Render(render.Input{Config: cfg, Catalog: cat})
			if err != nil {
				return err
			}
			for i, path := range fileMap.Paths() {
				if i > 0 {
					fmt.Println()
				}
				content, _ := fileMap.Get(path)
				fmt.Println(titleStyle.Render("## " + path))
				fmt.Println(content)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the deployment configuration JSON (required)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
