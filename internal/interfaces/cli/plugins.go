package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcbundle.dev/cli/internal/core/domain/catalog"
)

func newPluginsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the plugin catalog",
		Run: func(cmd *cobra.Command, args []string) {
			cat := catalog.Default()
			fmt.Println(titleStyle.Render(fmt.Sprintf("Plugin catalog (%d entries)", cat.Len())))
			for _, d := range cat.All() {
				marker := " "
				if d.Default {
					marker = "*"
				}
				line := fmt.Sprintf("%s %-18s %-24s %s", marker, d.Name, d.Description, dimStyle.Render(string(d.Source)))
				fmt.Println(line)
			}
			fmt.Println(dimStyle.Render("* selected by default"))
		},
	}
}
