package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/cli/styles"
)

// versionCmd runs without app context so that the version stays printable
// with a broken config file.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(styles.NewVersionRenderer(styles.NewTheme()).Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
