package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/cli/styles"
)

var paletteJSON bool

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the configured color palette",
	Long: `Show the palette handed to editors: named colors, gradients, and
whether custom values are allowed. Colors render as terminal swatches.`,
	RunE: runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.Flags().BoolVar(&paletteJSON, "json", false, "output as JSON")
}

func runPalette(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	settings, err := app.Settings(app.Ctx())
	if err != nil {
		return err
	}

	if paletteJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(settings)
	}

	fmt.Println(styles.NewPaletteRenderer(app.Theme).Render(settings))
	return nil
}
