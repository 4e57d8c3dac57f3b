package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legible-dev/legible/internal/application/usecase"
	"github.com/legible-dev/legible/internal/cli/styles"
	"github.com/legible-dev/legible/internal/domain/entity"
	"github.com/legible-dev/legible/internal/infrastructure/markup"
)

var (
	inspectTarget   string
	inspectDisabled bool
	inspectJSON     bool
	inspectLevel    string
	inspectPolicy   string
	inspectSuggest  bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspect the contrast of a single target",
	Long: `Inspect the effective colors of one rendered node.

The target names a node by "#id", "tag", ".class" or "tag.class"; the first
match in document order wins. When the target is not rendered, or detection
is disabled with --disabled, nothing is printed and the exit code stays 0.

Examples:
  legible inspect page.html --target "#headline"
  legible inspect page.html --target p.lead --json
  legible inspect page.html --target h1 --disabled   # No output, exit 0`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectTarget, "target", "", "node to inspect: #id, tag, .class or tag.class")
	inspectCmd.Flags().BoolVar(&inspectDisabled, "disabled", false, "run with detection disabled")
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output the finding as JSON")
	inspectCmd.Flags().StringVar(&inspectLevel, "level", "", "conformance level: aa or aaa (default from config)")
	inspectCmd.Flags().StringVar(&inspectPolicy, "policy", "", "transparent backgrounds: skip or assume:<color> (default from config)")
	inspectCmd.Flags().BoolVar(&inspectSuggest, "suggest", false, "suggest a passing replacement color on failure")
	_ = inspectCmd.MarkFlagRequired("target")
}

func runInspect(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	checker, err := app.Checker(inspectLevel, inspectPolicy)
	if err != nil {
		return err
	}
	rules, err := app.RuleEngine(ctx, "")
	if err != nil {
		return err
	}

	doc, err := markup.ParseFile(args[0])
	if err != nil {
		return err
	}

	detect := usecase.NewDetectColorsUseCase(doc, doc)
	inspect := usecase.NewInspectTargetUseCase(doc, doc, detect, checker, rules)

	out, err := inspect.Execute(ctx, usecase.InspectTargetInput{
		Target:  entity.NodeID(inspectTarget),
		Enabled: !inspectDisabled,
		Suggest: inspectSuggest || app.Config.Contrast.Suggest,
	})
	if err != nil {
		return err
	}

	// Disabled or unresolved targets report nothing.
	if out.Detection == nil {
		return nil
	}

	if inspectJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out.Finding); err != nil {
			return fmt.Errorf("failed to encode finding: %w", err)
		}
		return nil
	}

	renderer := styles.NewReportRenderer(app.Theme)
	fmt.Println(renderer.RenderDetection(out.Detection))
	if out.Finding != nil {
		fmt.Println(renderer.RenderFindingDetail(*out.Finding))
	}
	return nil
}
