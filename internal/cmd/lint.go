package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/helmsman/internal/manifest"
	"github.com/cameronsjo/helmsman/internal/ui"
)

// lintCmd represents the lint command.
var lintCmd = &cobra.Command{
	Use:   "lint [values.yaml...]",
	Short: "Validate values files without rendering output",
	Long: `Validate values files before rendering.

Checks that required fields are present, templates resolve, and the gate
predicate parses. A gated-off file lints clean; a malformed gate is a
warning here even though render silently fails closed on it.

Examples:
  helmsman lint manifests/api-server.yaml
  helmsman lint    # lint everything under manifests/`,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	files, err := valuesFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		ui.Yellow.Println("No values files found")
		return nil
	}

	var errors, warnings int
	for _, path := range files {
		fileWarnings, err := lintFile(path)
		warnings += fileWarnings
		if err != nil {
			ui.Error("%s: %v", path, err)
			errors++
			continue
		}
		ui.Success("%s", path)
	}

	fmt.Println()
	if errors > 0 {
		ui.Red.Printf("Lint failed: %d error(s), %d warning(s)\n", errors, warnings)
		return fmt.Errorf("%d file(s) failed lint", errors)
	}
	if warnings > 0 {
		ui.Yellow.Printf("Lint passed with %d warning(s)\n", warnings)
		return nil
	}
	ui.Green.Println("All values files are valid")
	return nil
}

// lintFile checks one values file. Gate problems are warnings; render
// problems are errors.
func lintFile(path string) (warnings int, err error) {
	values, err := manifest.LoadValues(path)
	if err != nil {
		return 0, err
	}

	open, gateErr := manifest.CheckGate(values)
	if gateErr != nil {
		ui.Warning("%s: gate will fail closed: %v", path, gateErr)
		warnings++
	}
	if !open {
		// Still check the rest so gated files stay deployable later.
		ui.Yellow.Printf("· %s is gated off\n", path)
	}

	if _, err := renderIgnoringGate(values); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// renderIgnoringGate renders with the gate removed so lint validates the
// document body even when the gate is currently closed.
func renderIgnoringGate(values manifest.Values) (*manifest.Document, error) {
	ungated := make(manifest.Values, len(values))
	for k, v := range values {
		if k == "gate" {
			continue
		}
		ungated[k] = v
	}
	return manifest.Render(ungated)
}
