package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/helmsman/internal/config"
	"github.com/cameronsjo/helmsman/internal/manifest"
	"github.com/cameronsjo/helmsman/internal/ui"
)

var renderOutput string

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render [values.yaml...]",
	Short: "Render values files to Service manifests",
	Long: `Render values files into Service manifests.

Each values file supplies the context for one document: identity and
selector fields, label fragments, annotations, ports, and an optional
version gate. Gated-off files are skipped, not failed.

If no files are specified, renders every values file under manifests/.

Examples:
  # Render a single values file to stdout
  helmsman render manifests/api-server.yaml

  # Render the whole manifests directory
  helmsman render

  # Write manifests to an output directory
  helmsman render -o rendered/ manifests/*.yaml`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output directory (prints to stdout if not set)")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	files, err := valuesFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		ui.Yellow.Println("No values files found")
		return nil
	}

	failures := 0
	for _, path := range files {
		if err := renderFile(path, renderOutput); err != nil {
			ui.Error("%s: %v", path, err)
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) failed to render", failures)
	}
	return nil
}

func renderFile(path, outputDir string) error {
	values, err := manifest.LoadValues(path)
	if err != nil {
		return err
	}

	doc, err := manifest.Render(values)
	if err != nil {
		return err
	}
	if doc == nil {
		ui.Yellow.Printf("· %s gated off, skipping\n", path)
		return nil
	}

	out, err := manifest.RenderToYAML(doc)
	if err != nil {
		return err
	}

	if outputDir == "" {
		ui.Blue.Printf("--- %s ---\n", path)
		fmt.Print(out)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, filepath.Base(path))
	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	ui.Green.Printf("✓ %s → %s\n", path, outputPath)
	return nil
}

// valuesFiles resolves the files to process: explicit arguments, or the
// project's manifests directory when none are given.
func valuesFiles(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	files, err := cfg.ValuesFiles()
	if err != nil {
		return nil, fmt.Errorf("list values files: %w", err)
	}
	return files, nil
}
