// Package cmd provides the CLI commands for helmsman.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "helmsman",
	Short: "Chart-style Service manifests without the chart",
	Long: `helmsman - chart-style Service manifests without the chart

Renders Kubernetes-style Service manifests from plain values files:
version-gated emission, merged label fragments, recursive template
expansion, and ordered port projection.

RENDER COMMANDS
  render [values...]    Render values files to Service manifests
    --output, -o <dir>  Write one manifest per values file instead of stdout
  lint [values...]      Validate values files without rendering output

MAINTENANCE
  update                Update helmsman to the latest release
    --check             Check for updates without installing`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("helmsman version {{.Version}}\n")
}
