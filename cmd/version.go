package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/resume-import/internal/extract"
	"github.com/spigell/resume-import/internal/importer"
)

// Actual version can be specified in build command.
var version = "unknown"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and the supported input formats",
	Run: func(cmd *cobra.Command, _ []string) {
		formats := append(extract.NewRegistry().Formats(), importer.FormatJSON)
		slices.Sort(formats)

		fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
		fmt.Fprintf(cmd.OutOrStdout(), "input formats: %s\n", strings.Join(formats, ", "))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
