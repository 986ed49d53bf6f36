package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/textkit/internal/app"
	"github.com/oshokin/textkit/internal/config"
	"github.com/oshokin/textkit/internal/version"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	configInitCmd = &cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to a YAML file",
		Long: fmt.Sprintf(`Write the effective configuration (file values plus flag overrides)
to a YAML file. The default path is '%s'. An existing file is overwritten.

A configuration file that cannot be loaded is ignored and defaults are
written instead, so a broken file can be regenerated.`,
			config.DefaultConfigFilename),
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{ignoreConfigErrorsAnnotation: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			var path string
			if len(args) > 0 {
				path = args[0]
			}

			app.ExecuteConfigInitCommand(cmd.Context(), appConfig, path)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd, versionCmd)
}
