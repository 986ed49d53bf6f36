package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/textkit/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	readCmd = &cobra.Command{
		Use:   "read <path>",
		Short: "Print the whole content of a file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteReadCommand(cmd.Context(), appConfig, args[0])
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	writeCmd = &cobra.Command{
		Use:   "write <path> [content...]",
		Short: "Replace the content of a file",
		Long: `Replace the content of a file, creating it if needed.

The content is the remaining arguments joined with spaces. When no content
arguments are given, stdin is written instead. Missing parent directories
are not created.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteWriteCommand(cmd.Context(), appConfig, args[0], args[1:])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(readCmd, writeCmd)
}
