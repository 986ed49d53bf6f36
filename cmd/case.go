package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/textkit/internal/app"
	"github.com/oshokin/textkit/internal/strcase"
)

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	upperCmd = &cobra.Command{
		Use:   "upper [text...]",
		Short: "Convert text to uppercase",
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteUpperCommand(cmd.Context(), appConfig, args, caseOptionsFromFlags(cmd.Flags()))
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	lowerCmd = &cobra.Command{
		Use:   "lower [text...]",
		Short: "Convert text to lowercase",
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteLowerCommand(cmd.Context(), appConfig, args, caseOptionsFromFlags(cmd.Flags()))
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	for _, caseCmd := range []*cobra.Command{upperCmd, lowerCmd} {
		flags := caseCmd.Flags()

		flags.StringP(
			"file",
			"f",
			"",
			"read the input from this file instead of arguments or stdin.")

		flags.StringP(
			"output",
			"o",
			"",
			"write the result to this file instead of stdout.")

		flags.StringP(
			"mode",
			"m",
			"",
			"case mapping: '"+strcase.ModeASCIIString+"' (byte-wise) or '"+strcase.ModeUnicodeString+"'.")

		rootCmd.AddCommand(caseCmd)
	}
}

func caseOptionsFromFlags(flags *pflag.FlagSet) app.CaseOptions {
	var opts app.CaseOptions

	opts.InputFile, _ = flags.GetString("file")
	opts.OutputFile, _ = flags.GetString("output")

	return opts
}
