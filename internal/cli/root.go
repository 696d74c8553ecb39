package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Execute runs the httpmaker CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the root command so tests can exercise the CLI easily.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "httpmaker",
		Short:         "Generate HTTP request files in rest-client, HTTPie, or cURL syntax",
		Long:          "httpmaker renders HTTP requests as plain text, either from command-line arguments or from a Swagger/OpenAPI document. It never sends a request.",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Convert Cobra flag errors (like unknown flags) into friendly usage
	// errors that also show the command's help text.
	flagErr := func(c *cobra.Command, err error) error {
		return newUsageError(fmt.Sprintf("%v\n\n%s", err, c.UsageString()))
	}
	cmd.SetFlagErrorFunc(flagErr)

	cmd.PersistentFlags().StringP("config", "c", "", "Config file path (YAML or JSON)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	r := newRequestCmd()
	r.SetFlagErrorFunc(flagErr)
	cmd.AddCommand(r)

	cv := newConvertCmd()
	cv.SetFlagErrorFunc(flagErr)
	cmd.AddCommand(cv)

	return cmd
}
