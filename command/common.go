package command

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/frantjc/buildprops"
	xslice "github.com/frantjc/x/slice"
	"github.com/spf13/cobra"
)

// SetCommon wires verbosity, logging and version
// output into cmd and returns it.
func SetCommon(cmd *cobra.Command, version string) *cobra.Command {
	var verbosity int
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "V", fmt.Sprintf("Verbosity for %s.", cmd.Name()))
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose := os.Getenv("BUILDPROPS_VERBOSE"); verbose != "" && xslice.Some([]string{"1", "y", "yes", "true", "t"}, func(s string, _ int) bool {
			return strings.EqualFold(s, verbose)
		}) {
			verbosity = max(verbosity, 2)
		}

		// Logs go to stderr so that stdout carries only the descriptor.
		cmd.SetContext(
			buildprops.WithLogger(
				cmd.Context(), buildprops.NewLogger(cmd.ErrOrStderr(), verbosity),
			),
		)
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.Version = version
	cmd.SetVersionTemplate("{{ .Name }}{{ .Version }} " + runtime.Version() + "\n")

	return cmd
}
