package command

import (
	"encoding/json"
	"os"

	"github.com/frantjc/buildprops/internal/exitcode"
	"github.com/frantjc/buildprops/ios"
	"github.com/spf13/cobra"
)

func newAppleAppSiteAssociation(flags *resolveFlags) *cobra.Command {
	var (
		teamID string
		cmd    = &cobra.Command{
			Use:     "apple-app-site-association",
			Aliases: []string{"aasa"},
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				descriptor, err := flags.resolve(cmd.Context())
				if err != nil {
					return err
				}

				appID, err := ios.AppID(teamID, descriptor.ApplicationID)
				if err != nil {
					return exitcode.Error(err, exitcode.Config)
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return exitcode.Error(enc.Encode(ios.NewAppleAppSiteAssociation(appID)), exitcode.IO)
			},
		}
	)

	cmd.Flags().StringVar(&teamID, "team-id", os.Getenv("BUILDPROPS_TEAM_ID"), "Apple developer team ID")

	return cmd
}
