package command

import (
	"encoding/json"

	"github.com/frantjc/buildprops/android"
	"github.com/frantjc/buildprops/internal/exitcode"
	"github.com/spf13/cobra"
)

func newAssetLinks(flags *resolveFlags) *cobra.Command {
	var (
		fingerprints []string
		cmd          = &cobra.Command{
			Use:  "assetlinks",
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()

				descriptor, err := flags.resolve(ctx)
				if err != nil {
					return err
				}

				if len(fingerprints) == 0 {
					fingerprint, err := flags.keystoreFingerprint(ctx, descriptor)
					if err != nil {
						return err
					}

					fingerprints = append(fingerprints, fingerprint)
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return exitcode.Error(
					enc.Encode(android.NewAssetLinks(descriptor.ApplicationID, fingerprints...)),
					exitcode.IO,
				)
			},
		}
	)

	cmd.Flags().StringArrayVar(&fingerprints, "sha256", nil, "SHA-256 certificate fingerprint to use instead of reading the keystore")

	return cmd
}
