package command

import (
	"context"
	"fmt"

	"github.com/frantjc/buildprops"
	"github.com/frantjc/buildprops/internal/exitcode"
	"github.com/frantjc/buildprops/keytool"
	"github.com/spf13/cobra"
)

func newFingerprint(flags *resolveFlags) *cobra.Command {
	return &cobra.Command{
		Use:  "fingerprint",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			descriptor, err := flags.resolve(ctx)
			if err != nil {
				return err
			}

			fingerprint, err := flags.keystoreFingerprint(ctx, descriptor)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), fingerprint)
			return err
		},
	}
}

func (f *resolveFlags) keystoreFingerprint(ctx context.Context, descriptor *buildprops.Descriptor) (string, error) {
	if !descriptor.Signing.HasStoreFile() {
		return "", exitcode.Error(fmt.Errorf("%s not found in %s", buildprops.KeyStoreFile, buildprops.KeyPropertiesName), exitcode.Config)
	}

	buildprops.LoggerFrom(ctx).V(1).Info("reading keystore fingerprint", "storeFile", descriptor.Signing.StoreFile, "keyAlias", descriptor.Signing.KeyAlias)

	fingerprint, err := keytool.Command(f.keytool).KeystoreSHA256Fingerprint(ctx, &keytool.KeystoreOpts{
		Keystore:      descriptor.Signing.StoreFile,
		Alias:         descriptor.Signing.KeyAlias,
		StorePassword: descriptor.Signing.StorePassword,
	})
	if err != nil {
		return "", exitcode.Error(err, exitcode.Tool)
	}

	return fingerprint, nil
}
