package command

import (
	"fmt"
	"os"

	"github.com/frantjc/buildprops"
	"github.com/frantjc/buildprops/android"
	"github.com/frantjc/buildprops/internal/buildregexp"
	"github.com/frantjc/buildprops/internal/exitcode"
	"github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"
)

func newVerify(flags *resolveFlags) *cobra.Command {
	var (
		apktool    string
		outputDir  string
		skipSigner bool
		cmd        = &cobra.Command{
			Use:  "verify APK",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					ctx  = cmd.Context()
					log  = buildprops.LoggerFrom(ctx)
					name = args[0]
				)

				if !buildregexp.IsAPK(name) {
					return exitcode.Error(fmt.Errorf("%s is not an .apk", name), exitcode.Config)
				}

				f, err := os.Open(name)
				if err != nil {
					return exitcode.Error(err, exitcode.IO)
				}

				dgst, err := digest.FromReader(f)
				_ = f.Close()
				if err != nil {
					return exitcode.Error(err, exitcode.IO)
				}

				log = log.WithValues("apk", name, "digest", dgst.String())
				log.Info("verifying apk")

				descriptor, err := flags.resolve(ctx)
				if err != nil {
					return err
				}

				opts := []android.APKDecoderOpt{
					android.WithAPKTool(apktool),
					android.WithKeytool(flags.keytool),
				}
				if outputDir != "" {
					opts = append(opts, android.WithDir(outputDir))
				}

				decoder := android.NewAPKDecoder(name, opts...)
				defer decoder.Close()

				metadata, err := decoder.Metadata(ctx)
				if err != nil {
					return exitcode.Error(err, exitcode.Tool)
				}

				manifest, err := decoder.Manifest(ctx)
				if err != nil {
					return exitcode.Error(err, exitcode.Tool)
				}

				if err = android.Verify(descriptor, metadata, manifest); err != nil {
					return exitcode.Error(err, exitcode.Failure)
				}

				if !skipSigner && descriptor.Signing.HasStoreFile() {
					want, err := flags.keystoreFingerprint(ctx, descriptor)
					if err != nil {
						return err
					}

					got, err := decoder.SHA256CertFingerprints(ctx)
					if err != nil {
						return exitcode.Error(err, exitcode.Tool)
					}

					if err = android.VerifySigner(want, got); err != nil {
						return exitcode.Error(err, exitcode.Failure)
					}
				}

				log.Info("apk matches descriptor", "versionCode", descriptor.VersionCode, "versionName", descriptor.VersionName)

				return nil
			},
		}
	)

	cmd.Flags().StringVar(&apktool, "apktool", "apktool", "path to apktool")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "keep the decoded apk in this directory instead of a temporary one")
	cmd.Flags().BoolVar(&skipSigner, "skip-signer", false, "do not compare the apk signer with the keystore")

	return cmd
}
