package command

import (
	"fmt"
	"os"

	"github.com/frantjc/buildprops"
	"github.com/frantjc/buildprops/internal/buildblob"
	"github.com/frantjc/buildprops/internal/exitcode"
	"github.com/spf13/cobra"
	"gocloud.dev/blob"
)

func newResolve(flags *resolveFlags) *cobra.Command {
	var (
		format     string
		bloburlstr string
		cmd        = &cobra.Command{
			Use:  "resolve",
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				var (
					ctx = cmd.Context()
					log = buildprops.LoggerFrom(ctx)
				)

				f, err := buildprops.ParseFormat(format)
				if err != nil {
					return exitcode.Error(err, exitcode.Config)
				}

				descriptor, err := flags.resolve(ctx)
				if err != nil {
					return err
				}

				if bloburlstr == "" {
					return exitcode.Error(buildprops.Emit(cmd.OutOrStdout(), descriptor, f), exitcode.IO)
				}

				log.Info("opening bucket " + bloburlstr)
				bucket, err := blob.OpenBucket(ctx, bloburlstr)
				if err != nil {
					return exitcode.Error(err, exitcode.IO)
				}
				defer bucket.Close()

				id, err := buildblob.Write(ctx, bucket, descriptor)
				if err != nil {
					return exitcode.Error(err, exitcode.IO)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), id)
				return err
			},
		}
	)

	cmd.Flags().StringVarP(&format, "format", "o", buildprops.FormatYAML.String(), "output format, one of yaml, json, plist or properties")
	cmd.Flags().StringVar(&bloburlstr, "bucket", os.Getenv("BUILDPROPS_BUCKET"), "bucket URL to write every format to instead of stdout")

	return cmd
}
