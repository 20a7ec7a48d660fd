package apktool

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Decode finds `apktool` on the PATH and runs Decode against it.
// See Command.Decode.
func Decode(ctx context.Context, name string, opts *DecodeOpts) error {
	return Command("apktool").Decode(ctx, name, opts)
}

// Command represents the path to an `apktool` executable.
type Command string

func (c Command) String() string {
	return string(c)
}

// DecodeOpts represent flags that can be passed to `apktool decode`.
type DecodeOpts struct {
	Force           bool
	NoResources     bool
	NoSources       bool
	OutputDirectory string
}

func (o *DecodeOpts) args() []string {
	args := []string{"decode"}

	if o == nil {
		return args
	}

	if o.Force {
		args = append(args, "--force")
	}

	if o.NoResources {
		args = append(args, "--no-res")
	}

	if o.NoSources {
		args = append(args, "--no-src")
	}

	if o.OutputDirectory != "" {
		args = append(args, "--output", o.OutputDirectory)
	}

	return args
}

// Decode executes a command against `apktool` found at Command.
// It runs `apktool decode` against the .apk at name with flags
// derived from the given DecodeOpts.
func (c Command) Decode(ctx context.Context, name string, opts *DecodeOpts) error {
	var (
		stderr = new(bytes.Buffer)
		//nolint:gosec
		cmd = exec.CommandContext(ctx, c.String(), append(opts.args(), name)...)
	)

	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s decode %s: %w: %s", c, name, err, msg)
		}

		return fmt.Errorf("%s decode %s: %w", c, name, err)
	}

	return nil
}
