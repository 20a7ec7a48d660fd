package keytool

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// SHA256CertFingerprints finds `keytool` on the PATH and runs
// SHA256CertFingerprints against it. See Command.SHA256CertFingerprints.
func SHA256CertFingerprints(ctx context.Context, name string) (string, error) {
	return Command("keytool").SHA256CertFingerprints(ctx, name)
}

// KeystoreSHA256Fingerprint finds `keytool` on the PATH and runs
// KeystoreSHA256Fingerprint against it. See Command.KeystoreSHA256Fingerprint.
func KeystoreSHA256Fingerprint(ctx context.Context, opts *KeystoreOpts) (string, error) {
	return Command("keytool").KeystoreSHA256Fingerprint(ctx, opts)
}

// Command represents the path to an `keytool` executable.
type Command string

func (c Command) String() string {
	return string(c)
}

// SHA256CertFingerprints returns the SHA-256 fingerprint of the
// certificate that signed the .apk or .jar at name.
func (c Command) SHA256CertFingerprints(ctx context.Context, name string) (string, error) {
	//nolint:gosec
	cmd := exec.CommandContext(ctx, c.String(), "-printcert", "-jarfile", name)

	return c.run(cmd)
}

// storePassEnv is the environment variable that carries the keystore
// password to `keytool` so that it does not appear in its arguments.
const storePassEnv = "BUILDPROPS_KEYTOOL_STOREPASS"

// KeystoreOpts identify a key entry in a keystore.
type KeystoreOpts struct {
	Keystore      string
	Alias         string
	StorePassword string
}

// KeystoreSHA256Fingerprint returns the SHA-256 fingerprint of the
// certificate of the key entry identified by opts.
func (c Command) KeystoreSHA256Fingerprint(ctx context.Context, opts *KeystoreOpts) (string, error) {
	if opts == nil || opts.Keystore == "" {
		return "", fmt.Errorf("keystore is required")
	}

	args := []string{"-list", "-v", "-keystore", opts.Keystore, "-storepass:env", storePassEnv}

	if opts.Alias != "" {
		args = append(args, "-alias", opts.Alias)
	}

	//nolint:gosec
	cmd := exec.CommandContext(ctx, c.String(), args...)
	cmd.Env = append(os.Environ(), storePassEnv+"="+opts.StorePassword)

	return c.run(cmd)
}

func (c Command) run(cmd *exec.Cmd) (string, error) {
	var (
		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
	)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String() + stdout.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", c, err, msg)
		}

		return "", fmt.Errorf("%s: %w", c, err)
	}

	return ParseSHA256(stdout)
}

// ParseSHA256 returns the first SHA-256 certificate
// fingerprint printed in `keytool` output.
func ParseSHA256(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.Contains(line, "SHA256: ") {
			if fields := strings.Fields(line); len(fields) >= 2 {
				return fields[len(fields)-1], nil
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("sha256 cert fingerprints not found")
}
