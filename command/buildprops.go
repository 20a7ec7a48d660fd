package command

import (
	"context"
	"os"
	"path/filepath"

	"github.com/frantjc/buildprops"
	"github.com/frantjc/buildprops/internal/buildregexp"
	"github.com/frantjc/buildprops/internal/exitcode"
	"github.com/frantjc/buildprops/properties"
	xslice "github.com/frantjc/x/slice"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewBuildprops returns the root command for
// buildprops which acts as its CLI entrypoint.
func NewBuildprops() *cobra.Command {
	var (
		flags = &resolveFlags{}
		cmd   = &cobra.Command{
			Use: "buildprops",
		}
	)

	flags.addFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newResolve(flags),
		newFingerprint(flags),
		newAssetLinks(flags),
		newAppleAppSiteAssociation(flags),
		newVerify(flags),
	)

	return cmd
}

// resolveFlags are shared by every subcommand that needs a Descriptor.
type resolveFlags struct {
	dir             string
	appDir          string
	localProperties string
	keyProperties   string
	applicationID   string
	javaVersion     string
	minify          bool
	shrinkResources bool
	keytool         string
}

func (f *resolveFlags) addFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&f.dir, "project-dir", "C", ".", "Gradle root project directory containing local.properties and key.properties")
	flags.StringVar(&f.appDir, "app-dir", "", "app module directory that a relative storeFile is resolved against (default <project-dir>/app)")
	flags.StringVar(&f.localProperties, "local", "", "path to local.properties (default <project-dir>/local.properties)")
	flags.StringVar(&f.keyProperties, "key", os.Getenv("BUILDPROPS_KEY_PROPERTIES"), "path to key.properties (default <project-dir>/key.properties)")
	flags.StringVar(&f.applicationID, "application-id", buildprops.DefaultApplicationID, "application ID of the app")
	flags.StringVar(&f.javaVersion, "java-version", buildprops.JavaVersion1_8.String(), "Java source, target and JVM target level")
	flags.BoolVar(&f.minify, "minify", buildprops.DefaultRelease.MinifyEnabled, "enable code minification for release")
	flags.BoolVar(&f.shrinkResources, "shrink-resources", buildprops.DefaultRelease.ShrinkResources, "enable resource shrinking for release")
	flags.StringVar(&f.keytool, "keytool", "keytool", "path to keytool")
}

func (f *resolveFlags) defaults() *buildprops.Defaults {
	var (
		defaults    = buildprops.NewDefaults()
		javaVersion = buildprops.JavaVersion(f.javaVersion)
	)

	defaults.ApplicationID = f.applicationID
	defaults.ProjectDir = xslice.Coalesce(f.appDir, filepath.Join(f.dir, "app"))
	defaults.Compatibility = buildprops.Compatibility{
		SourceCompatibility: javaVersion,
		TargetCompatibility: javaVersion,
		JVMTarget:           javaVersion,
	}
	defaults.Release.MinifyEnabled = f.minify
	defaults.Release.ShrinkResources = f.shrinkResources

	return defaults
}

// resolve runs load and resolve, attaching an exit code to any error.
func (f *resolveFlags) resolve(ctx context.Context) (*buildprops.Descriptor, error) {
	var (
		log       = buildprops.LoggerFrom(ctx)
		localName = xslice.Coalesce(f.localProperties, filepath.Join(f.dir, buildprops.LocalPropertiesName))
		keyName   = xslice.Coalesce(f.keyProperties, filepath.Join(f.dir, buildprops.KeyPropertiesName))
	)

	log.V(1).Info("loading version properties", "path", localName)
	version, err := properties.Load(localName)
	if err != nil {
		return nil, exitcode.Error(err, exitcode.IO)
	}

	log.V(1).Info("loading signing properties", "path", keyName)
	signing, err := properties.Load(keyName)
	if err != nil {
		return nil, exitcode.Error(err, exitcode.IO)
	}

	if len(signing) == 0 {
		log.V(1).Info("no signing properties, using default signing identity", "path", keyName, "keyAlias", buildprops.DefaultSigningIdentity.KeyAlias)
	}

	descriptor, err := buildprops.Resolve(version, signing, f.defaults())
	if err != nil {
		return nil, exitcode.Error(err, exitcode.Config)
	}

	if descriptor.Signing.HasStoreFile() && !buildregexp.IsKeystore(descriptor.Signing.StoreFile) {
		log.Info("storeFile does not look like a keystore", "storeFile", descriptor.Signing.StoreFile)
	}

	if descriptor.VersionCode > buildprops.MaxVersionCode {
		log.Info("versionCode is above what Google Play accepts", "versionCode", descriptor.VersionCode, "max", buildprops.MaxVersionCode)
	}

	if descriptor.SemVer() == "" {
		log.V(1).Info("versionName is not a semantic version", "versionName", descriptor.VersionName)
	}

	log.V(1).Info("resolved descriptor",
		"versionCode", descriptor.VersionCode,
		"versionName", descriptor.VersionName,
		"digest", descriptor.Digest().String(),
	)

	return descriptor, nil
}
