package buildprops

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/frantjc/buildprops/internal/buildregexp"
	"github.com/frantjc/buildprops/properties"
	xslice "github.com/frantjc/x/slice"
)

// Resolve builds a Descriptor from the properties of local.properties
// (version) and key.properties (signing). It reads no files itself.
//
// flutter.versionCode and flutter.versionName are required; if either is
// missing the returned error matches ErrMissingRequiredKey and no Descriptor
// is returned. Signing keys that are absent take their value from defaults
// instead. A nil defaults means NewDefaults().
func Resolve(version, signing properties.Map, defaults *Defaults) (*Descriptor, error) {
	if defaults == nil {
		defaults = NewDefaults()
	}

	var errs []error

	versionCode, err := resolveVersionCode(version)
	if err != nil {
		errs = append(errs, err)
	}

	versionName, err := resolveVersionName(version)
	if err != nil {
		errs = append(errs, err)
	}

	sdk, err := resolveSDK(version, defaults.SDK)
	if err != nil {
		errs = append(errs, err)
	}

	applicationID := xslice.Coalesce(defaults.ApplicationID, DefaultApplicationID)
	if !buildregexp.IsApplicationID(applicationID) {
		errs = append(errs, &InvalidValueError{Key: "applicationId", Value: applicationID, Reason: "not a valid Android package name"})
	}

	compatibility, err := resolveCompatibility(defaults.Compatibility)
	if err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Descriptor{
		ApplicationID: applicationID,
		VersionCode:   versionCode,
		VersionName:   versionName,
		SDK:           sdk,
		Compatibility: compatibility,
		Signing:       resolveSigning(signing, defaults),
		Release:       resolveRelease(defaults.Release),
		FlutterSDK:    version[KeyFlutterSDK],
		AndroidSDK:    version[KeyAndroidSDK],
	}, nil
}

func resolveVersionCode(version properties.Map) (int, error) {
	raw, ok := version.Get(KeyVersionCode)
	if !ok {
		return 0, &MissingRequiredKeyError{Key: KeyVersionCode, Source: LocalPropertiesName}
	}

	return parsePositiveInt(KeyVersionCode, raw)
}

func resolveVersionName(version properties.Map) (string, error) {
	name, ok := version.Get(KeyVersionName)
	if !ok {
		return "", &MissingRequiredKeyError{Key: KeyVersionName, Source: LocalPropertiesName}
	}

	if strings.TrimSpace(name) == "" {
		return "", &InvalidValueError{Key: KeyVersionName, Value: name, Reason: "must not be empty"}
	}

	return name, nil
}

func parsePositiveInt(key, raw string) (int, error) {
	if !buildregexp.IsVersionCode(raw) {
		return 0, &InvalidValueError{Key: key, Value: raw, Reason: "not a positive integer"}
	}

	n, err := strconv.ParseInt(raw, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0, &InvalidValueError{Key: key, Value: raw, Reason: fmt.Sprintf("out of range, must be at most %d", math.MaxInt32)}
	} else if err != nil {
		return 0, &InvalidValueError{Key: key, Value: raw, Reason: err.Error()}
	}

	if n < 1 {
		return 0, &InvalidValueError{Key: key, Value: raw, Reason: "must be at least 1"}
	}

	return int(n), nil
}

func resolveSDK(version properties.Map, defaults SDK) (SDK, error) {
	var (
		sdk = SDK{
			MinSDKVersion:     xslice.Coalesce(defaults.MinSDKVersion, DefaultSDK.MinSDKVersion),
			TargetSDKVersion:  xslice.Coalesce(defaults.TargetSDKVersion, DefaultSDK.TargetSDKVersion),
			CompileSDKVersion: xslice.Coalesce(defaults.CompileSDKVersion, DefaultSDK.CompileSDKVersion),
			NDKVersion:        xslice.Coalesce(defaults.NDKVersion, DefaultSDK.NDKVersion),
		}
		errs []error
	)

	for _, level := range []struct {
		key string
		n   *int
	}{
		{KeyMinSDKVersion, &sdk.MinSDKVersion},
		{KeyTargetSDKVersion, &sdk.TargetSDKVersion},
		{KeyCompileSDKVersion, &sdk.CompileSDKVersion},
	} {
		if raw, ok := version.Get(level.key); ok {
			n, err := parsePositiveInt(level.key, raw)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			*level.n = n
		}
	}

	if raw, ok := version.Get(KeyNDKVersion); ok {
		if !buildregexp.IsNDKVersion(raw) {
			errs = append(errs, &InvalidValueError{Key: KeyNDKVersion, Value: raw, Reason: "not a dotted version"})
		} else {
			sdk.NDKVersion = raw
		}
	}

	if len(errs) > 0 {
		return SDK{}, errors.Join(errs...)
	}

	if sdk.MinSDKVersion > sdk.TargetSDKVersion {
		return SDK{}, &InvalidValueError{
			Key:    KeyMinSDKVersion,
			Value:  strconv.Itoa(sdk.MinSDKVersion),
			Reason: fmt.Sprintf("greater than target SDK version %d", sdk.TargetSDKVersion),
		}
	}

	if sdk.TargetSDKVersion > sdk.CompileSDKVersion {
		return SDK{}, &InvalidValueError{
			Key:    KeyTargetSDKVersion,
			Value:  strconv.Itoa(sdk.TargetSDKVersion),
			Reason: fmt.Sprintf("greater than compile SDK version %d", sdk.CompileSDKVersion),
		}
	}

	return sdk, nil
}

func resolveCompatibility(defaults Compatibility) (Compatibility, error) {
	compatibility := Compatibility{
		SourceCompatibility: xslice.Coalesce(defaults.SourceCompatibility, DefaultCompatibility.SourceCompatibility),
		TargetCompatibility: xslice.Coalesce(defaults.TargetCompatibility, DefaultCompatibility.TargetCompatibility),
		JVMTarget:           xslice.Coalesce(defaults.JVMTarget, DefaultCompatibility.JVMTarget),
	}

	var errs []error
	for _, v := range []struct {
		key     string
		version JavaVersion
	}{
		{"sourceCompatibility", compatibility.SourceCompatibility},
		{"targetCompatibility", compatibility.TargetCompatibility},
		{"jvmTarget", compatibility.JVMTarget},
	} {
		if !v.version.IsValid() {
			errs = append(errs, &InvalidValueError{Key: v.key, Value: v.version.String(), Reason: "unknown Java version"})
		}
	}

	if len(errs) > 0 {
		return Compatibility{}, errors.Join(errs...)
	}

	return compatibility, nil
}

// resolveSigning never fails: a key that key.properties does not set,
// including when key.properties does not exist at all, falls back to its
// default.
func resolveSigning(signing properties.Map, defaults *Defaults) SigningIdentity {
	var (
		fallback = SigningIdentity{
			KeyAlias:      xslice.Coalesce(defaults.Signing.KeyAlias, DefaultSigningIdentity.KeyAlias),
			KeyPassword:   defaults.Signing.KeyPassword,
			StoreFile:     defaults.Signing.StoreFile,
			StorePassword: defaults.Signing.StorePassword,
		}
		lookup = func(key, def string) string {
			if v, ok := signing.Get(key); ok {
				return v
			}
			return def
		}
		identity = SigningIdentity{
			KeyAlias:      lookup(KeyKeyAlias, fallback.KeyAlias),
			KeyPassword:   lookup(KeyKeyPassword, fallback.KeyPassword),
			StoreFile:     lookup(KeyStoreFile, fallback.StoreFile),
			StorePassword: lookup(KeyStorePassword, fallback.StorePassword),
		}
	)

	if identity.StoreFile != "" && !filepath.IsAbs(identity.StoreFile) && defaults.ProjectDir != "" {
		identity.StoreFile = filepath.Join(defaults.ProjectDir, identity.StoreFile)
	}

	return identity
}

func resolveRelease(defaults BuildType) BuildType {
	release := cloneBuildType(defaults)
	release.Name = xslice.Coalesce(release.Name, DefaultRelease.Name)
	release.SigningConfig = xslice.Coalesce(release.SigningConfig, DefaultRelease.SigningConfig)
	if release.ProguardFiles == nil {
		release.ProguardFiles = slices.Clone(DefaultRelease.ProguardFiles)
	}
	return release
}
