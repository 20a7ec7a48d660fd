package android

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/frantjc/buildprops"
	"github.com/frantjc/buildprops/apktool"
)

// Verify reports every way in which an .apk, described by its decoded
// metadata and manifest, differs from what descriptor says it was built
// from. manifest may be nil, in which case only metadata is checked.
func Verify(descriptor *buildprops.Descriptor, metadata *apktool.Metadata, manifest *Manifest) error {
	if descriptor == nil {
		return fmt.Errorf("descriptor is required")
	} else if metadata == nil {
		return fmt.Errorf("%s is required", apktool.MetadataName)
	}

	var (
		want = descriptor.Metadata()
		errs []error
	)

	if metadata.VersionInfo == nil {
		errs = append(errs, fmt.Errorf("versionInfo missing from %s", apktool.MetadataName))
	} else {
		if got := metadata.VersionInfo.VersionCode; got != want.VersionInfo.VersionCode {
			errs = append(errs, fmt.Errorf("versionCode: expected %d, got %d", want.VersionInfo.VersionCode, got))
		}

		if got := metadata.VersionInfo.VersionName; got != want.VersionInfo.VersionName {
			errs = append(errs, fmt.Errorf("versionName: expected %s, got %s", want.VersionInfo.VersionName, got))
		}
	}

	if metadata.SDKInfo == nil {
		errs = append(errs, fmt.Errorf("sdkInfo missing from %s", apktool.MetadataName))
	} else {
		if got := metadata.SDKInfo.MinSDKVersion; got != want.SDKInfo.MinSDKVersion {
			errs = append(errs, fmt.Errorf("minSdkVersion: expected %d, got %d", want.SDKInfo.MinSDKVersion, got))
		}

		if got := metadata.SDKInfo.TargetSDKVersion; got != want.SDKInfo.TargetSDKVersion {
			errs = append(errs, fmt.Errorf("targetSdkVersion: expected %d, got %d", want.SDKInfo.TargetSDKVersion, got))
		}
	}

	if manifest != nil {
		if got := manifest.Package(); got != descriptor.ApplicationID {
			errs = append(errs, fmt.Errorf("package: expected %s, got %s", descriptor.ApplicationID, got))
		}

		if raw := manifest.CompileSDKVersion(); raw != "" {
			if got, err := strconv.Atoi(raw); err != nil || got != descriptor.SDK.CompileSDKVersion {
				errs = append(errs, fmt.Errorf("compileSdkVersion: expected %d, got %s", descriptor.SDK.CompileSDKVersion, raw))
			}
		}

		if manifest.Debuggable() {
			errs = append(errs, fmt.Errorf("%s is debuggable", descriptor.Release.Name))
		}
	}

	return errors.Join(errs...)
}

// VerifySigner reports whether an .apk signed by a certificate with the
// fingerprint got was signed with the keystore fingerprint want.
func VerifySigner(want, got string) error {
	if !strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(got)) {
		return fmt.Errorf("signer: expected %s, got %s", want, got)
	}

	return nil
}
