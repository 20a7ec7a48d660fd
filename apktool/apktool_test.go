package apktool

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeOptsArgs(t *testing.T) {
	var nilOpts *DecodeOpts
	if diff := cmp.Diff([]string{"decode"}, nilOpts.args()); diff != "" {
		t.Errorf("unexpected args (-want +got):\n%s", diff)
	}

	opts := &DecodeOpts{Force: true, NoSources: true, OutputDirectory: "/tmp/out"}
	if diff := cmp.Diff([]string{"decode", "--force", "--no-src", "--output", "/tmp/out"}, opts.args()); diff != "" {
		t.Errorf("unexpected args (-want +got):\n%s", diff)
	}
}

func TestDecodeMetadata(t *testing.T) {
	metadata, err := DecodeMetadata(strings.NewReader(`version: 2.9.3
apkFileName: app-release.apk
isFrameworkApk: false
usesFramework:
  ids:
  - 1
  tag: null
sdkInfo:
  minSdkVersion: 21
  targetSdkVersion: 35
packageInfo:
  forcedPackageId: 127
  renameManifestPackage: null
versionInfo:
  versionCode: 42
  versionName: 1.2.3
resourcesAreCompressed: false
sharedLibrary: false
sparseResources: false
doNotCompress:
- resources.arsc
`))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(&VersionInfo{VersionCode: 42, VersionName: "1.2.3"}, metadata.VersionInfo); diff != "" {
		t.Errorf("unexpected versionInfo (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(&SDKInfo{MinSDKVersion: 21, TargetSDKVersion: 35}, metadata.SDKInfo); diff != "" {
		t.Errorf("unexpected sdkInfo (-want +got):\n%s", diff)
	}
}

func TestDecodeMetadataWithoutVersionInfo(t *testing.T) {
	if _, err := DecodeMetadata(strings.NewReader("version: 2.9.3\n")); err == nil {
		t.Error("expected error")
	}
}

func TestDecodeMetadataWithTag(t *testing.T) {
	metadata, err := DecodeMetadata(strings.NewReader("!!brut.androlib.meta.MetaInfo\nversionInfo:\n  versionCode: 7\n  versionName: 0.1.0\n"))
	if err != nil {
		t.Fatal(err)
	}

	if metadata.VersionInfo.VersionCode != 7 {
		t.Errorf("expected versionCode 7, got %d", metadata.VersionInfo.VersionCode)
	}
}
