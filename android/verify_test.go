package android_test

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/frantjc/buildprops"
	"github.com/frantjc/buildprops/android"
	"github.com/frantjc/buildprops/apktool"
	"github.com/frantjc/buildprops/properties"
	"github.com/google/go-cmp/cmp"
)

var (
	//go:embed AndroidManifest.test.xml
	manifestData []byte
)

func newDescriptor(t *testing.T) *buildprops.Descriptor {
	t.Helper()

	descriptor, err := buildprops.Resolve(
		properties.Map{buildprops.KeyVersionCode: "42", buildprops.KeyVersionName: "1.2.3"},
		nil,
		nil,
	)
	if err != nil {
		t.Fatal(err)
	}

	return descriptor
}

func TestVerify(t *testing.T) {
	descriptor := newDescriptor(t)

	manifest, err := android.DecodeManifest(bytes.NewReader(manifestData))
	if err != nil {
		t.Fatal(err)
	}

	if err := android.Verify(descriptor, descriptor.Metadata(), manifest); err != nil {
		t.Errorf("expected no mismatches, got %v", err)
	}
}

func TestVerifyMismatch(t *testing.T) {
	descriptor := newDescriptor(t)

	metadata := &apktool.Metadata{
		SDKInfo: &apktool.SDKInfo{
			MinSDKVersion:    descriptor.SDK.MinSDKVersion,
			TargetSDKVersion: 34,
		},
		VersionInfo: &apktool.VersionInfo{
			VersionCode: 41,
			VersionName: "1.2.3",
		},
	}

	err := android.Verify(descriptor, metadata, &android.Manifest{})
	if err == nil {
		t.Fatal("expected error")
	}

	for _, field := range []string{"versionCode", "targetSdkVersion", "package"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected %s mismatch in %v", field, err)
		}
	}

	for _, field := range []string{"versionName", "minSdkVersion"} {
		if strings.Contains(err.Error(), field) {
			t.Errorf("did not expect %s mismatch in %v", field, err)
		}
	}
}

func TestVerifyMissingMetadata(t *testing.T) {
	if err := android.Verify(newDescriptor(t), &apktool.Metadata{}, nil); err == nil {
		t.Error("expected error")
	}

	if err := android.Verify(newDescriptor(t), nil, nil); err == nil {
		t.Error("expected error for nil metadata")
	}
}

func TestVerifyCompileSDKVersion(t *testing.T) {
	descriptor := newDescriptor(t)

	manifest, err := android.DecodeManifest(bytes.NewReader(
		bytes.Replace(manifestData, []byte(`android:compileSdkVersion="35"`), []byte(`android:compileSdkVersion="34"`), 1),
	))
	if err != nil {
		t.Fatal(err)
	}

	err = android.Verify(descriptor, descriptor.Metadata(), manifest)
	if err == nil || !strings.Contains(err.Error(), "compileSdkVersion") {
		t.Errorf("expected compileSdkVersion mismatch, got %v", err)
	}

	manifest.Attrs = []xml.Attr{{Name: xml.Name{Local: "package"}, Value: descriptor.ApplicationID}}

	if err := android.Verify(descriptor, descriptor.Metadata(), manifest); err != nil {
		t.Errorf("expected a manifest without compileSdkVersion to pass, got %v", err)
	}
}

func TestVerifySigner(t *testing.T) {
	if err := android.VerifySigner("14:6D:E9", "14:6d:e9\n"); err != nil {
		t.Error(err)
	}

	if err := android.VerifySigner("14:6D:E9", "AA:BB:CC"); err == nil {
		t.Error("expected error")
	}
}

func TestNewAssetLinks(t *testing.T) {
	b, err := json.Marshal(android.NewAssetLinks("com.digimob.kalo_app", "14:6d:e9", ""))
	if err != nil {
		t.Fatal(err)
	}

	var got []map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}

	want := []map[string]any{
		{
			"relation": []any{"delegate_permission/common.handle_all_urls"},
			"target": map[string]any{
				"namespace":                "android_app",
				"package_name":             "com.digimob.kalo_app",
				"sha256_cert_fingerprints": []any{"14:6D:E9"},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected assetlinks.json (-want +got):\n%s", diff)
	}
}
