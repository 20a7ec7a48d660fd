package buildprops

import (
	"encoding/json"
	"strconv"

	"github.com/frantjc/buildprops/apktool"
	xstrings "github.com/frantjc/x/strings"
	"github.com/opencontainers/go-digest"
	"golang.org/x/mod/semver"
)

// JavaVersion is a Java language level as accepted by
// sourceCompatibility, targetCompatibility and jvmTarget.
type JavaVersion string

const (
	JavaVersion1_8 JavaVersion = "1.8"
	JavaVersion11  JavaVersion = "11"
	JavaVersion17  JavaVersion = "17"
	JavaVersion21  JavaVersion = "21"
)

func (v JavaVersion) String() string {
	return string(v)
}

// IsValid reports whether v is one of the known JavaVersions.
func (v JavaVersion) IsValid() bool {
	switch v {
	case JavaVersion1_8, JavaVersion11, JavaVersion17, JavaVersion21:
		return true
	}
	return false
}

type SDK struct {
	MinSDKVersion     int    `json:"minSdkVersion" yaml:"minSdkVersion"`
	TargetSDKVersion  int    `json:"targetSdkVersion" yaml:"targetSdkVersion"`
	CompileSDKVersion int    `json:"compileSdkVersion" yaml:"compileSdkVersion"`
	NDKVersion        string `json:"ndkVersion,omitempty" yaml:"ndkVersion,omitempty"`
}

type Compatibility struct {
	SourceCompatibility JavaVersion `json:"sourceCompatibility" yaml:"sourceCompatibility"`
	TargetCompatibility JavaVersion `json:"targetCompatibility" yaml:"targetCompatibility"`
	JVMTarget           JavaVersion `json:"jvmTarget" yaml:"jvmTarget"`
}

// SigningIdentity holds the credentials used to sign a release.
// Passwords are never serialized.
type SigningIdentity struct {
	KeyAlias      string `json:"keyAlias" yaml:"keyAlias"`
	KeyPassword   string `json:"-" yaml:"-"`
	StoreFile     string `json:"storeFile,omitempty" yaml:"storeFile,omitempty"`
	StorePassword string `json:"-" yaml:"-"`
}

// HasStoreFile reports whether a keystore was configured.
// Without one the release build is left unsigned.
func (s SigningIdentity) HasStoreFile() bool {
	return s.StoreFile != ""
}

type BuildType struct {
	Name            string   `json:"name" yaml:"name"`
	SigningConfig   string   `json:"signingConfig" yaml:"signingConfig"`
	MinifyEnabled   bool     `json:"minifyEnabled" yaml:"minifyEnabled"`
	ShrinkResources bool     `json:"shrinkResources" yaml:"shrinkResources"`
	ProguardFiles   []string `json:"proguardFiles,omitempty" yaml:"proguardFiles,omitempty"`
}

// Descriptor is the resolved, validated build configuration handed to
// the packaging stage. It is created once by Resolve and must not be
// modified afterwards.
type Descriptor struct {
	ApplicationID string          `json:"applicationId" yaml:"applicationId"`
	VersionCode   int             `json:"versionCode" yaml:"versionCode"`
	VersionName   string          `json:"versionName" yaml:"versionName"`
	SDK           SDK             `json:"sdk" yaml:"sdk"`
	Compatibility Compatibility   `json:"compatibility" yaml:"compatibility"`
	Signing       SigningIdentity `json:"signing" yaml:"signing"`
	Release       BuildType       `json:"release" yaml:"release"`
	FlutterSDK    string          `json:"flutterSdk,omitempty" yaml:"flutterSdk,omitempty"`
	AndroidSDK    string          `json:"androidSdk,omitempty" yaml:"androidSdk,omitempty"`
}

// SemVer returns the canonical semantic version of the version name,
// e.g. "v1.2.3", or "" if the version name is not a semantic version.
func (d *Descriptor) SemVer() string {
	return semver.Canonical(xstrings.EnsurePrefix(d.VersionName, "v"))
}

// BuildNumber returns the version code as Flutter's --build-number.
func (d *Descriptor) BuildNumber() string {
	return strconv.Itoa(d.VersionCode)
}

// Digest returns the content digest of the serialized descriptor.
// Passwords do not contribute to it.
func (d *Descriptor) Digest() digest.Digest {
	b, err := json.Marshal(d)
	if err != nil {
		return ""
	}

	return digest.FromBytes(b)
}

// Metadata returns the apktool.yml metadata that an APK
// built from d is expected to decode to.
func (d *Descriptor) Metadata() *apktool.Metadata {
	return &apktool.Metadata{
		SDKInfo: &apktool.SDKInfo{
			MinSDKVersion:    d.SDK.MinSDKVersion,
			TargetSDKVersion: d.SDK.TargetSDKVersion,
		},
		VersionInfo: &apktool.VersionInfo{
			VersionCode: d.VersionCode,
			VersionName: d.VersionName,
		},
	}
}
