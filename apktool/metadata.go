package apktool

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// MetadataName is the name of the file that `apktool decode`
// writes at the root of its output directory.
const MetadataName = "apktool.yml"

type UsesFramework struct {
	IDs []int `yaml:"ids"`
	Tag any   `yaml:"tag"`
}

type SDKInfo struct {
	MinSDKVersion    int `yaml:"minSdkVersion"`
	TargetSDKVersion int `yaml:"targetSdkVersion"`
}

type PackageInfo struct {
	ForcedPackageID       int `yaml:"forcedPackageId"`
	RenameManifestPackage any `yaml:"renameManifestPackage"`
}

type VersionInfo struct {
	VersionCode int    `yaml:"versionCode"`
	VersionName string `yaml:"versionName"`
}

// Metadata is the content of apktool.yml.
type Metadata struct {
	Version                string         `yaml:"version,omitempty"`
	APKFileName            string         `yaml:"apkFileName,omitempty"`
	IsFrameworkAPK         bool           `yaml:"isFrameworkApk,omitempty"`
	UsesFramework          *UsesFramework `yaml:"usesFramework,omitempty"`
	SDKInfo                *SDKInfo       `yaml:"sdkInfo,omitempty"`
	PackageInfo            *PackageInfo   `yaml:"packageInfo,omitempty"`
	VersionInfo            *VersionInfo   `yaml:"versionInfo,omitempty"`
	ResourcesAreCompressed bool           `yaml:"resourcesAreCompressed,omitempty"`
	SharedLibrary          bool           `yaml:"sharedLibrary,omitempty"`
	SparseResources        bool           `yaml:"sparseResources,omitempty"`
	UnknownFiles           map[string]int `yaml:"unknownFiles,omitempty"`
	DoNotCompress          []string       `yaml:"doNotCompress,omitempty"`
}

// DecodeMetadata reads apktool.yml from r. Older apktool versions prefix
// the document with a "!!brut.androlib.meta.MetaInfo" line which is
// dropped before decoding.
func DecodeMetadata(r io.Reader) (*Metadata, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if bytes.HasPrefix(b, []byte("!!")) {
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			b = b[i+1:]
		} else {
			b = nil
		}
	}

	metadata := &Metadata{}
	if err := yaml.Unmarshal(b, metadata); err != nil {
		return nil, fmt.Errorf("decode %s: %w", MetadataName, err)
	}

	if metadata.VersionInfo == nil {
		return nil, fmt.Errorf("%s has no versionInfo", MetadataName)
	}

	return metadata, nil
}
