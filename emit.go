package buildprops

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/frantjc/buildprops/ios"
	"github.com/frantjc/buildprops/properties"
	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

// Format is an encoding of a Descriptor understood by Emit.
type Format string

const (
	FormatYAML       Format = "yaml"
	FormatJSON       Format = "json"
	FormatPlist      Format = "plist"
	FormatProperties Format = "properties"
)

// Formats lists every Format in the order they are documented.
var Formats = []Format{FormatYAML, FormatJSON, FormatPlist, FormatProperties}

func (f Format) String() string {
	return string(f)
}

// ParseFormat returns the Format named by s, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}

	switch strings.ToLower(s) {
	case "yml":
		return FormatYAML, nil
	case "props":
		return FormatProperties, nil
	}

	return "", fmt.Errorf("unknown format %q", s)
}

// Ext returns the file extension used for f, without the leading dot.
func (f Format) Ext() string {
	return string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatJSON:
		return "application/json"
	case FormatPlist:
		return ios.ContentTypePlist
	default:
		return "text/plain; charset=utf-8"
	}
}

// Properties returns the keys of d that a Gradle build script can
// read back with java.util.Properties. Passwords are not included.
func (d *Descriptor) Properties() properties.Map {
	m := properties.Map{
		"applicationId":           d.ApplicationID,
		KeyVersionCode:            strconv.Itoa(d.VersionCode),
		KeyVersionName:            d.VersionName,
		KeyMinSDKVersion:          strconv.Itoa(d.SDK.MinSDKVersion),
		KeyTargetSDKVersion:       strconv.Itoa(d.SDK.TargetSDKVersion),
		KeyCompileSDKVersion:      strconv.Itoa(d.SDK.CompileSDKVersion),
		"sourceCompatibility":     d.Compatibility.SourceCompatibility.String(),
		"targetCompatibility":     d.Compatibility.TargetCompatibility.String(),
		"jvmTarget":               d.Compatibility.JVMTarget.String(),
		KeyKeyAlias:               d.Signing.KeyAlias,
		"release.minifyEnabled":   strconv.FormatBool(d.Release.MinifyEnabled),
		"release.shrinkResources": strconv.FormatBool(d.Release.ShrinkResources),
		"release.proguardFiles":   strings.Join(d.Release.ProguardFiles, ","),
	}

	if d.SDK.NDKVersion != "" {
		m[KeyNDKVersion] = d.SDK.NDKVersion
	}

	if d.Signing.HasStoreFile() {
		m[KeyStoreFile] = d.Signing.StoreFile
	}

	if d.FlutterSDK != "" {
		m[KeyFlutterSDK] = d.FlutterSDK
	}

	if d.AndroidSDK != "" {
		m[KeyAndroidSDK] = d.AndroidSDK
	}

	return m
}

// Info returns the Info.plist keys that carry the
// same build name and build number as d.
func (d *Descriptor) Info() *ios.Info {
	return &ios.Info{
		CFBundleIdentifier:         d.ApplicationID,
		CFBundleShortVersionString: d.VersionName,
		CFBundleVersion:            d.BuildNumber(),
	}
}

// Emit writes d to w in the given Format.
func Emit(w io.Writer, d *Descriptor, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatPlist:
		enc := plist.NewEncoderForFormat(w, plist.XMLFormat)
		enc.Indent("\t")
		return enc.Encode(d.Info())
	case FormatProperties:
		return properties.Encode(w, d.Properties())
	}

	return fmt.Errorf("unknown format %q", format)
}
