package android

import (
	"encoding/xml"
	"io"
)

const (
	AndroidManifestName = "AndroidManifest.xml"
	// Namespace is the XML namespace of android: attributes.
	Namespace = "http://schemas.android.com/apk/res/android"
)

type Manifest struct {
	XMLName        xml.Name                 `xml:"manifest"`
	UsesPermission []ManifestUsesPermission `xml:"uses-permission"`
	UsesFeature    []ManifestUsesFeature    `xml:"uses-feature"`
	Permission     []ManifestPermission     `xml:"permission"`
	Application    ManifestApplication      `xml:"application"`
	Attrs          []xml.Attr               `xml:",any,attr"`
}

// DecodeManifest reads an AndroidManifest.xml in its text form,
// as written by `apktool decode`.
func DecodeManifest(r io.Reader) (*Manifest, error) {
	manifest := &Manifest{}
	if err := xml.NewDecoder(r).Decode(manifest); err != nil {
		return nil, err
	}

	return manifest, nil
}

func attr(attrs []xml.Attr, space, local string) string {
	for _, attr := range attrs {
		if attr.Name.Space == space && attr.Name.Local == local {
			return attr.Value
		}
	}

	return ""
}

// Package returns the application ID the manifest was packaged with.
func (m *Manifest) Package() string {
	return attr(m.Attrs, "", "package")
}

// CompileSDKVersion returns android:compileSdkVersion, if set.
func (m *Manifest) CompileSDKVersion() string {
	return attr(m.Attrs, Namespace, "compileSdkVersion")
}

// Debuggable reports whether android:debuggable="true" is set
// on the application, which a release build must never be.
func (m *Manifest) Debuggable() bool {
	return attr(m.Application.Attrs, Namespace, "debuggable") == "true"
}

type ManifestUsesPermission struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type ManifestUsesFeature struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type ManifestPermission struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

type ManifestApplication struct {
	Activities      []ManifestApplicationActivity `xml:"activity"`
	ActivityAliases []ManifestApplicationActivity `xml:"activity-alias"`
	Receivers       []ManifestApplicationActivity `xml:"receiver"`
	Services        []ManifestApplicationActivity `xml:"service"`
	Providers       []ManifestApplicationActivity `xml:"providers"`
	UsesLibraries   []ManifestApplicationMetadata `xml:"uses-library"`
	Attrs           []xml.Attr                    `xml:",any,attr"`
}

type ManifestApplicationActivity struct {
	Metadata     ManifestApplicationMetadata     `xml:"metadata"`
	IntentFilter ManifestApplicationIntentFilter `xml:"intent-filter"`
	Attrs        []xml.Attr                      `xml:",any,attr"`
}

type ManifestApplicationIntentFilter struct {
	Actions    []ManifestApplicationMetadata `xml:"action"`
	Categories []ManifestApplicationMetadata `xml:"category"`
}

type ManifestApplicationMetadata struct {
	Attrs []xml.Attr `xml:",any,attr"`
}
