package ios

const (
	InfoPlistName    = "Info.plist"
	ContentTypePlist = "application/xml"
)

// Info is the subset of an Info.plist that a Flutter
// build stamps from its build name and build number.
type Info struct {
	CFBundleIdentifier         string `plist:"CFBundleIdentifier,omitempty"`
	CFBundleShortVersionString string `plist:"CFBundleShortVersionString"`
	CFBundleVersion            string `plist:"CFBundleVersion"`
	MinimumOSVersion           string `plist:"MinimumOSVersion,omitempty"`
}
