package buildprops

// Version and Prerelease are set at build time with
// -ldflags "-X github.com/frantjc/buildprops.Version=...".
var (
	Version    = "0.0.0"
	Prerelease = ""
)

// SemVer returns the semantic version of buildprops.
func SemVer() string {
	if Prerelease != "" {
		return Version + "-" + Prerelease
	}

	return Version
}
