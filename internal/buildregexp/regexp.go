package buildregexp

import "regexp"

var (
	// ApplicationID matches an Android package name: at least two
	// dot-separated segments, each starting with a letter.
	ApplicationID = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)
	// VersionCode matches the integers Kotlin's String.toInt accepts.
	VersionCode = regexp.MustCompile(`^[+-]?[0-9]+$`)
	NDKVersion  = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

	Keystore = regexp.MustCompile(`(?i)^[\w/\\:.\- ]+\.(jks|keystore|p12|pfx|bks)$`)
	APK      = regexp.MustCompile(`(?i)^[\w/.-]+\.apk$`)
)
