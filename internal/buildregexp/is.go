package buildregexp

func IsApplicationID(name string) bool {
	return ApplicationID.MatchString(name)
}

func IsVersionCode(code string) bool {
	return VersionCode.MatchString(code)
}

func IsNDKVersion(version string) bool {
	return NDKVersion.MatchString(version)
}

func IsKeystore(name string) bool {
	return Keystore.MatchString(name)
}

func IsAPK(name string) bool {
	return APK.MatchString(name)
}
