package buildprops

import "slices"

const (
	// LocalPropertiesName holds the version keys and SDK locations.
	LocalPropertiesName = "local.properties"
	// KeyPropertiesName holds the release signing credentials.
	// It is optional.
	KeyPropertiesName = "key.properties"
)

const (
	KeyVersionCode       = "flutter.versionCode"
	KeyVersionName       = "flutter.versionName"
	KeyMinSDKVersion     = "flutter.minSdkVersion"
	KeyTargetSDKVersion  = "flutter.targetSdkVersion"
	KeyCompileSDKVersion = "flutter.compileSdkVersion"
	KeyNDKVersion        = "flutter.ndkVersion"
	KeyFlutterSDK        = "flutter.sdk"
	KeyAndroidSDK        = "sdk.dir"

	KeyKeyAlias      = "keyAlias"
	KeyKeyPassword   = "keyPassword"
	KeyStoreFile     = "storeFile"
	KeyStorePassword = "storePassword"
)

const (
	// DefaultApplicationID is used when no application ID is given.
	DefaultApplicationID = "com.digimob.kalo_app"
	// MaxVersionCode is the largest version code Google Play accepts
	// for upload. Larger codes still resolve.
	MaxVersionCode = 2100000000
)

// DefaultSigningIdentity is used for every signing key
// that key.properties does not set.
var DefaultSigningIdentity = SigningIdentity{
	KeyAlias:      "upload",
	KeyPassword:   "",
	StoreFile:     "",
	StorePassword: "",
}

// DefaultSDK mirrors the levels the Flutter Gradle plugin supplies.
var DefaultSDK = SDK{
	MinSDKVersion:     21,
	TargetSDKVersion:  35,
	CompileSDKVersion: 35,
	NDKVersion:        "27.0.12077973",
}

var DefaultCompatibility = Compatibility{
	SourceCompatibility: JavaVersion1_8,
	TargetCompatibility: JavaVersion1_8,
	JVMTarget:           JavaVersion1_8,
}

// DefaultRelease leaves minification and resource shrinking disabled.
var DefaultRelease = BuildType{
	Name:            "release",
	SigningConfig:   "release",
	MinifyEnabled:   false,
	ShrinkResources: false,
	ProguardFiles:   []string{"proguard-android.txt", "proguard-rules.pro"},
}

// Defaults are the framework-supplied values that Resolve
// applies where the property files are silent.
type Defaults struct {
	ApplicationID string
	// ProjectDir is the directory a relative storeFile is
	// resolved against, i.e. the Android app module.
	ProjectDir    string
	SDK           SDK
	Compatibility Compatibility
	Signing       SigningIdentity
	Release       BuildType
}

// NewDefaults returns Defaults populated from the Default* values.
func NewDefaults() *Defaults {
	return &Defaults{
		ApplicationID: DefaultApplicationID,
		SDK:           DefaultSDK,
		Compatibility: DefaultCompatibility,
		Signing:       DefaultSigningIdentity,
		Release:       cloneBuildType(DefaultRelease),
	}
}

func cloneBuildType(bt BuildType) BuildType {
	bt.ProguardFiles = slices.Clone(bt.ProguardFiles)
	return bt
}
