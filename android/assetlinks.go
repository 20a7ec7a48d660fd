package android

import "strings"

const (
	// AssetLinksPath is where a website serves its Digital Asset Links.
	AssetLinksPath = "/.well-known/assetlinks.json"

	RelationHandleAllURLs = "delegate_permission/common.handle_all_urls"
	NamespaceAndroidApp   = "android_app"
)

type AssetLink struct {
	Relation []string `json:"relation,omitempty"`
	Target   Target   `json:"target,omitempty"`
}

type Target struct {
	Namespace              string   `json:"namespace,omitempty"`
	PackageName            string   `json:"package_name,omitempty"`
	SHA256CertFingerprints []string `json:"sha256_cert_fingerprints,omitempty"`
}

// NewAssetLinks returns the assetlinks.json statements that let the app
// identified by packageName and signed by a certificate with one of
// sha256CertFingerprints handle the website's links.
func NewAssetLinks(packageName string, sha256CertFingerprints ...string) []AssetLink {
	fingerprints := make([]string, 0, len(sha256CertFingerprints))
	for _, fingerprint := range sha256CertFingerprints {
		if fingerprint = strings.ToUpper(strings.TrimSpace(fingerprint)); fingerprint != "" {
			fingerprints = append(fingerprints, fingerprint)
		}
	}

	return []AssetLink{
		{
			Relation: []string{RelationHandleAllURLs},
			Target: Target{
				Namespace:              NamespaceAndroidApp,
				PackageName:            packageName,
				SHA256CertFingerprints: fingerprints,
			},
		},
	}
}
