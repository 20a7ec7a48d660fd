package ios

import (
	"fmt"
	"strings"
)

// AppleAppSiteAssociationPath is where a website serves the
// associated domains of the apps allowed to open its links.
const AppleAppSiteAssociationPath = "/.well-known/apple-app-site-association"

type AppleAppSiteAssociation struct {
	AppLinks       AppLinks       `json:"applinks"`
	WebCredentials WebCredentials `json:"webcredentials"`
}

type AppLinks struct {
	Details []Details `json:"details,omitempty"`
}

type Details struct {
	AppIDs     []string    `json:"appIDs,omitempty"`
	Components []Component `json:"components,omitempty"`
}

type Component struct {
	Path    string `json:"/,omitempty"`
	Exclude bool   `json:"exclude,omitempty"`
	Comment string `json:"comment,omitempty"`
}

type WebCredentials struct {
	Apps []string `json:"apps,omitempty"`
}

// AppID joins an Apple developer team ID and
// a bundle identifier into an application identifier.
func AppID(teamID, bundleID string) (string, error) {
	teamID = strings.ToUpper(strings.TrimSpace(teamID))
	if len(teamID) != 10 {
		return "", fmt.Errorf("team ID %q must be 10 characters", teamID)
	}

	if bundleID == "" {
		return "", fmt.Errorf("bundle ID is required")
	}

	return teamID + "." + bundleID, nil
}

// NewAppleAppSiteAssociation returns an apple-app-site-association
// document that lets appID open every path of the website and
// use its shared web credentials.
func NewAppleAppSiteAssociation(appID string) *AppleAppSiteAssociation {
	return &AppleAppSiteAssociation{
		AppLinks: AppLinks{
			Details: []Details{
				{
					AppIDs:     []string{appID},
					Components: []Component{{Path: "*"}},
				},
			},
		},
		WebCredentials: WebCredentials{
			Apps: []string{appID},
		},
	}
}
