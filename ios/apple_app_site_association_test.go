package ios_test

import (
	"encoding/json"
	"testing"

	"github.com/frantjc/buildprops/ios"
)

func TestAppID(t *testing.T) {
	appID, err := ios.AppID(" abcde12345 ", "com.digimob.kaloApp")
	if err != nil {
		t.Fatal(err)
	}

	if appID != "ABCDE12345.com.digimob.kaloApp" {
		t.Errorf("unexpected app ID %s", appID)
	}

	if _, err := ios.AppID("short", "com.digimob.kaloApp"); err == nil {
		t.Error("expected error for short team ID")
	}

	if _, err := ios.AppID("ABCDE12345", ""); err == nil {
		t.Error("expected error for empty bundle ID")
	}
}

func TestNewAppleAppSiteAssociation(t *testing.T) {
	b, err := json.Marshal(ios.NewAppleAppSiteAssociation("ABCDE12345.com.example.app"))
	if err != nil {
		t.Fatal(err)
	}

	want := `{"applinks":{"details":[{"appIDs":["ABCDE12345.com.example.app"],"components":[{"/":"*"}]}]},"webcredentials":{"apps":["ABCDE12345.com.example.app"]}}`
	if string(b) != want {
		t.Errorf("expected\n%s\ngot\n%s", want, string(b))
	}
}
