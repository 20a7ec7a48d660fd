package properties_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/frantjc/buildprops/properties"
	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFile(t *testing.T) {
	m, err := properties.Load(filepath.Join(t.TempDir(), "key.properties"))
	if err != nil {
		t.Fatal(err)
	}

	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	// Opening succeeds on a directory but reading it does not.
	dir := t.TempDir()

	_, err := properties.Load(dir)
	if err == nil {
		t.Fatal("expected error")
	}

	perr := &properties.ParseError{}
	if !errors.As(err, &perr) {
		t.Fatalf("expected *properties.ParseError, got %T", err)
	}

	if perr.Path != dir {
		t.Errorf("expected path %s, got %s", dir, perr.Path)
	}
}

func TestLoad(t *testing.T) {
	name := filepath.Join(t.TempDir(), "local.properties")
	if err := os.WriteFile(name, []byte("flutter.versionCode=42\nflutter.versionName=1.2.3"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := properties.Load(name)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(properties.Map{
		"flutter.versionCode": "42",
		"flutter.versionName": "1.2.3",
	}, m); diff != "" {
		t.Errorf("unexpected properties (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  properties.Map
	}{
		{
			name:  "comments and blank lines",
			input: "# generated\n\n! also a comment\n   \nkeyAlias=upload\n",
			want:  properties.Map{"keyAlias": "upload"},
		},
		{
			name:  "crlf and whitespace around separator",
			input: "storePassword = hunter2\r\n  keyAlias :release\r\n",
			want:  properties.Map{"storePassword": "hunter2", "keyAlias": "release"},
		},
		{
			name:  "whitespace separates key from value",
			input: "a b=c\nkeyAlias\tupload\n",
			want:  properties.Map{"a": "b=c", "keyAlias": "upload"},
		},
		{
			name:  "lines without a key are skipped",
			input: "=novalue\n  :alsonone\nstoreFile=/keys/\\\n=upload.jks\nkeyAlias=upload\n",
			want:  properties.Map{"storeFile": "/keys/=upload.jks", "keyAlias": "upload"},
		},
		{
			name:  "key without value",
			input: "keyPassword\nstorePassword=\n",
			want:  properties.Map{"keyPassword": "", "storePassword": ""},
		},
		{
			name:  "first separator wins",
			input: "url=https://example.com/a=b\n",
			want:  properties.Map{"url": "https://example.com/a=b"},
		},
		{
			name:  "escaped windows path",
			input: `sdk.dir=C\:\\Users\\me\\AppData\\Local\\Android\\sdk`,
			want:  properties.Map{"sdk.dir": `C:\Users\me\AppData\Local\Android\sdk`},
		},
		{
			name:  "escaped separator in key",
			input: `a\=b=c`,
			want:  properties.Map{"a=b": "c"},
		},
		{
			name:  "continuation lines",
			input: "storeFile=/keys/\\\n    upload.jks\nkeyAlias=upload\n",
			want:  properties.Map{"storeFile": "/keys/upload.jks", "keyAlias": "upload"},
		},
		{
			name:  "escaped backslash is not a continuation",
			input: "dir=C\\\\\nkeyAlias=upload\n",
			want:  properties.Map{"dir": `C\`, "keyAlias": "upload"},
		},
		{
			name:  "unicode escapes",
			input: `name=caf\u00e9 \u00fcber`,
			want:  properties.Map{"name": "café über"},
		},
		{
			name:  "later duplicates win",
			input: "flutter.versionCode=1\nflutter.versionCode=2\n",
			want:  properties.Map{"flutter.versionCode": "2"},
		},
		{
			name:  "byte order mark",
			input: "\ufeffflutter.versionName=1.0.0",
			want:  properties.Map{"flutter.versionName": "1.0.0"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := properties.Parse(strings.NewReader(tc.input))
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("unexpected properties (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	for name, input := range map[string]string{
		"bad unicode escape":       `k=\u00zz`,
		"truncated unicode escape": `k=\u00`,
	} {
		t.Run(name, func(t *testing.T) {
			if m, err := properties.Parse(strings.NewReader(input)); err == nil {
				t.Errorf("expected error, got %v", m)
			}
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "local.properties")
	if err := os.WriteFile(name, []byte("flutter.versionName=\\u12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := properties.Load(name)

	perr := &properties.ParseError{}
	if !errors.As(err, &perr) {
		t.Fatalf("expected *properties.ParseError, got %v", err)
	}
}

func TestEncodeParse(t *testing.T) {
	m := properties.Map{
		"flutter.versionCode": "42",
		"flutter.versionName": "1.2.3",
		"sdk.dir":             `C:\Users\me\sdk`,
		"key with spaces":     " leading space",
		"comment":             "#not a comment",
		"expansion":           "${not.expanded}",
		"multi":               "line one\nline two",
	}

	buf := new(bytes.Buffer)
	if err := properties.Encode(buf, m); err != nil {
		t.Fatal(err)
	}

	got, err := properties.Parse(buf)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(m, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeKeys(t *testing.T) {
	m := properties.Map{
		"flutter.versionCode": "42",
		"flutter.versionName": "1.2.3",
		"keyPassword":         "secret",
	}

	buf := new(bytes.Buffer)
	if err := properties.Encode(buf, m, "flutter.versionName", "flutter.versionCode", "missing"); err != nil {
		t.Fatal(err)
	}

	if want := "flutter.versionName=1.2.3\nflutter.versionCode=42\n"; buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
