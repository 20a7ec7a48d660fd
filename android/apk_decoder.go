package android

import (
	"context"
	"os"
	"path/filepath"

	"github.com/frantjc/buildprops/apktool"
	"github.com/frantjc/buildprops/keytool"
)

// APKDecoder reads the metadata, manifest and signer of a built .apk.
type APKDecoder struct {
	Name string

	apktool  string
	keytool  string
	dir      string
	tmp      bool
	decoded  bool
	manifest *Manifest
	metadata *apktool.Metadata
}

type APKDecoderOpt func(*APKDecoder)

func WithAPKTool(b string) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.apktool = b
	}
}

func WithKeytool(b string) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.keytool = b
	}
}

// WithDir decodes into dir instead of a temporary directory.
// dir is left in place by Close.
func WithDir(dir string) APKDecoderOpt {
	return func(a *APKDecoder) {
		a.dir = dir
	}
}

func NewAPKDecoder(name string, opts ...APKDecoderOpt) *APKDecoder {
	ad := &APKDecoder{Name: name, keytool: "keytool", apktool: "apktool"}

	for _, opt := range opts {
		opt(ad)
	}

	return ad
}

func (a *APKDecoder) decode(ctx context.Context) error {
	if a.decoded {
		return nil
	} else if a.dir == "" {
		var err error
		a.dir, err = os.MkdirTemp("", "buildprops-apk-*")
		if err != nil {
			return err
		}
		a.tmp = true
	}

	opts := &apktool.DecodeOpts{
		Force:           true,
		NoSources:       true,
		OutputDirectory: a.dir,
	}

	if err := apktool.Command(a.apktool).Decode(ctx, a.Name, opts); err != nil {
		return err
	}

	a.decoded = true

	return nil
}

func (a *APKDecoder) Manifest(ctx context.Context) (*Manifest, error) {
	if err := a.decode(ctx); err != nil {
		return nil, err
	}

	if a.manifest != nil {
		return a.manifest, nil
	}

	f, err := os.Open(filepath.Join(a.dir, AndroidManifestName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if a.manifest, err = DecodeManifest(f); err != nil {
		return nil, err
	}

	return a.manifest, nil
}

func (a *APKDecoder) Metadata(ctx context.Context) (*apktool.Metadata, error) {
	if err := a.decode(ctx); err != nil {
		return nil, err
	}

	if a.metadata != nil {
		return a.metadata, nil
	}

	f, err := os.Open(filepath.Join(a.dir, apktool.MetadataName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if a.metadata, err = apktool.DecodeMetadata(f); err != nil {
		return nil, err
	}

	return a.metadata, nil
}

// SHA256CertFingerprints returns the fingerprint of the certificate
// the .apk was signed with. It does not require decoding.
func (a *APKDecoder) SHA256CertFingerprints(ctx context.Context) (string, error) {
	return keytool.Command(a.keytool).SHA256CertFingerprints(ctx, a.Name)
}

// Close removes the decoded output if it was written to a temporary
// directory. Unlike the decoded output, the .apk itself is left alone.
func (a *APKDecoder) Close() error {
	if a.tmp && a.dir != "" {
		if err := os.RemoveAll(a.dir); err != nil {
			return err
		}
		a.dir = ""
		a.tmp = false
	}

	a.decoded = false
	a.metadata = nil
	a.manifest = nil

	return nil
}
