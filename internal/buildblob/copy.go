package buildblob

import (
	"context"
	"io"

	"gocloud.dev/blob"
)

func Copy(ctx context.Context, bucket *blob.Bucket, key, contentType string, r io.Reader) error {
	w, err := bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return err
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}
