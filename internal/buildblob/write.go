package buildblob

import (
	"bytes"
	"context"
	"fmt"

	"github.com/frantjc/buildprops"
	"github.com/google/uuid"
	"gocloud.dev/blob"
)

// Write stores descriptor in bucket in every buildprops.Format, both
// under a new invocation id and under the latest keys. It returns the id.
func Write(ctx context.Context, bucket *blob.Bucket, descriptor *buildprops.Descriptor) (string, error) {
	var (
		id  = uuid.NewString()
		log = buildprops.LoggerFrom(ctx).WithValues("id", id)
	)

	for _, format := range buildprops.Formats {
		buf := new(bytes.Buffer)
		if err := buildprops.Emit(buf, descriptor, format); err != nil {
			return "", fmt.Errorf("emit %s: %w", format, err)
		}

		for _, key := range []string{DescriptorKey(id, format), LatestKey(format)} {
			log.V(1).Info("writing descriptor", "key", key)

			if err := Copy(ctx, bucket, key, format.ContentType(), bytes.NewReader(buf.Bytes())); err != nil {
				return "", fmt.Errorf("write %s: %w", key, err)
			}
		}
	}

	return id, nil
}
