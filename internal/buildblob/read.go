package buildblob

import (
	"context"
	"fmt"
	"io"

	"github.com/frantjc/buildprops"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// NewDescriptorReader opens the descriptor written by the invocation id
// in the given format. An empty id opens the latest one.
func NewDescriptorReader(ctx context.Context, bucket *blob.Bucket, id string, format buildprops.Format) (io.ReadCloser, error) {
	key := LatestKey(format)
	if id != "" {
		key = DescriptorKey(id, format)
	}

	rc, err := bucket.NewReader(ctx, key, nil)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, fmt.Errorf("descriptor %s not found", key)
	} else if err != nil {
		return nil, err
	}

	return rc, nil
}
