package buildblob

import (
	"path"

	"github.com/frantjc/buildprops"
)

const latest = "latest"

// DescriptorKey is the key of the descriptor written
// by the invocation id in the given format.
func DescriptorKey(id string, format buildprops.Format) string {
	return path.Join(id, "descriptor."+format.Ext())
}

// LatestKey is the key of the most recently
// written descriptor in the given format.
func LatestKey(format buildprops.Format) string {
	return DescriptorKey(latest, format)
}
