package s3transfer

import "strings"

// Kind tags which side of the transfer a location lives on.
type Kind int

// Location kinds. A zero Kind is unset, which no operation accepts.
const (
	KindUnset Kind = iota

	// KindLocal is a path on the local filesystem, always absolute.
	KindLocal

	// KindRemote is an object store path in bucket/key form.
	KindRemote
)

// String returns the kind's name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindRemote:
		return "s3"
	default:
		return "unset"
	}
}

// Location identifies one end of a transfer: a local file path or a remote
// bucket/key path, tagged with its kind.
type Location struct {
	Kind Kind
	Path string
}

// Local returns a Location for a local filesystem path.
func Local(path string) Location {
	return Location{Kind: KindLocal, Path: path}
}

// Remote returns a Location for an object store path in bucket/key form.
// A bare bucket name has no key; an empty path means "all buckets" for
// listing operations.
func Remote(path string) Location {
	return Location{Kind: KindRemote, Path: path}
}

// SplitPath returns the bucket and key components of a remote path.
// The first path separator splits them; everything after it, separators
// included, belongs to the key.
func (l Location) SplitPath() (bucket, key string) {
	return splitPath(l.Path)
}

func splitPath(path string) (bucket, key string) {
	if i := strings.Index(path, "/"); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}
