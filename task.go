package s3transfer

import (
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/internal/validation"
)

// TransferSpec describes a single unit of object transfer work: where the
// bytes come from, where they go, and the metadata settings to attach.
type TransferSpec struct {
	// Src is the source of the transfer.
	Src Location

	// Dst is the destination of the transfer.
	Dst Location

	// CompareKey is the name used for cross-location identity comparison by
	// higher-level sync logic. It is opaque to the task itself.
	CompareKey string

	// Size is the object size in bytes, informational only.
	Size int64

	// LastModified is the source object's modification time. On download it
	// is applied to the local file; when zero, the store-reported time from
	// the response is used instead.
	LastModified time.Time

	// Operation is a descriptive tag naming what the task is part of
	// (e.g. "cp", "mv"). It is carried for diagnostics only.
	Operation string

	// Attrs are the metadata and ACL settings for object-level operations.
	Attrs ObjectAttrs
}

// TransferTask performs single-object operations: upload, download, in-store
// copy, delete, and the compound move. A task is constructed per work item,
// already bound to a Client, is owned by exactly one worker, and is discarded
// after its operation completes. It holds no state across operations.
type TransferTask struct {
	client *Client

	Src          Location
	Dst          Location
	CompareKey   string
	Size         int64
	LastModified time.Time
	Operation    string

	attrs ObjectAttrs
}

// NewTransferTask creates a transfer task bound to c. The attribute settings
// and the shape of any remote location are validated here so malformed input
// is rejected before any remote call.
func NewTransferTask(c *Client, spec TransferSpec) (*TransferTask, error) {
	if c == nil {
		return nil, errors.NewError("newTransferTask", errors.ErrNotBound)
	}
	if err := spec.Attrs.Validate(); err != nil {
		return nil, err
	}
	for _, loc := range []Location{spec.Src, spec.Dst} {
		if loc.Kind != KindRemote {
			continue
		}
		bucket, key := loc.SplitPath()
		if err := validation.ValidateBucketName(bucket); err != nil {
			return nil, errors.NewError("newTransferTask", err).WithBucket(bucket)
		}
		if key != "" {
			if err := validation.ValidateObjectKey(key); err != nil {
				return nil, errors.NewError("newTransferTask", err).WithKey(key)
			}
		}
	}
	return &TransferTask{
		client:       c,
		Src:          spec.Src,
		Dst:          spec.Dst,
		CompareKey:   spec.CompareKey,
		Size:         spec.Size,
		LastModified: spec.LastModified,
		Operation:    spec.Operation,
		attrs:        spec.Attrs,
	}, nil
}

// Attrs returns the task's validated attribute settings.
func (t *TransferTask) Attrs() ObjectAttrs {
	return t.attrs
}

// bound fails fast when the task has no client attached, which is a
// programming error rather than an operational failure.
func (t *TransferTask) bound(op string) error {
	if t.client == nil {
		return errors.NewError(op, errors.ErrNotBound)
	}
	return nil
}

// BucketTask performs container-level operations: listing, creation, and
// removal. Path is a bucket name, optionally with a key prefix in bucket/prefix
// form; an empty Path lists all buckets owned by the account.
type BucketTask struct {
	client *Client

	Path string

	// HumanReadable renders listing sizes as human-readable quantities
	// instead of raw byte counts.
	HumanReadable bool

	// Operation is a descriptive tag for diagnostics only.
	Operation string
}

// NewBucketTask creates a bucket task bound to c.
func NewBucketTask(c *Client, path string) (*BucketTask, error) {
	if c == nil {
		return nil, errors.NewError("newBucketTask", errors.ErrNotBound)
	}
	if bucket, _ := splitPath(path); bucket != "" {
		if err := validation.ValidateBucketName(bucket); err != nil {
			return nil, errors.NewError("newBucketTask", err).WithBucket(bucket)
		}
	}
	return &BucketTask{client: c, Path: path}, nil
}

func (t *BucketTask) bound(op string) error {
	if t.client == nil {
		return errors.NewError(op, errors.ErrNotBound)
	}
	return nil
}
