package s3transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/internal/testutil"
)

func TestNewTransferTask_ValidatesRemoteLocations(t *testing.T) {
	client := NewWithClient(&testutil.MockS3Client{}, "")

	tests := []struct {
		name    string
		spec    TransferSpec
		wantErr error
	}{
		{
			name: "valid remote destination",
			spec: TransferSpec{
				Src: Local("/tmp/a.txt"),
				Dst: Remote("bucket/a.txt"),
			},
		},
		{
			name: "local locations are not shape-checked",
			spec: TransferSpec{
				Src: Local("x"),
				Dst: Local("y"),
			},
		},
		{
			name: "bad bucket name",
			spec: TransferSpec{
				Src: Local("/tmp/a.txt"),
				Dst: Remote("UPPER/a.txt"),
			},
			wantErr: errors.ErrInvalidBucketName,
		},
		{
			name: "traversal in key",
			spec: TransferSpec{
				Src: Remote("bucket/../escape"),
				Dst: Local("/tmp/a.txt"),
			},
			wantErr: errors.ErrInvalidObjectKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransferTask(client, tt.spec)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransferTask_CarriesSpecFields(t *testing.T) {
	client := NewWithClient(&testutil.MockS3Client{}, "")

	task, err := NewTransferTask(client, TransferSpec{
		Src:        Local("/tmp/a.txt"),
		Dst:        Remote("bucket/a.txt"),
		CompareKey: "a.txt",
		Size:       42,
		Operation:  "cp",
		Attrs:      ObjectAttrs{SSE: true},
	})
	require.NoError(t, err)

	assert.Equal(t, "a.txt", task.CompareKey)
	assert.Equal(t, int64(42), task.Size)
	assert.Equal(t, "cp", task.Operation)
	assert.True(t, task.Attrs().SSE)
}
