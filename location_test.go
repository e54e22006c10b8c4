package s3transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "local", KindLocal.String())
	assert.Equal(t, "s3", KindRemote.String())
	assert.Equal(t, "unset", KindUnset.String())
	assert.Equal(t, "unset", Kind(42).String())
}

func TestLocation_Constructors(t *testing.T) {
	local := Local("/tmp/file.txt")
	assert.Equal(t, KindLocal, local.Kind)
	assert.Equal(t, "/tmp/file.txt", local.Path)

	remote := Remote("bucket/key")
	assert.Equal(t, KindRemote, remote.Kind)
	assert.Equal(t, "bucket/key", remote.Path)
}

func TestLocation_SplitPath(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantBucket string
		wantKey    string
	}{
		{
			name:       "bucket and key",
			path:       "my-bucket/path/to/object.txt",
			wantBucket: "my-bucket",
			wantKey:    "path/to/object.txt",
		},
		{
			name:       "bucket only",
			path:       "my-bucket",
			wantBucket: "my-bucket",
			wantKey:    "",
		},
		{
			name:       "bucket with trailing slash",
			path:       "my-bucket/",
			wantBucket: "my-bucket",
			wantKey:    "",
		},
		{
			name:       "empty path",
			path:       "",
			wantBucket: "",
			wantKey:    "",
		},
		{
			name:       "key keeps embedded separators",
			path:       "b/a//c",
			wantBucket: "b",
			wantKey:    "a//c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key := Remote(tt.path).SplitPath()
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
