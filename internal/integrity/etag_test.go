package integrity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
)

func TestSum(t *testing.T) {
	// Well-known MD5 vectors.
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Sum(nil))
	assert.Equal(t, "9e107d9d372bb6826bd81d3542a419d6",
		Sum([]byte("The quick brown fox jumps over the lazy dog")))
}

func TestStripQuotes(t *testing.T) {
	assert.Equal(t, "abc123", StripQuotes(`"abc123"`))
	assert.Equal(t, "abc123", StripQuotes("abc123"))
	assert.Equal(t, "", StripQuotes(`""`))
}

func TestVerify(t *testing.T) {
	data := []byte("The quick brown fox jumps over the lazy dog")

	tests := []struct {
		name    string
		etag    string
		data    []byte
		wantErr bool
	}{
		{
			name: "matching etag",
			etag: `"9e107d9d372bb6826bd81d3542a419d6"`,
			data: data,
		},
		{
			name: "matching etag without quotes",
			etag: "9e107d9d372bb6826bd81d3542a419d6",
			data: data,
		},
		{
			name:    "mismatched etag",
			etag:    `"00000000000000000000000000000000"`,
			data:    data,
			wantErr: true,
		},
		{
			name: "multipart etag is not comparable",
			etag: `"9e107d9d372bb6826bd81d3542a419d6-12"`,
			data: []byte("anything at all"),
		},
		{
			name: "empty payload",
			etag: `"d41d8cd98f00b204e9800998ecf8427e"`,
			data: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.etag, tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, errors.ErrChecksumMismatch)
				return
			}
			assert.NoError(t, err)
		})
	}
}
