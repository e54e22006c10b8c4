package s3transfer

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/input-output-hk/catalyst-forge-libs/fs/billy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
)

func TestObjectAttrs_ParseGrants(t *testing.T) {
	tests := []struct {
		name    string
		grants  []string
		want    grantSet
		wantErr error
	}{
		{
			name:   "no grants",
			grants: nil,
			want:   grantSet{},
		},
		{
			name:   "read grant",
			grants: []string{"read=id=alice"},
			want:   grantSet{Read: "id=alice"},
		},
		{
			name: "all four slots",
			grants: []string{
				"read=alice",
				"full=bob",
				"readacl=carol",
				"writeacl=dave",
			},
			want: grantSet{
				Read:        "alice",
				FullControl: "bob",
				ReadACP:     "carol",
				WriteACP:    "dave",
			},
		},
		{
			name:   "later entry overwrites the slot",
			grants: []string{"read=alice", "read=bob"},
			want:   grantSet{Read: "bob"},
		},
		{
			name:    "missing separator",
			grants:  []string{"readalice"},
			wantErr: errors.ErrInvalidGrant,
		},
		{
			name:    "unknown permission",
			grants:  []string{"write=alice"},
			wantErr: errors.ErrInvalidPermission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := ObjectAttrs{Grants: tt.grants}
			got, err := attrs.parseGrants()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObjectAttrs_Validate(t *testing.T) {
	valid := ObjectAttrs{Grants: []string{"full=alice"}}
	assert.NoError(t, valid.Validate())

	invalid := ObjectAttrs{Grants: []string{"bogus"}}
	assert.ErrorIs(t, invalid.Validate(), errors.ErrInvalidGrant)
}

func TestObjectAttrs_Resolve_ContentType(t *testing.T) {
	memFS := billy.NewInMemoryFS()
	require.NoError(t, memFS.WriteFile("/data/report.json", []byte(`{"a": 1}`), 0o644))

	tests := []struct {
		name  string
		attrs ObjectAttrs
		path  string
		check func(t *testing.T, contentType string)
	}{
		{
			name:  "no guessing leaves type empty",
			attrs: ObjectAttrs{},
			path:  "/data/report.json",
			check: func(t *testing.T, contentType string) {
				assert.Empty(t, contentType)
			},
		},
		{
			name:  "guess from content and extension",
			attrs: ObjectAttrs{GuessContentType: true},
			path:  "/data/report.json",
			check: func(t *testing.T, contentType string) {
				assert.Contains(t, contentType, "json")
			},
		},
		{
			name: "explicit type wins over guess",
			attrs: ObjectAttrs{
				GuessContentType: true,
				ContentType:      "application/x-custom",
			},
			path: "/data/report.json",
			check: func(t *testing.T, contentType string) {
				assert.Equal(t, "application/x-custom", contentType)
			},
		},
		{
			name:  "guess falls back to extension for missing file",
			attrs: ObjectAttrs{GuessContentType: true},
			path:  "/nope/missing.html",
			check: func(t *testing.T, contentType string) {
				assert.Contains(t, contentType, "text/html")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := tt.attrs.resolve(tt.path, memFS)
			require.NoError(t, err)
			tt.check(t, params.contentType)
		})
	}
}

func TestObjectAttrs_Resolve_GrantError(t *testing.T) {
	attrs := ObjectAttrs{Grants: []string{"nonsense"}}
	_, err := attrs.resolve("/tmp/file", nil)
	assert.ErrorIs(t, err, errors.ErrInvalidGrant)
}

func TestObjectParams_ApplyToPut(t *testing.T) {
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	attrs := ObjectAttrs{
		ACL:                "public-read",
		Grants:             []string{"read=alice", "full=bob"},
		SSE:                true,
		StorageClass:       "REDUCED_REDUNDANCY",
		WebsiteRedirect:    "/index.html",
		ContentType:        "text/plain",
		CacheControl:       "max-age=60",
		ContentDisposition: "attachment",
		ContentEncoding:    "gzip",
		ContentLanguage:    "en",
		Expires:            &expires,
	}

	params, err := attrs.resolve("/tmp/file.txt", nil)
	require.NoError(t, err)

	input := &s3.PutObjectInput{}
	params.applyToPut(input)

	assert.Equal(t, awstypes.ObjectCannedACL("public-read"), input.ACL)
	assert.Equal(t, "alice", aws.ToString(input.GrantRead))
	assert.Equal(t, "bob", aws.ToString(input.GrantFullControl))
	assert.Nil(t, input.GrantReadACP)
	assert.Nil(t, input.GrantWriteACP)
	assert.Equal(t, awstypes.ServerSideEncryptionAes256, input.ServerSideEncryption)
	assert.Equal(t, awstypes.StorageClass("REDUCED_REDUNDANCY"), input.StorageClass)
	assert.Equal(t, "/index.html", aws.ToString(input.WebsiteRedirectLocation))
	assert.Equal(t, "text/plain", aws.ToString(input.ContentType))
	assert.Equal(t, "max-age=60", aws.ToString(input.CacheControl))
	assert.Equal(t, "attachment", aws.ToString(input.ContentDisposition))
	assert.Equal(t, "gzip", aws.ToString(input.ContentEncoding))
	assert.Equal(t, "en", aws.ToString(input.ContentLanguage))
	require.NotNil(t, input.Expires)
	assert.True(t, input.Expires.Equal(expires))
}

func TestObjectParams_ApplyToPut_ZeroValuesLeaveInputUntouched(t *testing.T) {
	params, err := (&ObjectAttrs{}).resolve("/tmp/file", nil)
	require.NoError(t, err)

	input := &s3.PutObjectInput{}
	params.applyToPut(input)

	assert.Empty(t, input.ACL)
	assert.Nil(t, input.GrantRead)
	assert.Empty(t, input.ServerSideEncryption)
	assert.Empty(t, input.StorageClass)
	assert.Nil(t, input.ContentType)
	assert.Nil(t, input.Expires)
}

func TestObjectParams_ApplyToCopy(t *testing.T) {
	attrs := ObjectAttrs{
		ACL:          "private",
		SSE:          true,
		StorageClass: "STANDARD_IA",
		Grants:       []string{"readacl=carol", "writeacl=dave"},
	}

	params, err := attrs.resolve("", nil)
	require.NoError(t, err)

	input := &s3.CopyObjectInput{}
	params.applyToCopy(input)

	assert.Equal(t, awstypes.ObjectCannedACL("private"), input.ACL)
	assert.Equal(t, awstypes.ServerSideEncryptionAes256, input.ServerSideEncryption)
	assert.Equal(t, awstypes.StorageClass("STANDARD_IA"), input.StorageClass)
	assert.Equal(t, "carol", aws.ToString(input.GrantReadACP))
	assert.Equal(t, "dave", aws.ToString(input.GrantWriteACP))
	assert.Nil(t, input.GrantRead)
}

func TestObjectParams_ApplyToCreateMultipart(t *testing.T) {
	attrs := ObjectAttrs{
		SSE:          true,
		StorageClass: "GLACIER",
		ContentType:  "application/octet-stream",
	}

	params, err := attrs.resolve("", nil)
	require.NoError(t, err)

	input := &s3.CreateMultipartUploadInput{}
	params.applyToCreateMultipart(input)

	assert.Equal(t, awstypes.ServerSideEncryptionAes256, input.ServerSideEncryption)
	assert.Equal(t, awstypes.StorageClass("GLACIER"), input.StorageClass)
	assert.Equal(t, "application/octet-stream", aws.ToString(input.ContentType))
}

func TestGuessContentType_NilFilesystem(t *testing.T) {
	assert.Contains(t, guessContentType("/some/file.css", nil), "text/css")
	assert.Empty(t, guessContentType("/some/file", nil))
}

func TestNewTransferTask_RejectsBadGrants(t *testing.T) {
	client := NewWithClient(nil, "")
	_, err := NewTransferTask(client, TransferSpec{
		Attrs: ObjectAttrs{Grants: []string{"admin=alice"}},
	})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidPermission))
}
