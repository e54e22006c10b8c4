package s3transfer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/internal/fileio"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/internal/integrity"
)

// Upload reads the whole source file and puts it as an object at the
// destination bucket/key, applying the task's attribute settings.
//
// A zero-length source still issues a valid request, but the body field is
// omitted entirely so the transport does not send a degenerate empty buffer.
// After the call returns, the store-reported ETag is verified against the MD5
// of the uploaded bytes; a mismatch is reported as ErrChecksumMismatch,
// distinct from transport failures.
func (t *TransferTask) Upload(ctx context.Context) error {
	const op = "upload"
	if err := t.bound(op); err != nil {
		return err
	}
	bucket, key := t.Dst.SplitPath()

	data, err := fileio.Read(t.client.filesystem(), t.Src.Path)
	if err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}
	if len(data) > 0 {
		input.Body = bytes.NewReader(data)
		input.ContentLength = aws.Int64(int64(len(data)))
	}

	params, err := t.attrs.resolve(t.Src.Path, t.client.filesystem())
	if err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}
	params.applyToPut(input)

	output, err := t.client.api().PutObject(ctx, input)
	if err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}

	if err := integrity.Verify(aws.ToString(output.ETag), data); err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}
	return nil
}

// Download gets the object at the source bucket/key and persists it to the
// destination path: the payload is verified against the store-reported ETag,
// missing parent directories are created, the file is written, and its access
// and modification times are set to the object's last-modified timestamp with
// second precision.
//
// A checksum mismatch fails the whole operation even though bytes were
// written to disk; the caller must not treat the download as succeeded.
func (t *TransferTask) Download(ctx context.Context) error {
	const op = "download"
	if err := t.bound(op); err != nil {
		return err
	}
	bucket, key := t.Src.SplitPath()

	output, err := t.client.api().GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isObjectNotFound(err) {
			return errors.NewObjectError(op, bucket, key, errors.ErrObjectNotFound)
		}
		return errors.NewObjectError(op, bucket, key, err)
	}
	defer output.Body.Close()

	data, err := io.ReadAll(output.Body)
	if err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}

	if err := integrity.Verify(aws.ToString(output.ETag), data); err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}

	modTime := t.LastModified
	if modTime.IsZero() {
		modTime = aws.ToTime(output.LastModified)
	}
	if err := fileio.Save(t.Dst.Path, data, modTime); err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}
	return nil
}

// Copy performs an in-store copy from the source bucket/key to the
// destination bucket/key, applying the task's attribute settings to the
// destination's metadata. The copy source reference is percent-escaped with
// '/' and '~' preserved.
func (t *TransferTask) Copy(ctx context.Context) error {
	const op = "copy"
	if err := t.bound(op); err != nil {
		return err
	}
	bucket, key := t.Dst.SplitPath()

	input := &s3.CopyObjectInput{
		Bucket:     aws.String(bucket),
		Key:        aws.String(key),
		CopySource: aws.String(escapeCopySource(t.Src.Path)),
	}

	params, err := t.attrs.resolve(t.Src.Path, t.client.filesystem())
	if err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}
	params.applyToCopy(input)

	if _, err := t.client.api().CopyObject(ctx, input); err != nil {
		return errors.NewObjectError(op, bucket, key, err)
	}
	return nil
}

// Delete removes the task's source: a remote source issues an object delete,
// a local source removes the file from the filesystem. Deletion is not
// data-producing, so no integrity check applies.
func (t *TransferTask) Delete(ctx context.Context) error {
	const op = "delete"
	if err := t.bound(op); err != nil {
		return err
	}

	if t.Src.Kind == KindRemote {
		bucket, key := t.Src.SplitPath()
		_, err := t.client.api().DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		})
		if err != nil {
			return errors.NewObjectError(op, bucket, key, err)
		}
		return nil
	}

	if err := t.client.filesystem().Remove(t.Src.Path); err != nil {
		return errors.NewError(op, err)
	}
	return nil
}

// Move transfers the object and then deletes the source. The transfer step
// is dispatched on the (source kind, destination kind) pair; deletion is
// strictly sequenced after transfer success, so a failed transfer never
// deletes anything.
func (t *TransferTask) Move(ctx context.Context) error {
	const op = "move"
	if err := t.bound(op); err != nil {
		return err
	}

	var err error
	switch {
	case t.Src.Kind == KindLocal && t.Dst.Kind == KindRemote:
		err = t.Upload(ctx)
	case t.Src.Kind == KindRemote && t.Dst.Kind == KindRemote:
		err = t.Copy(ctx)
	case t.Src.Kind == KindRemote && t.Dst.Kind == KindLocal:
		err = t.Download(ctx)
	default:
		return errors.NewError(op, errors.ErrInvalidPath).
			WithMessage(fmt.Sprintf("%s to %s", t.Src.Kind, t.Dst.Kind))
	}
	if err != nil {
		return err
	}

	return t.Delete(ctx)
}

// CreateMultipartUpload initiates a multipart upload session for the
// destination bucket/key with the task's attribute settings applied, and
// returns the upload-session identifier. The identifier is an opaque handle
// for an external concurrent part-upload driver; the session is not managed
// further here.
func (t *TransferTask) CreateMultipartUpload(ctx context.Context) (string, error) {
	const op = "createMultipartUpload"
	if err := t.bound(op); err != nil {
		return "", err
	}
	bucket, key := t.Dst.SplitPath()

	input := &s3.CreateMultipartUploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}

	params, err := t.attrs.resolve(t.Src.Path, t.client.filesystem())
	if err != nil {
		return "", errors.NewObjectError(op, bucket, key, err)
	}
	params.applyToCreateMultipart(input)

	output, err := t.client.api().CreateMultipartUpload(ctx, input)
	if err != nil {
		return "", errors.NewObjectError(op, bucket, key, err)
	}
	return aws.ToString(output.UploadId), nil
}

// escapeCopySource percent-escapes a bucket/key path for use as a copy
// source reference, leaving '/' and '~' (and the unreserved set) unescaped.
func escapeCopySource(path string) string {
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9',
			c == '_', c == '.', c == '-', c == '~', c == '/':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// isObjectNotFound checks if an error indicates that an object was not found.
func isObjectNotFound(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "NoSuchKey") || strings.Contains(errStr, "NotFound")
}
