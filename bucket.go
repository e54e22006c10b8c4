package s3transfer

import (
	"context"
	stderrors "errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	awstypes "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/internal/validation"
)

// List writes a listing report to w. With an empty Path it enumerates all
// buckets owned by the account; otherwise it enumerates keys under the
// bucket/prefix with '/'-delimited grouping, marking each common prefix as a
// pseudo-directory. Every line is flushed as it is written.
func (t *BucketTask) List(ctx context.Context, w io.Writer) error {
	const op = "list"
	if err := t.bound(op); err != nil {
		return err
	}

	bucket, prefix := splitPath(t.Path)
	if bucket == "" {
		return t.listBuckets(ctx, w)
	}
	return t.listObjects(ctx, w, bucket, prefix)
}

func (t *BucketTask) listBuckets(ctx context.Context, w io.Writer) error {
	output, err := t.client.api().ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return errors.NewError("list", err)
	}

	if err := writeLine(w, "\n%19s %s\n", "CreationTime", "Bucket"); err != nil {
		return err
	}
	if err := writeLine(w, "%19s %s\n", "------------", "------"); err != nil {
		return err
	}
	for _, b := range output.Buckets {
		err := writeLine(w, "%s %s\n",
			formatLastModified(aws.ToTime(b.CreationDate)), aws.ToString(b.Name))
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *BucketTask) listObjects(ctx context.Context, w io.Writer, bucket, prefix string) error {
	if err := writeLine(w, "\nBucket: %s\n", bucket); err != nil {
		return err
	}
	if err := writeLine(w, "Prefix: %s\n\n", prefix); err != nil {
		return err
	}
	if err := writeLine(w, "%19s %10s %s\n", "LastWriteTime", "Length", "Name"); err != nil {
		return err
	}
	if err := writeLine(w, "%19s %10s %s\n", "-------------", "------", "----"); err != nil {
		return err
	}

	paginator := s3.NewListObjectsV2Paginator(t.client.api(), &s3.ListObjectsV2Input{
		Bucket:    aws.String(bucket),
		Prefix:    aws.String(prefix),
		Delimiter: aws.String("/"),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return errors.NewError("list", err).WithBucket(bucket)
		}

		for _, cp := range page.CommonPrefixes {
			// A common prefix ends with the delimiter; the pseudo-directory
			// name is the segment before it.
			segments := strings.Split(aws.ToString(cp.Prefix), "/")
			name := ""
			if len(segments) >= 2 {
				name = segments[len(segments)-2]
			}
			if err := writeLine(w, "%30s %s/\n", "PRE", name); err != nil {
				return err
			}
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			segments := strings.Split(key, "/")
			err := writeLine(w, "%s %s %s\n",
				formatLastModified(aws.ToTime(obj.LastModified)),
				formatSize(aws.ToInt64(obj.Size), t.HumanReadable),
				segments[len(segments)-1])
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// Create creates the bucket. A location constraint naming the client's
// region is supplied unless the region is us-east-1, the single case where
// the store rejects an explicit constraint.
func (t *BucketTask) Create(ctx context.Context) error {
	const op = "createBucket"
	if err := t.bound(op); err != nil {
		return err
	}

	bucket, _ := splitPath(t.Path)
	if err := validation.ValidateBucketName(bucket); err != nil {
		return errors.NewError(op, err).WithBucket(bucket)
	}

	input := &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	}
	if region := t.client.Region(); region != DefaultRegion {
		input.CreateBucketConfiguration = &awstypes.CreateBucketConfiguration{
			LocationConstraint: awstypes.BucketLocationConstraint(region),
		}
	}

	if _, err := t.client.api().CreateBucket(ctx, input); err != nil {
		return errors.NewError(op, convertAWSError(err)).WithBucket(bucket)
	}
	return nil
}

// Remove deletes the bucket. The store requires it to be empty.
func (t *BucketTask) Remove(ctx context.Context) error {
	const op = "removeBucket"
	if err := t.bound(op); err != nil {
		return err
	}

	bucket, _ := splitPath(t.Path)
	if err := validation.ValidateBucketName(bucket); err != nil {
		return errors.NewError(op, err).WithBucket(bucket)
	}

	input := &s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	}
	if _, err := t.client.api().DeleteBucket(ctx, input); err != nil {
		return errors.NewError(op, convertAWSError(err)).WithBucket(bucket)
	}
	return nil
}

// convertAWSError converts AWS SDK bucket errors to our sentinel types.
func convertAWSError(err error) error {
	if err == nil {
		return nil
	}

	var noSuchBucket *awstypes.NoSuchBucket
	if stderrors.As(err, &noSuchBucket) {
		return errors.ErrBucketNotFound
	}

	if strings.Contains(err.Error(), "NoSuchBucket") {
		return errors.ErrBucketNotFound
	}
	return err
}
