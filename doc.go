// Package s3transfer models file-transfer tasks between a local filesystem
// and S3, plus bucket-level administrative operations. It wraps AWS SDK v2
// with a task abstraction designed for single-shot execution by parallel
// workers: one task per work item, no shared mutable state, no internal
// retries.
//
// Key features:
//   - TransferTask for upload, download, in-store copy, delete, and the
//     compound move (transfer then delete, strictly sequenced)
//   - BucketTask for streaming listings and bucket create/remove
//   - Checksum verification of every data-moving operation against the
//     store-reported ETag, surfaced distinctly from transport failures
//   - A fixed attribute set (ACL, grants, SSE, storage class, content
//     metadata) validated once and applied uniformly to put, copy, and
//     multipart initiation requests
//   - Timestamp preservation and tolerant directory auto-creation on download
//
// Example usage:
//
//	client, err := s3transfer.New(s3transfer.WithRegion("us-west-2"))
//	if err != nil {
//	    return err
//	}
//
//	task, err := s3transfer.NewTransferTask(client, s3transfer.TransferSpec{
//	    Src: s3transfer.Local("/data/report.json"),
//	    Dst: s3transfer.Remote("my-bucket/reports/report.json"),
//	    Attrs: s3transfer.ObjectAttrs{GuessContentType: true},
//	})
//	if err != nil {
//	    return err
//	}
//	if err := task.Upload(ctx); err != nil {
//	    return err
//	}
package s3transfer
