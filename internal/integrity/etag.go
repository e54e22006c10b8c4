// Package integrity verifies transfer checksums against store-reported ETags.
//
// For objects written in a single request, S3 reports the hex MD5 digest of
// the payload as the ETag. Comparing it against a locally computed digest
// detects silent corruption across the network boundary.
package integrity

import (
	"crypto/md5" //nolint:gosec // S3 ETags are MD5 by protocol, not used for security
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
)

// Sum returns the hex MD5 digest of data. This matches the ETag S3 reports
// for objects uploaded in a single request.
func Sum(data []byte) string {
	digest := md5.Sum(data) //nolint:gosec // protocol-mandated hash
	return hex.EncodeToString(digest[:])
}

// StripQuotes removes the surrounding double quotes the S3 API puts on
// ETag header values.
func StripQuotes(etag string) string {
	return strings.Trim(etag, `"`)
}

// Verify compares the store-reported ETag against the MD5 digest of data.
// A mismatch is a data-integrity failure, reported as ErrChecksumMismatch.
//
// ETags containing '-' come from multipart uploads; they hash the part
// digests rather than the payload and are not comparable, so they pass
// without checking.
func Verify(etag string, data []byte) error {
	etag = StripQuotes(etag)
	if strings.Contains(etag, "-") {
		return nil
	}
	if computed := Sum(data); computed != etag {
		return fmt.Errorf("%w: computed %s, store reported %s",
			errors.ErrChecksumMismatch, computed, etag)
	}
	return nil
}
