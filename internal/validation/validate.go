// Package validation provides shape checks for bucket names and object keys.
// Inputs are checked before any remote call is attempted.
package validation

import (
	"fmt"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3transfer/errors"
)

// ValidateBucketName validates that a bucket name is DNS-compliant according
// to the S3 naming rules.
func ValidateBucketName(bucket string) error {
	if bucket == "" {
		return fmt.Errorf("%w: bucket name cannot be empty", errors.ErrInvalidBucketName)
	}
	if len(bucket) < 3 || len(bucket) > 63 {
		return fmt.Errorf("%w: bucket name must be between 3 and 63 characters long",
			errors.ErrInvalidBucketName)
	}
	for _, char := range bucket {
		if !isValidBucketChar(char) {
			return fmt.Errorf(
				"%w: bucket name can only contain lowercase letters, numbers, dots, and hyphens",
				errors.ErrInvalidBucketName)
		}
	}
	if bucket[0] == '-' || bucket[0] == '.' ||
		bucket[len(bucket)-1] == '-' || bucket[len(bucket)-1] == '.' {
		return fmt.Errorf("%w: bucket name cannot start or end with a hyphen or dot",
			errors.ErrInvalidBucketName)
	}
	if hasAdjacentSpecialChars(bucket) {
		return fmt.Errorf("%w: bucket name cannot contain two adjacent periods or hyphens",
			errors.ErrInvalidBucketName)
	}
	return nil
}

// ValidateObjectKey validates that an object key is acceptable, including
// preventing path traversal and control characters.
func ValidateObjectKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: object key cannot be empty", errors.ErrInvalidObjectKey)
	}
	if len(key) > 1024 {
		return fmt.Errorf("%w: object key cannot exceed 1024 characters",
			errors.ErrInvalidObjectKey)
	}
	if hasPathTraversal(key) {
		return fmt.Errorf("%w: object key cannot contain path traversal sequences",
			errors.ErrInvalidObjectKey)
	}
	for _, r := range key {
		if r < 0x20 || r == 0x7f {
			return fmt.Errorf("%w: object key cannot contain control characters",
				errors.ErrInvalidObjectKey)
		}
	}
	return nil
}

// isValidBucketChar checks if a character is valid in a bucket name.
func isValidBucketChar(char rune) bool {
	return (char >= '0' && char <= '9') || (char >= 'a' && char <= 'z') || char == '.' || char == '-'
}

// hasAdjacentSpecialChars checks for adjacent special characters.
func hasAdjacentSpecialChars(bucket string) bool {
	for i := 0; i < len(bucket)-1; i++ {
		if (bucket[i] == '.' && bucket[i+1] == '.') || (bucket[i] == '-' && bucket[i+1] == '-') {
			return true
		}
	}
	return false
}

// hasPathTraversal checks for ".." path components.
func hasPathTraversal(key string) bool {
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." {
			return true
		}
	}
	return false
}
