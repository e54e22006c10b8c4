// Package errors provides error types and handling for S3 transfer tasks.
package errors

import (
	"errors"
	"fmt"
)

// Error represents a failed task operation with context about what was
// attempted. It wraps the underlying AWS SDK or I/O error with the operation
// name and, when applicable, the bucket and key involved.
type Error struct {
	// Op is the operation that failed (e.g., "upload", "download", "move")
	Op string

	// Bucket is the S3 bucket name (if applicable)
	Bucket string

	// Key is the S3 object key (if applicable)
	Key string

	// Err is the underlying error from the AWS SDK or other source
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("s3transfer.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("s3transfer.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("s3transfer.%s object %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("s3transfer.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithBucket adds bucket context to an existing error.
func (e *Error) WithBucket(bucket string) *Error {
	e.Bucket = bucket
	return e
}

// WithKey adds object key context to an existing error.
func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

// WithMessage wraps the underlying error with a custom message.
func (e *Error) WithMessage(message string) *Error {
	e.Err = fmt.Errorf("%s: %w", message, e.Err)
	return e
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// NewObjectError creates a new Error with bucket and key context.
func NewObjectError(op, bucket, key string, err error) *Error {
	return &Error{
		Op:     op,
		Bucket: bucket,
		Key:    key,
		Err:    err,
	}
}

// Sentinel errors for task operation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("s3transfer: invalid input")

	// ErrNotBound indicates that a task was used before a client was attached
	ErrNotBound = errors.New("s3transfer: task not bound to a client")

	// ErrInvalidPath indicates an unsupported source/destination combination
	ErrInvalidPath = errors.New("s3transfer: invalid path arguments")

	// ErrChecksumMismatch indicates silent corruption: the checksum computed
	// from the transferred bytes does not match the one reported by the store.
	// It is distinct from transport failures and always fatal to the operation.
	ErrChecksumMismatch = errors.New("s3transfer: checksum mismatch")

	// ErrInvalidGrant indicates a malformed grant specification
	ErrInvalidGrant = errors.New("s3transfer: grants should be of the form permission=principal")

	// ErrInvalidPermission indicates an unrecognized grant permission keyword
	ErrInvalidPermission = errors.New("s3transfer: permission must be one of: read|readacl|writeacl|full")

	// ErrInvalidBucketName indicates that the bucket name is invalid
	ErrInvalidBucketName = errors.New("s3transfer: invalid bucket name")

	// ErrInvalidObjectKey indicates that the object key is invalid
	ErrInvalidObjectKey = errors.New("s3transfer: invalid object key")

	// ErrObjectNotFound indicates that the requested object does not exist
	ErrObjectNotFound = errors.New("s3transfer: object not found")

	// ErrBucketNotFound indicates that the requested bucket does not exist
	ErrBucketNotFound = errors.New("s3transfer: bucket not found")
)

// IsChecksumMismatch checks if an error indicates a data-integrity failure.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsChecksumMismatch(err error) bool {
	return errors.Is(err, ErrChecksumMismatch)
}

// IsInvalidInput checks if an error indicates invalid input.
// This is a convenience function that handles both sentinel errors and wrapped errors.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
