package upload

import "errors"

// ErrUploadFailed wraps every failure between payload selection and URL
// resolution: bad configuration, encoding, client construction, the write
// itself, and signing.
var ErrUploadFailed = errors.New("upload failed")

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrBucketNotFound = errors.New("storage: bucket not found")
	ErrUnauthorized   = errors.New("storage: unauthorized")
	ErrInternal       = errors.New("storage: internal error")
)
