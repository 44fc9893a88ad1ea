package storage

import (
	"fmt"

	"github.com/AlexXia007/comfyui-nodes/internal/usecase/upload"
	"github.com/minio/minio-go/v7"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchKey":
		return upload.ErrObjectNotFound
	case "NoSuchBucket":
		return upload.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return upload.ErrUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", upload.ErrInternal, err)
	}
}
