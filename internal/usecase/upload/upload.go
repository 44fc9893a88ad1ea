package upload

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/AlexXia007/comfyui-nodes/internal/payload"
	"github.com/AlexXia007/comfyui-nodes/internal/port"
)

// DefaultSignedURLExpire is applied when a signed URL is requested without an
// explicit expiry, in seconds.
const DefaultSignedURLExpire = 3600

type uploaderSrv struct {
	factory port.StorageFactory
	genUUID port.UUIDGen
}

// NewUploader builds the upload pipeline around a storage factory, which
// opens one client per run from the credentials carried in the input.
func NewUploader(factory port.StorageFactory, genUUID port.UUIDGen) port.Uploader {
	return &uploaderSrv{factory: factory, genUUID: genUUID}
}

func (s *uploaderSrv) Upload(ctx context.Context, in port.UploadInput) (port.UploadOutput, error) {
	if err := validateConfig(in.Config); err != nil {
		return port.UploadOutput{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	p, err := payload.Select(in.Image, in.Audio, in.Video)
	if err != nil {
		return port.UploadOutput{}, err
	}

	obj, err := payload.Encode(p, s.genUUID)
	if err != nil {
		return port.UploadOutput{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	if name := strings.TrimSpace(in.FileName); name != "" {
		if !strings.EqualFold(path.Ext(name), path.Ext(obj.Name)) {
			log.Printf("file name override %q does not match the encoded payload type %s", name, obj.MIME)
		}
		obj.Name = name
	}
	if mt := strings.TrimSpace(in.MimeType); mt != "" {
		obj.MIME = mt
	}

	strg, err := s.factory(port.StorageConfig{
		Endpoint:        in.Config.Endpoint,
		AccessKeyID:     in.Config.AccessKeyID,
		SecretAccessKey: in.Config.AccessKeySecret,
		SessionToken:    in.Config.SecurityToken,
	})
	if err != nil {
		return port.UploadOutput{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	key := BuildKey(in.Config.Prefix, time.Now().UTC(), obj.Name)

	log.Printf("uploading object %q into bucket %q...", key, in.Config.Bucket)
	if err := strg.SaveObject(ctx, in.Config.Bucket, key, bytes.NewReader(obj.Data), int64(len(obj.Data)), obj.MIME); err != nil {
		return port.UploadOutput{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	out := port.UploadOutput{Key: key}
	if in.Config.UseSignedURL {
		expire := in.Config.SignedURLExpire
		if expire <= 0 {
			expire = DefaultSignedURLExpire
		}
		signed, err := strg.SignedURL(ctx, in.Config.Bucket, key, time.Duration(expire)*time.Second)
		if err != nil {
			return port.UploadOutput{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
		out.URL = signed
	} else {
		out.URL = strg.PublicURL(in.Config.Bucket, key)
	}
	return out, nil
}
