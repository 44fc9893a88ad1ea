package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/AlexXia007/comfyui-nodes/internal/payload"
	"github.com/AlexXia007/comfyui-nodes/internal/port"
	"github.com/AlexXia007/comfyui-nodes/internal/storage"
	"github.com/AlexXia007/comfyui-nodes/internal/usecase/upload"
	"github.com/AlexXia007/comfyui-nodes/internal/uuid"
)

func main() {
	var (
		endpoint  = flag.String("endpoint", "", "storage endpoint URL, e.g. https://oss.example.com")
		accessKey = flag.String("access-key", "", "access key ID")
		secretKey = flag.String("secret-key", "", "access key secret")
		token     = flag.String("token", "", "optional STS security token")
		bucket    = flag.String("bucket", "", "destination bucket")
		prefix    = flag.String("prefix", "uploads/", "object key prefix")
		public    = flag.Bool("public", false, "return a public URL instead of a signed one")
		expire    = flag.Int("expire", 0, "signed URL lifetime in seconds (default 3600)")
		name      = flag.String("name", "", "override the generated file name")
		mime      = flag.String("mime", "", "override the detected MIME type")
		asImage   = flag.Bool("image", false, "decode the file and upload it as an image payload")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: %s [flags] <file>", os.Args[0])
	}
	path := flag.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("❌  Could not read %q: %v", path, err)
	}

	in := port.UploadInput{
		Config: port.UploadConfig{
			Endpoint:        *endpoint,
			AccessKeyID:     *accessKey,
			AccessKeySecret: *secretKey,
			SecurityToken:   *token,
			Bucket:          *bucket,
			Prefix:          *prefix,
			UseSignedURL:    !*public,
			SignedURLExpire: *expire,
		},
		FileName: *name,
		MimeType: *mime,
	}
	if *asImage {
		frame, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			log.Fatalf("❌  Could not decode %q as an image: %v", path, err)
		}
		in.Image = &payload.Image{Frames: []image.Image{frame}}
	} else {
		in.Video = &payload.Video{Data: data}
	}

	uploader := upload.NewUploader(storage.New, uuid.NewUUID)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	out, err := uploader.Upload(ctx, in)
	if err != nil {
		log.Fatalf("❌  Upload failed: %v", err)
	}

	log.Printf("✅  Uploaded %q as %q", path, out.Key)
	fmt.Println(out.URL)
}
