package node

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlexXia007/comfyui-nodes/internal/graph"
	"github.com/AlexXia007/comfyui-nodes/internal/port"
	"github.com/AlexXia007/comfyui-nodes/internal/validation"
)

// uploadRequest is the wire form of one upload run. The pointer fields keep
// absent values distinguishable from explicit zero values so the widget
// defaults can apply.
type uploadRequest struct {
	Endpoint        string  `json:"endpoint" validate:"required"`
	AccessKeyID     string  `json:"access_key_id" validate:"required"`
	AccessKeySecret string  `json:"access_key_secret" validate:"required"`
	BucketName      string  `json:"bucket_name" validate:"required"`
	ObjectPrefix    *string `json:"object_prefix"`
	UseSignedURL    *bool   `json:"use_signed_url"`
	SignedURLExpire *int    `json:"signed_url_expire_seconds" validate:"omitempty,min=60,max=604800"`

	Image *wireImage `json:"image"`
	Audio *wireAudio `json:"audio"`
	Video *wireVideo `json:"video"`

	FileName      string `json:"file_name"`
	MimeType      string `json:"mime_type"`
	SecurityToken string `json:"security_token"`
}

const defaultObjectPrefix = "uploads/"

type uploadNode struct {
	uploader port.Uploader
}

// NewUpload wraps the upload pipeline as a graph node.
func NewUpload(uploader port.Uploader) graph.Node {
	return &uploadNode{uploader: uploader}
}

func (n *uploadNode) Descriptor() graph.Descriptor {
	return graph.Descriptor{
		ID:          "oss_upload",
		DisplayName: "OSS Upload",
		Category:    "AIxIA_nodes_tools",
		Inputs: map[string]graph.PortSpec{
			"endpoint":          {Type: graph.TypeString, Required: true, Default: ""},
			"access_key_id":     {Type: graph.TypeString, Required: true, Default: "", Secret: true},
			"access_key_secret": {Type: graph.TypeString, Required: true, Default: "", Secret: true},
			"bucket_name":       {Type: graph.TypeString, Required: true, Default: ""},
			"object_prefix":     {Type: graph.TypeString, Required: true, Default: defaultObjectPrefix},
			"use_signed_url":    {Type: graph.TypeBool, Required: true, Default: true},
			"signed_url_expire_seconds": {
				Type:     graph.TypeInt,
				Required: true,
				Default:  3600,
				Min:      graph.IntPtr(60),
				Max:      graph.IntPtr(604800),
			},
			"image":          {Type: graph.TypeImage},
			"audio":          {Type: graph.TypeAudio},
			"video":          {Type: graph.TypeVideo},
			"file_name":      {Type: graph.TypeString, Default: ""},
			"mime_type":      {Type: graph.TypeString, Default: ""},
			"security_token": {Type: graph.TypeString, Default: "", Secret: true},
		},
		Outputs: []graph.OutputSpec{
			{Name: "url", Type: graph.TypeString},
		},
	}
}

func (n *uploadNode) Run(ctx context.Context, inputs json.RawMessage) (graph.Outputs, error) {
	var req uploadRequest
	if err := json.Unmarshal(inputs, &req); err != nil {
		return nil, invalidInput(err)
	}
	if err := validation.ValidateStruct(&req); err != nil {
		return nil, invalidInput(err)
	}

	prefix := defaultObjectPrefix
	if req.ObjectPrefix != nil {
		prefix = *req.ObjectPrefix
	}
	useSigned := true
	if req.UseSignedURL != nil {
		useSigned = *req.UseSignedURL
	}
	var expire int
	if req.SignedURLExpire != nil {
		expire = *req.SignedURLExpire
	}

	in := port.UploadInput{
		Config: port.UploadConfig{
			Endpoint:        req.Endpoint,
			AccessKeyID:     req.AccessKeyID,
			AccessKeySecret: req.AccessKeySecret,
			SecurityToken:   req.SecurityToken,
			Bucket:          req.BucketName,
			Prefix:          prefix,
			UseSignedURL:    useSigned,
			SignedURLExpire: expire,
		},
		FileName: req.FileName,
		MimeType: req.MimeType,
	}

	if req.Image != nil {
		img, err := req.Image.decode()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		in.Image = img
	}
	if req.Audio != nil {
		in.Audio = req.Audio.decode()
	}
	if req.Video != nil {
		vid, err := req.Video.decode()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		in.Video = vid
	}

	out, err := n.uploader.Upload(ctx, in)
	if err != nil {
		return nil, err
	}
	return graph.Outputs{"url": out.URL}, nil
}
