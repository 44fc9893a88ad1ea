package mock

import (
	"context"

	"github.com/AlexXia007/comfyui-nodes/internal/port"
)

// MockUploader implements port.Uploader for tests.
type MockUploader struct {
	In     port.UploadInput
	Out    port.UploadOutput
	Err    error
	Called bool
}

func (m *MockUploader) Upload(ctx context.Context, in port.UploadInput) (port.UploadOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockValidator implements port.InputValidator for tests.
type MockValidator struct {
	In     port.ValidationInput
	Out    port.ValidationOutput
	Err    error
	Called bool
}

func (m *MockValidator) ValidateInput(ctx context.Context, in port.ValidationInput) (port.ValidationOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockMatcher implements port.ErrorMatcher for tests.
type MockMatcher struct {
	In     port.MatchInput
	Out    port.MatchOutput
	Err    error
	Called bool
}

func (m *MockMatcher) MatchError(ctx context.Context, in port.MatchInput) (port.MatchOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}
