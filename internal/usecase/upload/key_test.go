package upload

import (
	"regexp"
	"testing"
	"time"
)

func TestBuildKey(t *testing.T) {
	date := time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		prefix string
		file   string
		want   string
	}{
		{
			name:   "plain prefix",
			prefix: "uploads",
			file:   "demo.mp4",
			want:   "uploads/2024/03/05/demo.mp4",
		},
		{
			name:   "trailing slash trimmed",
			prefix: "uploads/",
			file:   "demo.mp4",
			want:   "uploads/2024/03/05/demo.mp4",
		},
		{
			name:   "nested prefix kept",
			prefix: "assets/raw/",
			file:   "a.png",
			want:   "assets/raw/2024/03/05/a.png",
		},
		{
			name:   "empty prefix dropped",
			prefix: "",
			file:   "demo.mp4",
			want:   "2024/03/05/demo.mp4",
		},
		{
			name:   "name reduced to final path element",
			prefix: "uploads",
			file:   `dir\sub/asset.png`,
			want:   "uploads/2024/03/05/asset.png",
		},
		{
			name:   "name slash edges trimmed",
			prefix: "uploads",
			file:   "asset.png/",
			want:   "uploads/2024/03/05/asset.png",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildKey(tc.prefix, date, tc.file); got != tc.want {
				t.Errorf("BuildKey(%q, _, %q) = %q; want %q", tc.prefix, tc.file, got, tc.want)
			}
		})
	}
}

func TestBuildKey_EmptyNameFallsBack(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	want := regexp.MustCompile(`^uploads/2024/03/05/file_[0-9a-f]{8}\.bin$`)
	for _, name := range []string{"   ", "///", `\`} {
		got := BuildKey("uploads", date, name)
		if !want.MatchString(got) {
			t.Errorf("BuildKey(_, _, %q) = %q; want match for %s", name, got, want)
		}
	}
}

func TestBuildKey_SingleDigitDatePadded(t *testing.T) {
	date := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)

	got := BuildKey("p", date, "f.bin")
	if got != "p/2025/01/07/f.bin" {
		t.Errorf("BuildKey = %q; want %q", got, "p/2025/01/07/f.bin")
	}
}
