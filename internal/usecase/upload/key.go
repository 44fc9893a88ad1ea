package upload

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlexXia007/comfyui-nodes/internal/uuid"
)

// BuildKey derives the date-partitioned object key: prefix, then YYYY/MM/DD,
// then the file name, joined with "/". The prefix and name are trimmed of
// slash edges, the name is reduced to its final path element, and an empty
// name falls back to a generated "file_<short>.bin".
func BuildKey(prefix string, date time.Time, name string) string {
	datePath := fmt.Sprintf("%04d/%02d/%02d", date.Year(), int(date.Month()), date.Day())

	base := strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	base = strings.Trim(base, "/")
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if base == "" {
		base = fmt.Sprintf("file_%s.bin", uuid.NewUUID().Short())
	}

	segments := make([]string, 0, 3)
	for _, seg := range []string{prefix, datePath, base} {
		if seg == "" {
			continue
		}
		segments = append(segments, strings.Trim(seg, "/\\"))
	}
	return strings.Join(segments, "/")
}
