package validate

import (
	"fmt"
	"strconv"
	"strings"
)

// bounds is one parsed "min,max" limit. A nil *bounds means the limit is
// disabled; a zero side means that side is unbounded.
type bounds struct {
	min, max int
}

func parseBounds(s string) (*bounds, error) {
	if s == "" || s == "0,0" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("limit %q must be min,max", s)
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("limit %q must be min,max: %v", s, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("limit %q must be min,max: %v", s, err)
	}
	if min == 0 && max == 0 {
		return nil, nil
	}
	return &bounds{min: min, max: max}, nil
}

type ratioBounds struct {
	min, max float64
}

func parseRatioBounds(s string) (*ratioBounds, error) {
	if s == "" || s == "0,0" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("limit %q must be min,max", s)
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("limit %q must be min,max: %v", s, err)
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("limit %q must be min,max: %v", s, err)
	}
	if min == 0 && max == 0 {
		return nil, nil
	}
	return &ratioBounds{min: min, max: max}, nil
}

// parseFixedRatios reads a "w:h,w:h" list into width/height quotients.
// Entries without a colon are skipped; a colon entry that does not parse, or
// one with a zero height, is a configuration error.
func parseFixedRatios(s string) ([]float64, error) {
	if s == "" || s == "0:0" {
		return nil, nil
	}
	var ratios []float64
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if !strings.Contains(item, ":") {
			continue
		}
		parts := strings.SplitN(item, ":", 2)
		w, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("ratio %q must be w:h: %v", item, err)
		}
		h, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("ratio %q must be w:h: %v", item, err)
		}
		if h == 0 {
			return nil, fmt.Errorf("ratio %q divides by zero", item)
		}
		ratios = append(ratios, w/h)
	}
	return ratios, nil
}
