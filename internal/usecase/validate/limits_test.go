package validate

import (
	"testing"
)

func TestParseBounds(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    *bounds
		wantErr bool
	}{
		{name: "empty disables", in: "", want: nil},
		{name: "zero pair disables", in: "0,0", want: nil},
		{name: "parsed zero pair disables", in: " 0 , 0 ", want: nil},
		{name: "plain pair", in: "1,5", want: &bounds{min: 1, max: 5}},
		{name: "spaces tolerated", in: " 10 , 500 ", want: &bounds{min: 10, max: 500}},
		{name: "unbounded max", in: "3,0", want: &bounds{min: 3, max: 0}},
		{name: "not a number", in: "a,5", wantErr: true},
		{name: "single value", in: "5", wantErr: true},
		{name: "three values", in: "1,2,3", wantErr: true},
		{name: "float rejected", in: "1.5,2", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseBounds(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected disabled limit, got %+v", got)
				}
				return
			}
			if got == nil || got.min != tc.want.min || got.max != tc.want.max {
				t.Errorf("parseBounds(%q) = %+v; want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRatioBounds(t *testing.T) {
	got, err := parseRatioBounds("0.1,0.9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.min != 0.1 || got.max != 0.9 {
		t.Errorf("parseRatioBounds = %+v; want {0.1 0.9}", got)
	}

	if got, err := parseRatioBounds("0,0"); err != nil || got != nil {
		t.Errorf("expected disabled limit, got %+v, %v", got, err)
	}
	if _, err := parseRatioBounds("x,0.9"); err == nil {
		t.Error("expected error, got nil")
	}
}

func TestParseFixedRatios(t *testing.T) {
	got, err := parseFixedRatios("4:3,16:9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 ratios, got %v", got)
	}
	if got[0] != 4.0/3.0 || got[1] != 16.0/9.0 {
		t.Errorf("ratios = %v; want [4/3 16/9]", got)
	}

	if got, err := parseFixedRatios("0:0"); err != nil || got != nil {
		t.Errorf("expected disabled limit, got %v, %v", got, err)
	}
	if got, err := parseFixedRatios(""); err != nil || got != nil {
		t.Errorf("expected disabled limit, got %v, %v", got, err)
	}

	// entries without a colon are skipped
	if got, err := parseFixedRatios("wide"); err != nil || len(got) != 0 {
		t.Errorf("expected no ratios, got %v, %v", got, err)
	}

	if _, err := parseFixedRatios("a:b"); err == nil {
		t.Error("expected error for a malformed entry, got nil")
	}
	if _, err := parseFixedRatios("4:0"); err == nil {
		t.Error("expected error for a zero height, got nil")
	}
}
