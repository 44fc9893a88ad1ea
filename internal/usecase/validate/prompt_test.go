package validate

import (
	"reflect"
	"strings"
	"testing"
)

func TestCharCount(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"ab", 1},
		{"hello", 2.5},
		{"中文", 2},
		{"a中", 1.5},
	}
	for _, tc := range tests {
		if got := charCount(tc.text); got != tc.want {
			t.Errorf("charCount(%q) = %v; want %v", tc.text, got, tc.want)
		}
	}
}

func TestCheckBannedWords(t *testing.T) {
	if lerr := checkBannedWords("a clean prompt", "bad;worse"); lerr != nil {
		t.Errorf("expected pass, got %v", lerr)
	}
	if lerr := checkBannedWords("anything", ""); lerr != nil {
		t.Errorf("expected pass on empty list, got %v", lerr)
	}
	if lerr := checkBannedWords("anything", " ; ; "); lerr != nil {
		t.Errorf("expected pass on blank entries, got %v", lerr)
	}

	lerr := checkBannedWords("a worse prompt", "bad;worse")
	if lerr == nil {
		t.Fatal("expected failure, got nil")
	}
	if lerr.Code != "301" {
		t.Errorf("code = %q; want %q", lerr.Code, "301")
	}
	if !strings.Contains(lerr.Message, "worse") {
		t.Errorf("message %q should name the banned word", lerr.Message)
	}
}

func TestCheckCharCount(t *testing.T) {
	// "hello" counts as 2.5
	tests := []struct {
		name     string
		limit    string
		wantCode string
	}{
		{name: "disabled", limit: "0,0", wantCode: ""},
		{name: "within bounds", limit: "1,5", wantCode: ""},
		{name: "too short", limit: "3,0", wantCode: "302"},
		{name: "too long", limit: "0,2", wantCode: "303"},
		{name: "unbounded max passes", limit: "1,0", wantCode: ""},
		{name: "malformed", limit: "abc", wantCode: "417"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lerr := checkCharCount("hello", tc.limit)
			if tc.wantCode == "" {
				if lerr != nil {
					t.Fatalf("expected pass, got %v", lerr)
				}
				return
			}
			if lerr == nil {
				t.Fatalf("expected code %s, got nil", tc.wantCode)
			}
			if lerr.Code != tc.wantCode {
				t.Errorf("code = %q; want %q", lerr.Code, tc.wantCode)
			}
		})
	}
}

func TestDetectLanguages(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"你好", []string{"zh"}},
		{"hello", []string{"en"}},
		{"こんにちは", []string{"ja"}},
		{"안녕하세요", []string{"ko"}},
		{"你好 world", []string{"zh", "en"}},
		{"1234 !?", []string{"unknown"}},
	}
	for _, tc := range tests {
		if got := detectLanguages(tc.text); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("detectLanguages(%q) = %v; want %v", tc.text, got, tc.want)
		}
	}
}

func TestCheckLanguage(t *testing.T) {
	if lerr := checkLanguage("你好", ""); lerr != nil {
		t.Errorf("expected pass on empty list, got %v", lerr)
	}
	if lerr := checkLanguage("你好", "zh,en"); lerr != nil {
		t.Errorf("expected pass, got %v", lerr)
	}
	// any detected script in the list is enough
	if lerr := checkLanguage("你好 world", "en"); lerr != nil {
		t.Errorf("expected pass on partial match, got %v", lerr)
	}

	lerr := checkLanguage("こんにちは", "zh,en")
	if lerr == nil {
		t.Fatal("expected failure, got nil")
	}
	if lerr.Code != "304" {
		t.Errorf("code = %q; want %q", lerr.Code, "304")
	}
	if !strings.Contains(lerr.Message, "ja") {
		t.Errorf("message %q should name the detected script", lerr.Message)
	}
}
