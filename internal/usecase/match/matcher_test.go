package match

import (
	"context"
	"errors"
	"testing"

	"github.com/AlexXia007/comfyui-nodes/internal/port"
)

func TestMatchError_EmptyRules(t *testing.T) {
	svc := NewErrorMatcher()

	// an empty rule set short-circuits before the no-input check
	out, err := svc.MatchError(context.Background(), port.MatchInput{
		Texts:       []string{"", "", ""},
		Rules:       "  ",
		SystemError: true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Code != "0" || out.Message != "no error" {
		t.Errorf("output = %s/%s; want 0/no error", out.Code, out.Message)
	}
}

func TestMatchError_NoInput(t *testing.T) {
	svc := NewErrorMatcher()
	rules := `"upload failed":"500":"storage broke"`

	out, err := svc.MatchError(context.Background(), port.MatchInput{
		Texts:       []string{"", "  ", ""},
		Rules:       rules,
		SystemError: false,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Code != "404" || out.Message != "no input" {
		t.Errorf("output = %s/%s; want 404/no input", out.Code, out.Message)
	}

	_, err = svc.MatchError(context.Background(), port.MatchInput{
		Texts:       []string{"", "", ""},
		Rules:       rules,
		SystemError: true,
	})
	var merr *MatchError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MatchError, got %v", err)
	}
	if merr.Code != "404" {
		t.Errorf("code = %q; want %q", merr.Code, "404")
	}
}

func TestMatchError_ExactMatch(t *testing.T) {
	svc := NewErrorMatcher()
	rules := `"upload failed":"500":"storage broke"`

	// input text is trimmed before comparing
	out, err := svc.MatchError(context.Background(), port.MatchInput{
		Texts: []string{"  upload failed  ", "", ""},
		Rules: rules,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Code != "500" || out.Message != "storage broke" {
		t.Errorf("output = %s/%s; want 500/storage broke", out.Code, out.Message)
	}

	// exact mode does not match substrings
	out, err = svc.MatchError(context.Background(), port.MatchInput{
		Texts: []string{"upload failed again", "", ""},
		Rules: rules,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Code != "0" {
		t.Errorf("code = %q; want %q", out.Code, "0")
	}
}

func TestMatchError_FuzzyMatch(t *testing.T) {
	svc := NewErrorMatcher()

	out, err := svc.MatchError(context.Background(), port.MatchInput{
		Texts:      []string{"upload failed again", "", ""},
		Rules:      `"upload failed":"500":"storage broke"`,
		FuzzyMatch: true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Code != "500" {
		t.Errorf("code = %q; want %q", out.Code, "500")
	}
}

func TestMatchError_SystemError(t *testing.T) {
	svc := NewErrorMatcher()

	out, err := svc.MatchError(context.Background(), port.MatchInput{
		Texts:       []string{"upload failed", "", ""},
		Rules:       `"upload failed":"500":"storage broke"`,
		SystemError: true,
	})
	var merr *MatchError
	if !errors.As(err, &merr) {
		t.Fatalf("expected *MatchError, got %v", err)
	}
	if merr.Code != "500" || merr.Message != "storage broke" {
		t.Errorf("raised = %s/%s; want 500/storage broke", merr.Code, merr.Message)
	}
	if out.Code != "" {
		t.Errorf("expected empty outputs on raise, got %+v", out)
	}
}

func TestMatchError_TextOrderBeatsRuleOrder(t *testing.T) {
	svc := NewErrorMatcher()

	// text1 matches the second rule; the scan never reaches text2
	out, err := svc.MatchError(context.Background(), port.MatchInput{
		Texts: []string{"beta", "alpha", ""},
		Rules: "\"alpha\":\"1\":\"first rule\"\n\"beta\":\"2\":\"second rule\"",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Code != "2" {
		t.Errorf("code = %q; want the rule matched by the first text", out.Code)
	}
}

func TestMatchError_NoMatch(t *testing.T) {
	svc := NewErrorMatcher()

	out, err := svc.MatchError(context.Background(), port.MatchInput{
		Texts:       []string{"all good here", "", ""},
		Rules:       `"upload failed":"500":"storage broke"`,
		SystemError: true,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if out.Code != "0" || out.Message != "no error" {
		t.Errorf("output = %s/%s; want 0/no error", out.Code, out.Message)
	}
}

func TestParseRules(t *testing.T) {
	rules, err := parseRules("\n  \"a\":\"1\":\"first\"  \n\n \"b\" : \"2\" : \"second\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(rules))
	}
	if rules[0].match != "a" || rules[0].code != "1" || rules[0].message != "first" {
		t.Errorf("rule 0 = %+v", rules[0])
	}
	if rules[1].match != "b" || rules[1].code != "2" || rules[1].message != "second" {
		t.Errorf("rule 1 = %+v", rules[1])
	}

	// trailing text after the third field is tolerated
	rules, err = parseRules(`"a":"1":"first" trailing junk`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rules) != 1 || rules[0].message != "first" {
		t.Errorf("rules = %+v", rules)
	}

	if _, err := parseRules("not a rule line"); !errors.Is(err, ErrBadRules) {
		t.Errorf("expected ErrBadRules, got %v", err)
	}
	if _, err := parseRules(`"a":"1"`); !errors.Is(err, ErrBadRules) {
		t.Errorf("expected ErrBadRules for a two-field line, got %v", err)
	}
}
