package match

import (
	"context"
	"regexp"
	"strings"

	"github.com/AlexXia007/comfyui-nodes/internal/port"
)

// ruleRe matches one rule line: "match text":"error code":"error message".
// Anchored at the start only, trailing text after the third field is
// tolerated.
var ruleRe = regexp.MustCompile(`^\s*"([^"]*)"\s*:\s*"([^"]*)"\s*:\s*"([^"]*)"\s*`)

type rule struct {
	match   string
	code    string
	message string
}

type matcherSrv struct{}

// NewErrorMatcher builds the rule matcher. It holds no state; all behavior
// comes from the per-run input.
func NewErrorMatcher() port.ErrorMatcher {
	return &matcherSrv{}
}

// MatchError scans the input texts against the configured rules, texts in
// order first, then rules in order, and stops at the first match. A match or
// the all-empty-input case is raised as a *MatchError when SystemError is
// set, otherwise reported through the output pair.
func (s *matcherSrv) MatchError(ctx context.Context, in port.MatchInput) (port.MatchOutput, error) {
	if strings.TrimSpace(in.Rules) == "" {
		return noError(), nil
	}

	rules, err := parseRules(in.Rules)
	if err != nil {
		return port.MatchOutput{}, err
	}
	if len(rules) == 0 {
		return noError(), nil
	}

	allEmpty := true
	for _, text := range in.Texts {
		if strings.TrimSpace(text) != "" {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		if in.SystemError {
			return port.MatchOutput{}, &MatchError{Code: "404", Message: "no input"}
		}
		return port.MatchOutput{Code: "404", Message: "no input"}, nil
	}

	for _, text := range in.Texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		for _, r := range rules {
			var matched bool
			if in.FuzzyMatch {
				matched = strings.Contains(text, r.match)
			} else {
				matched = r.match == text
			}
			if matched {
				if in.SystemError {
					return port.MatchOutput{}, &MatchError{Code: r.code, Message: r.message}
				}
				return port.MatchOutput{Code: r.code, Message: r.message}, nil
			}
		}
	}

	return noError(), nil
}

func noError() port.MatchOutput {
	return port.MatchOutput{Code: "0", Message: "no error"}
}

func parseRules(raw string) ([]rule, error) {
	var rules []rule
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := ruleRe.FindStringSubmatch(line)
		if m == nil {
			return nil, ErrBadRules
		}
		rules = append(rules, rule{match: m[1], code: m[2], message: m[3]})
	}
	return rules, nil
}
