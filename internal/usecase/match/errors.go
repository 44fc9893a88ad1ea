package match

import (
	"errors"
	"fmt"
)

// ErrBadRules reports an unparseable rule line.
var ErrBadRules = errors.New(`bad error rules: every line must be "match text":"error code":"error message"`)

// MatchError is a matched rule surfaced as a run failure.
type MatchError struct {
	Code    string
	Message string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("error code %s: %s", e.Code, e.Message)
}
