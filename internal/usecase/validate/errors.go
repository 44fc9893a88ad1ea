package validate

import "fmt"

// LimitError is one triggered input limit. Code is the status code surfaced
// to the graph host, Message the human-readable cause.
type LimitError struct {
	Code    string
	Message string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("input limit %s: %s", e.Code, e.Message)
}
