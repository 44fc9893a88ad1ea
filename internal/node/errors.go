package node

import (
	"errors"
	"fmt"

	"github.com/AlexXia007/comfyui-nodes/internal/validation"
)

// ErrInvalidInput reports a run request whose inputs fail decoding or
// validation.
var ErrInvalidInput = errors.New("invalid node input")

// invalidInput wraps a decode or validation failure. Validation failures are
// reported as a compact slot-to-rule map so the graph host can show which
// widget is wrong.
func invalidInput(err error) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, validation.Message(err))
}
