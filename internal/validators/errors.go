package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/proxy-desk-bot/models"
)

var (
	// ErrInputFormat marks text that does not match the pending prompt.
	ErrInputFormat = errors.New("invalid input format")
	// ErrUnsupportedPrompt is returned for prompt kinds Parse cannot handle.
	ErrUnsupportedPrompt = errors.New("unsupported prompt kind")
)

// FormatError describes why the text was rejected and which format the
// prompt expects. It unwraps to [ErrInputFormat].
type FormatError struct {
	Kind     models.PromptKind
	Reason   string
	Expected string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s (expected %s)", ErrInputFormat, e.Reason, e.Expected)
}

func (e *FormatError) Unwrap() error {
	return ErrInputFormat
}

func formatError(kind models.PromptKind, reason string, args ...any) *FormatError {
	return &FormatError{
		Kind:     kind,
		Reason:   fmt.Sprintf(reason, args...),
		Expected: ExpectedFormat(kind),
	}
}
