package document

import (
	"strings"

	"github.com/dotcommander/seoscore/internal/cue"
)

// InvalidJSONMessage is the error text reported for unparseable requests.
const InvalidJSONMessage = "Invalid JSON input"

// InputError reports a request payload that is not a well-formed JSON object.
type InputError struct {
	Err error
}

func (e *InputError) Error() string { return InvalidJSONMessage }

func (e *InputError) Unwrap() error { return e.Err }

// ValidationError reports a well-formed request whose fields do not match the
// request schema.
type ValidationError struct {
	Violations []cue.ValidationError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "Invalid document: " + strings.Join(parts, "; ")
}
