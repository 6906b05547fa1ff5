package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dotcommander/seoscore/internal/report"
)

// JSONFormatter writes reports as JSON.
type JSONFormatter struct {
	w      io.Writer
	indent bool
}

// NewJSONFormatter creates a JSONFormatter writing to w. With indent set the
// output is pretty-printed with two spaces.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{w: w, indent: indent}
}

// Format writes rep followed by a newline. Marks contain HTML, so HTML
// characters are written as-is.
func (f *JSONFormatter) Format(rep report.Report) error {
	if err := f.encode(rep); err != nil {
		return fmt.Errorf("error writing report: %w", err)
	}
	return nil
}

// ErrorPayload is the body written when a request cannot be processed.
type ErrorPayload struct {
	Error string `json:"error"`
}

// WriteError writes {"error": msg} to w on a single line.
func WriteError(w io.Writer, msg string) error {
	return NewJSONFormatter(w, false).encode(ErrorPayload{Error: msg})
}

func (f *JSONFormatter) encode(v any) error {
	enc := json.NewEncoder(f.w)
	enc.SetEscapeHTML(false)
	if f.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
