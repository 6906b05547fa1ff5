package cue

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError is a single schema violation.
type ValidationError struct {
	Path    string // dotted field path, empty for the document root
	Message string
}

func (e ValidationError) String() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Validator handles CUE validation
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
	mu      sync.Mutex // cue.Context is not safe for concurrent use
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas loads all CUE schema files from the embedded filesystem
func (v *Validator) LoadSchemas() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		content, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", entry.Name(), err)
		}

		inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
		if instErr := inst.Err(); instErr != nil {
			return fmt.Errorf("compiling schema %s: %w", entry.Name(), instErr)
		}

		// request.cue -> request
		v.schemas[strings.TrimSuffix(entry.Name(), ".cue")] = inst.Value()
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas found")
	}
	return nil
}

var shared = sync.OnceValues(func() (*Validator, error) {
	v := NewValidator()
	if err := v.LoadSchemas(); err != nil {
		return nil, err
	}
	return v, nil
})

// Default returns a process-wide validator with all embedded schemas loaded.
func Default() (*Validator, error) {
	return shared()
}

// ValidateRequest validates decoded request fields against #Request.
func (v *Validator) ValidateRequest(data map[string]any) ([]ValidationError, error) {
	return v.validateAgainstSchema("request", data)
}

// validateAgainstSchema unifies data with the #<Name> definition of a schema
// and reports every violation.
func (v *Validator) validateAgainstSchema(schemaName string, data map[string]any) ([]ValidationError, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	schema, ok := v.schemas[schemaName]
	if !ok {
		return nil, fmt.Errorf("schema %q not loaded", schemaName)
	}

	defPath := cue.ParsePath("#" + strings.ToUpper(schemaName[:1]) + schemaName[1:])
	def := schema.LookupPath(defPath)
	if !def.Exists() {
		return nil, fmt.Errorf("schema %q has no %s definition", schemaName, defPath)
	}

	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	unified := def.Unify(dataValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return extractErrors(err), nil
	}
	return nil, nil
}

// extractErrors flattens a CUE error list into path/message pairs.
func extractErrors(err error) []ValidationError {
	var out []ValidationError
	seen := make(map[string]bool)
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		ve := ValidationError{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		}
		if key := ve.String(); !seen[key] {
			seen[key] = true
			out = append(out, ve)
		}
	}
	if len(out) == 0 {
		out = append(out, ValidationError{Message: err.Error()})
	}
	return out
}
