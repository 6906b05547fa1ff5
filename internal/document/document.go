// Package document builds the immutable analysis unit shared by every
// assessment in one report run.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dotcommander/seoscore/internal/cue"
	"github.com/dotcommander/seoscore/internal/locale"
)

// Fields are the typed request attributes a Document is built from.
type Fields struct {
	Text        string
	Keyword     string
	Synonyms    []string
	Locale      string
	Title       string
	Description string
	Slug        string
	Permalink   string
}

// Document is text plus metadata. It is immutable once constructed and safe
// to share between goroutines.
type Document struct {
	fields  Fields
	content *content
}

// New builds a Document from typed fields, applying defaults.
func New(f Fields) Document {
	if strings.TrimSpace(f.Locale) == "" {
		f.Locale = locale.DefaultCode
	}
	synonyms := make([]string, 0, len(f.Synonyms))
	for _, s := range f.Synonyms {
		if s = strings.TrimSpace(s); s != "" {
			synonyms = append(synonyms, s)
		}
	}
	f.Synonyms = synonyms
	f.Keyword = strings.TrimSpace(f.Keyword)

	return Document{fields: f, content: parseContent(f.Text)}
}

// ParseRequest decodes a raw request. Anything other than a JSON object is an
// *InputError.
func ParseRequest(raw []byte) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &InputError{Err: errors.New("request is not a JSON object")}
	}
	var fields map[string]any
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, &InputError{Err: err}
	}
	return fields, nil
}

// FromFields validates decoded request fields against the request schema and
// builds a Document. Schema violations are reported as *ValidationError.
func FromFields(fields map[string]any) (Document, error) {
	validator, err := cue.Default()
	if err != nil {
		return Document{}, fmt.Errorf("loading request schema: %w", err)
	}
	violations, err := validator.ValidateRequest(fields)
	if err != nil {
		return Document{}, fmt.Errorf("validating request: %w", err)
	}
	if len(violations) > 0 {
		return Document{}, &ValidationError{Violations: violations}
	}

	return New(Fields{
		Text:        stringField(fields, "text"),
		Keyword:     stringField(fields, "keyword"),
		Synonyms:    synonymsField(fields["synonyms"]),
		Locale:      stringField(fields, "locale"),
		Title:       stringField(fields, "title"),
		Description: stringField(fields, "description"),
		Slug:        stringField(fields, "slug"),
		Permalink:   stringField(fields, "permalink"),
	}), nil
}

// Build parses, validates and constructs a Document from a raw request.
func Build(raw []byte) (Document, error) {
	fields, err := ParseRequest(raw)
	if err != nil {
		return Document{}, err
	}
	return FromFields(fields)
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

// synonymsField accepts a list of strings or the comma-joined form the CMS
// stores.
func synonymsField(v any) []string {
	switch s := v.(type) {
	case string:
		return strings.Split(s, ",")
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

func (d Document) Text() string        { return d.fields.Text }
func (d Document) Keyword() string     { return d.fields.Keyword }
func (d Document) Locale() string      { return d.fields.Locale }
func (d Document) Title() string       { return d.fields.Title }
func (d Document) Description() string { return d.fields.Description }
func (d Document) Slug() string        { return d.fields.Slug }
func (d Document) Permalink() string   { return d.fields.Permalink }

// Synonyms returns a copy of the declared keyword synonyms.
func (d Document) Synonyms() []string {
	return append(make([]string, 0, len(d.fields.Synonyms)), d.fields.Synonyms...)
}

func (d Document) HasKeyword() bool  { return d.fields.Keyword != "" }
func (d Document) HasSynonyms() bool { return len(d.fields.Synonyms) > 0 }

// HasText reports whether the document has any visible text.
func (d Document) HasText() bool { return d.c().plain != "" }

// PlainText is the visible text with markup removed, one block per line.
func (d Document) PlainText() string { return d.c().plain }

func (d Document) Paragraphs() []Paragraph {
	return append(make([]Paragraph, 0, len(d.c().paragraphs)), d.c().paragraphs...)
}

// Introduction is the first paragraph, or empty when there is none.
func (d Document) Introduction() string {
	if ps := d.c().paragraphs; len(ps) > 0 {
		return ps[0].Text
	}
	return ""
}

func (d Document) Headings() []Heading {
	return append(make([]Heading, 0, len(d.c().headings)), d.c().headings...)
}

func (d Document) Images() []Image {
	return append(make([]Image, 0, len(d.c().images)), d.c().images...)
}

func (d Document) Links() []Link {
	return append(make([]Link, 0, len(d.c().links)), d.c().links...)
}

// Subheadings returns h2 and h3 headings in document order.
func (d Document) Subheadings() []Heading {
	out := []Heading{}
	for _, h := range d.c().headings {
		if isSubheading(h.Level) {
			out = append(out, h)
		}
	}
	return out
}

// Sections returns the text before the first subheading followed by the text
// under each subheading.
func (d Document) Sections() []string {
	return append(make([]string, 0, len(d.c().sections)), d.c().sections...)
}

// c guards the zero Document.
func (d Document) c() *content {
	if d.content == nil {
		return &content{}
	}
	return d.content
}
