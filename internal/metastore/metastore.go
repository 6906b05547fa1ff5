// Package metastore persists the SEO metadata of a document keyed by its id:
// meta description, SEO title, focus keyword and keyword synonyms.
package metastore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field keys, shared with the CMS that owns the metadata.
const (
	FieldDescription = "_yoast_wpseo_metadesc"
	FieldTitle       = "_yoast_wpseo_title"
	FieldKeyword     = "_yoast_wpseo_focuskw"
	FieldSynonyms    = "_yoast_wpseo_keywordsynonyms"
)

// ErrNotFound is returned by Get when nothing is stored for an id.
var ErrNotFound = errors.New("metadata not found")

// Meta is the stored metadata of one document.
type Meta struct {
	Description string   `json:"description"`
	Title       string   `json:"title"`
	Keyword     string   `json:"keyword"`
	Synonyms    []string `json:"synonyms"`
}

// Store reads and writes Meta by document id.
type Store interface {
	Get(ctx context.Context, id string) (Meta, error)
	Put(ctx context.Context, id string, m Meta) error
	Close() error
}

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// Sanitize strips tags and collapses whitespace, including line breaks, to
// single spaces.
func Sanitize(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

// toFields converts m to its stored representation. Scalars are sanitized;
// synonyms are encoded as-is.
func toFields(m Meta) (map[string]string, error) {
	synonyms, err := EncodeSynonyms(m.Synonyms)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		FieldDescription: Sanitize(m.Description),
		FieldTitle:       Sanitize(m.Title),
		FieldKeyword:     Sanitize(m.Keyword),
		FieldSynonyms:    synonyms,
	}, nil
}

func fromFields(fields map[string]string) Meta {
	return Meta{
		Description: fields[FieldDescription],
		Title:       fields[FieldTitle],
		Keyword:     fields[FieldKeyword],
		Synonyms:    DecodeSynonyms(fields[FieldSynonyms]),
	}
}

// RequestID extracts the document id from a request. Numeric ids are
// formatted without a fraction. It returns false when there is no usable id.
func RequestID(fields map[string]any) (string, bool) {
	switch v := fields["id"].(type) {
	case string:
		v = strings.TrimSpace(v)
		return v, v != ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}

// Hydrate fills title, description, keyword and synonyms that are missing or
// null in fields from the metadata stored for the request's id. A request
// without an id, or one with nothing stored, is left unchanged.
func Hydrate(ctx context.Context, s Store, fields map[string]any) error {
	id, ok := RequestID(fields)
	if !ok || s == nil {
		return nil
	}
	m, err := s.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading metadata for %s: %w", id, err)
	}

	fill := func(key string, v any, present bool) {
		if cur, ok := fields[key]; (!ok || cur == nil) && present {
			fields[key] = v
		}
	}
	fill("title", m.Title, m.Title != "")
	fill("description", m.Description, m.Description != "")
	fill("keyword", m.Keyword, m.Keyword != "")

	synonyms := make([]any, len(m.Synonyms))
	for i, s := range m.Synonyms {
		synonyms[i] = s
	}
	fill("synonyms", synonyms, len(synonyms) > 0)
	return nil
}
