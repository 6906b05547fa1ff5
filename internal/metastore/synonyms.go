package metastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const synonymSeparator = ", "

// EncodeSynonyms stores synonyms as a one-element JSON array holding the
// comma-joined list. Non-ASCII characters are written unescaped. A synonym
// that itself contains ", " will not survive a round trip.
func EncodeSynonyms(synonyms []string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]string{strings.Join(synonyms, synonymSeparator)}); err != nil {
		return "", fmt.Errorf("error encoding synonyms: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// DecodeSynonyms reverses EncodeSynonyms. A one-element array is split on
// ", " (an empty element yields no synonyms). Any other array is returned
// element by element and a bare non-empty string is returned as the only
// synonym. Anything else yields an empty list. The result is never nil.
func DecodeSynonyms(raw string) []string {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return []string{}
	}
	switch v := decoded.(type) {
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	case []any:
		if len(v) == 1 {
			joined := toString(v[0])
			if joined == "" {
				return []string{}
			}
			return strings.Split(joined, synonymSeparator)
		}
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, toString(item))
		}
		return out
	}
	return []string{}
}

func toString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
