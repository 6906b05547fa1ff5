package cue

import (
	"strings"
	"testing"
)

// TestNewValidator tests the Validator constructor
func TestNewValidator(t *testing.T) {
	v := NewValidator()
	if v == nil {
		t.Fatal("NewValidator returned nil")
	}
	if v.ctx == nil {
		t.Error("Validator.ctx is nil")
	}
	if len(v.schemas) != 0 {
		t.Errorf("Expected empty schemas map, got %d entries", len(v.schemas))
	}
}

// TestLoadSchemas tests loading embedded CUE schemas
func TestLoadSchemas(t *testing.T) {
	v := NewValidator()
	if err := v.LoadSchemas(); err != nil {
		t.Fatalf("LoadSchemas failed: %v", err)
	}
	if _, ok := v.schemas["request"]; !ok {
		t.Error("Expected schema \"request\" to be loaded")
	}
}

func TestValidateRequest(t *testing.T) {
	v, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	tests := []struct {
		name     string
		data     map[string]any
		wantErr  bool
		wantPath string
	}{
		{
			name: "empty object",
			data: map[string]any{},
		},
		{
			name: "full request",
			data: map[string]any{
				"text":        "<p>SEO is important.</p>",
				"keyword":     "SEO",
				"synonyms":    []any{"search", "ranking"},
				"locale":      "en_US",
				"title":       "Why SEO matters",
				"description": "A short description.",
				"slug":        "why-seo-matters",
				"permalink":   "https://example.com/why-seo-matters",
				"id":          float64(42),
			},
		},
		{
			name: "synonyms as string",
			data: map[string]any{"synonyms": "fast, quick"},
		},
		{
			name: "null fields",
			data: map[string]any{"text": nil, "locale": nil},
		},
		{
			name: "unknown keys allowed",
			data: map[string]any{"text": "x", "status": "draft"},
		},
		{
			name:     "numeric text",
			data:     map[string]any{"text": float64(5)},
			wantErr:  true,
			wantPath: "text",
		},
		{
			name:     "object keyword",
			data:     map[string]any{"keyword": map[string]any{"a": "b"}},
			wantErr:  true,
			wantPath: "keyword",
		},
		{
			name:     "synonyms with numbers",
			data:     map[string]any{"synonyms": []any{"ok", float64(3)}},
			wantErr:  true,
			wantPath: "synonyms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs, err := v.ValidateRequest(tt.data)
			if err != nil {
				t.Fatalf("ValidateRequest() unexpected error: %v", err)
			}
			if (len(errs) > 0) != tt.wantErr {
				t.Fatalf("ValidateRequest() errors = %v, wantErr %v", errs, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			found := false
			for _, e := range errs {
				if strings.HasPrefix(e.Path, tt.wantPath) || strings.Contains(e.String(), tt.wantPath) {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error mentioning %q, got %v", tt.wantPath, errs)
			}
		})
	}
}

func TestValidationErrorString(t *testing.T) {
	if got := (ValidationError{Path: "text", Message: "conflicting values"}).String(); got != "text: conflicting values" {
		t.Errorf("String() = %q", got)
	}
	if got := (ValidationError{Message: "bad"}).String(); got != "bad" {
		t.Errorf("String() = %q", got)
	}
}
