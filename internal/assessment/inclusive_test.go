package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
)

func inclusiveTerm(t *testing.T, id string) InclusiveLanguage {
	t.Helper()
	for _, term := range en.InclusiveTerms() {
		if term.ID == id {
			return NewInclusiveLanguage(term)
		}
	}
	t.Fatalf("no inclusive term %q", id)
	return InclusiveLanguage{}
}

func TestInclusiveLanguage(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		text      string
		want      float64
		wantInMsg string
	}{
		{"non-inclusive", "chairman", "The chairman spoke. Nothing else.", ScoreBad, `"chair"`},
		{"plural phrase", "chairman", "Two chairmen met.", ScoreBad, `"chairmen"`},
		{"potentially non-inclusive", "guys", "Hey guys, welcome.", ScoreOK, `"everyone"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := run(t, inclusiveTerm(t, tt.id), document.Fields{Text: tt.text})
			require.True(t, ok)
			assert.Equal(t, tt.id, r.Identifier)
			assert.Equal(t, tt.want, r.Score)
			assert.Contains(t, r.Text, tt.wantInMsg)
			assert.Len(t, r.Marks, 1)
		})
	}
}

func TestInclusiveLanguageNotApplicable(t *testing.T) {
	a := inclusiveTerm(t, "chairman")

	_, ok := run(t, a, document.Fields{Text: "All good here."})
	assert.False(t, ok, "term absent")

	_, ok = run(t, a, document.Fields{Text: "The chairmanship ended."})
	assert.False(t, ok, "matches whole words only")

	_, ok = run(t, a, document.Fields{Text: "The chairman spoke.", Locale: "fa"})
	assert.False(t, ok, "locale without inclusive terms")
	assert.False(t, locale.Resolve("fa").Has(locale.FeatureInclusiveLanguage))
}
