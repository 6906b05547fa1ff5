package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dotcommander/seoscore/internal/document"
)

func TestSynonymCoverage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		synonyms []string
		want     float64
	}{
		{"all", "Fast and quick.", []string{"fast", "quick"}, ScoreGood},
		{"half", "Fast only.", []string{"fast", "quick"}, ScoreOK},
		{"few", "Fast only.", []string{"fast", "quick", "rapid"}, ScoreBad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := run(t, SynonymCoverage{}, document.Fields{Text: tt.text, Synonyms: tt.synonyms})
			require.True(t, ok)
			assert.Equal(t, tt.want, r.Score)
		})
	}

	_, ok := run(t, SynonymCoverage{}, document.Fields{Text: "No synonyms."})
	assert.False(t, ok)
}

func TestKeyphraseProminence(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"Car car auto.", ScoreGood},
		{"Car auto auto.", ScoreOK},
		{"Auto only.", ScoreBad},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			r, ok := run(t, KeyphraseProminence{}, document.Fields{Text: tt.text, Keyword: "car", Synonyms: []string{"auto"}})
			require.True(t, ok)
			assert.Equal(t, tt.want, r.Score)
		})
	}
}

func TestRelatedVariantsCountSynonyms(t *testing.T) {
	f := document.Fields{
		Text:        repeat("filler", 99) + " auto.",
		Keyword:     "car",
		Synonyms:    []string{"auto"},
		Description: "An auto guide.",
	}

	r, ok := run(t, KeyphraseDensity{UseSynonyms: true}, f)
	require.True(t, ok)
	assert.Equal(t, float64(ScoreGood), r.Score)

	r, ok = run(t, KeyphraseDensity{}, f)
	require.True(t, ok)
	assert.Equal(t, float64(ScoreVeryBad), r.Score)

	r, ok = run(t, MetaDescriptionKeyword{UseSynonyms: true}, f)
	require.True(t, ok)
	assert.Equal(t, float64(ScoreGood), r.Score)
}
