// Package locale resolves the language-specific helpers that content
// assessments rely on: tokenizers, syllable counting, stemming, stop and
// transition word lists, and inclusive-language terms.
//
// Language data is embedded as YAML, one file per supported language.
// Unknown languages resolve to DefaultCode.
package locale

// DefaultCode is the language used when a request names no locale or one
// that has no language data.
const DefaultCode = "en"

// Feature names an optional linguistic capability. Assessments that depend on
// a feature are not applicable for locales that lack it.
type Feature string

const (
	FeatureSyllables         Feature = "syllables"
	FeatureStemming          Feature = "stemming"
	FeatureTransitionWords   Feature = "transitionWords"
	FeatureWordComplexity    Feature = "wordComplexity"
	FeatureInclusiveLanguage Feature = "inclusiveLanguage"
)

// Severity levels for inclusive-language terms.
const (
	SeverityNonInclusive            = "nonInclusive"
	SeverityPotentiallyNonInclusive = "potentiallyNonInclusive"
)

// InclusiveTerm is a phrase family flagged by the inclusive-language checks.
type InclusiveTerm struct {
	ID           string   `yaml:"id"`
	Phrases      []string `yaml:"phrases"`
	Alternatives []string `yaml:"alternatives"`
	Severity     string   `yaml:"severity"`
}

// Capabilities is the per-locale helper bundle handed to every assessment.
// Implementations are immutable and safe for concurrent use.
type Capabilities interface {
	// Code returns the normalized language code (e.g. "en").
	Code() string
	// Direction returns "ltr" or "rtl".
	Direction() string
	Has(f Feature) bool

	// Words splits text into lowercased word tokens.
	Words(text string) []string
	// Sentences splits text into trimmed sentences, keeping terminal punctuation.
	Sentences(text string) []string
	// Syllables counts syllables in a word. Returns 0 without FeatureSyllables.
	Syllables(word string) int
	// Stem reduces a lowercased word to its stem. Identity without FeatureStemming.
	Stem(word string) string

	IsStopWord(word string) bool
	IsTransitionSentence(sentence string) bool
	IsComplexWord(word string) bool

	// MaxSentenceWords is the recommended upper bound on sentence length.
	MaxSentenceWords() int
	InclusiveTerms() []InclusiveTerm
}
