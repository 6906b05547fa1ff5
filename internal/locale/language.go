package locale

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball"
)

// languageData mirrors one embedded data/<code>.yaml file.
type languageData struct {
	Code             string          `yaml:"code"`
	Direction        string          `yaml:"direction"`
	MaxSentenceWords int             `yaml:"maxSentenceWords"`
	Vowels           string          `yaml:"vowels"`
	SilentFinalE     bool            `yaml:"silentFinalE"`
	ComplexWord      complexWordSpec `yaml:"complexWord"`
	Stemmer          string          `yaml:"stemmer"`  // snowball algorithm name
	Suffixes         []string        `yaml:"suffixes"` // used when no stemmer is set
	StopWords        []string        `yaml:"stopWords"`
	TransitionWords  []string        `yaml:"transitionWords"`
	Inclusive        []InclusiveTerm `yaml:"inclusive"`
}

type complexWordSpec struct {
	MinSyllables int `yaml:"minSyllables"`
	MinLength    int `yaml:"minLength"`
}

// language is the Capabilities implementation backed by languageData.
type language struct {
	data        languageData
	stopWords   map[string]bool
	transitions []string // padded with spaces for whole-word matching
	features    map[Feature]bool
}

func newLanguage(data languageData) *language {
	l := &language{
		data:      data,
		stopWords: make(map[string]bool, len(data.StopWords)),
		features:  make(map[Feature]bool),
	}
	if l.data.Direction == "" {
		l.data.Direction = "ltr"
	}
	if l.data.MaxSentenceWords <= 0 {
		l.data.MaxSentenceWords = 20
	}
	for _, w := range data.StopWords {
		l.stopWords[strings.ToLower(w)] = true
	}
	for _, tw := range data.TransitionWords {
		l.transitions = append(l.transitions, " "+strings.ToLower(tw)+" ")
	}

	l.features[FeatureSyllables] = data.Vowels != ""
	l.features[FeatureStemming] = data.Stemmer != "" || len(data.Suffixes) > 0
	l.features[FeatureTransitionWords] = len(data.TransitionWords) > 0
	l.features[FeatureWordComplexity] = data.Vowels != "" && data.ComplexWord.MinSyllables > 0
	l.features[FeatureInclusiveLanguage] = len(data.Inclusive) > 0
	return l
}

func (l *language) Code() string { return l.data.Code }
func (l *language) Direction() string { return l.data.Direction }
func (l *language) Has(f Feature) bool { return l.features[f] }
func (l *language) MaxSentenceWords() int { return l.data.MaxSentenceWords }

func (l *language) InclusiveTerms() []InclusiveTerm {
	out := make([]InclusiveTerm, len(l.data.Inclusive))
	copy(out, l.data.Inclusive)
	return out
}

func (l *language) Words(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "-'\u200c")
		if f == "" {
			continue
		}
		words = append(words, strings.ToLower(f))
	}
	return words
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) ||
		r == '\'' || r == '-' || r == '\u200c'
}

func isSentenceTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '؟', '…':
		return true
	}
	return false
}

func (l *language) Sentences(text string) []string {
	var sentences []string
	var b strings.Builder
	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			flush()
			continue
		}
		b.WriteRune(r)
		if isSentenceTerminal(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			flush()
		}
	}
	flush()
	return sentences
}

func (l *language) Syllables(word string) int {
	if !l.features[FeatureSyllables] {
		return 0
	}
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune(l.data.Vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if l.data.SilentFinalE && count > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		count--
	}
	if count == 0 && word != "" {
		count = 1
	}
	return count
}

func (l *language) Stem(word string) string {
	word = strings.ToLower(word)
	if l.data.Stemmer != "" {
		if stem, err := snowball.Stem(word, l.data.Stemmer, true); err == nil && stem != "" {
			return stem
		}
	}
	return l.stripSuffix(word)
}

// stripSuffix removes the first listed suffix that leaves at least three
// runes.
func (l *language) stripSuffix(word string) string {
	for _, suffix := range l.data.Suffixes {
		if !strings.HasSuffix(word, suffix) {
			continue
		}
		stem := strings.TrimSuffix(word, suffix)
		if utf8.RuneCountInString(stem) >= 3 {
			return stem
		}
	}
	return word
}

func (l *language) IsStopWord(word string) bool {
	return l.stopWords[strings.ToLower(word)]
}

func (l *language) IsTransitionSentence(sentence string) bool {
	if len(l.transitions) == 0 {
		return false
	}
	padded := " " + strings.Join(l.Words(sentence), " ") + " "
	for _, tw := range l.transitions {
		if strings.Contains(padded, tw) {
			return true
		}
	}
	return false
}

func (l *language) IsComplexWord(word string) bool {
	if !l.features[FeatureWordComplexity] || l.IsStopWord(word) {
		return false
	}
	spec := l.data.ComplexWord
	return utf8.RuneCountInString(word) >= spec.MinLength && l.Syllables(word) >= spec.MinSyllables
}
