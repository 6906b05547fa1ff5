package assessment

import (
	"strings"

	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
)

const (
	markOpen  = "<yoastmark class='yoast-text-mark'>"
	markClose = "</yoastmark>"
)

// phrase is a keyphrase reduced to comparable stems.
type phrase struct {
	raw     string
	stems   []string // every word, in order
	content []string // stems of non-stop words; all stems if every word is a stop word
}

func newPhrase(caps locale.Capabilities, raw string) phrase {
	words := caps.Words(raw)
	p := phrase{raw: raw}
	for _, w := range words {
		stem := caps.Stem(w)
		p.stems = append(p.stems, stem)
		if !caps.IsStopWord(w) {
			p.content = append(p.content, stem)
		}
	}
	if len(p.content) == 0 {
		p.content = p.stems
	}
	return p
}

func (p phrase) empty() bool { return len(p.stems) == 0 }

// keyphraseForms returns the focus keyphrase and, when withSynonyms is set,
// each synonym as a phrase.
func keyphraseForms(doc document.Document, caps locale.Capabilities, withSynonyms bool) []phrase {
	var forms []phrase
	if kp := newPhrase(caps, doc.Keyword()); !kp.empty() {
		forms = append(forms, kp)
	}
	if withSynonyms {
		for _, s := range doc.Synonyms() {
			if sp := newPhrase(caps, s); !sp.empty() {
				forms = append(forms, sp)
			}
		}
	}
	return forms
}

func stemsOf(caps locale.Capabilities, text string) []string {
	words := caps.Words(text)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = caps.Stem(w)
	}
	return out
}

// countIn counts in-order occurrences of the phrase in text.
func (p phrase) countIn(caps locale.Capabilities, text string) int {
	if p.empty() {
		return 0
	}
	tokens := stemsOf(caps, text)
	count := 0
	for i := 0; i+len(p.stems) <= len(tokens); i++ {
		match := true
		for j, s := range p.stems {
			if tokens[i+j] != s {
				match = false
				break
			}
		}
		if match {
			count++
			i += len(p.stems) - 1
		}
	}
	return count
}

// allContentIn reports whether every content word of the phrase occurs in
// text, in any order.
func (p phrase) allContentIn(caps locale.Capabilities, text string) bool {
	if p.empty() {
		return false
	}
	present := make(map[string]bool)
	for _, s := range stemsOf(caps, text) {
		present[s] = true
	}
	for _, s := range p.content {
		if !present[s] {
			return false
		}
	}
	return true
}

func anyAllContentIn(caps locale.Capabilities, forms []phrase, text string) bool {
	for _, f := range forms {
		if f.allContentIn(caps, text) {
			return true
		}
	}
	return false
}

func totalCount(caps locale.Capabilities, forms []phrase, text string) int {
	total := 0
	for _, f := range forms {
		total += f.countIn(caps, text)
	}
	return total
}

func mark(text string) Mark {
	return Mark{Original: text, Marked: markOpen + text + markClose}
}

// markMatching marks every item for which match returns true. It always
// returns a non-nil slice.
func markMatching(items []string, match func(string) bool) []Mark {
	marks := []Mark{}
	for _, item := range items {
		if match(item) {
			marks = append(marks, mark(item))
		}
	}
	return marks
}

// containsWords reports whether the lowercased word sequence of needle occurs
// in haystack on word boundaries, without stemming.
func containsWords(caps locale.Capabilities, haystack, needle string) bool {
	n := strings.Join(caps.Words(needle), " ")
	if n == "" {
		return false
	}
	h := " " + strings.Join(caps.Words(haystack), " ") + " "
	return strings.Contains(h, " "+n+" ")
}

func wordCount(doc document.Document, caps locale.Capabilities) int {
	return len(caps.Words(doc.PlainText()))
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// joinList renders "a", "a or b", "a, b or c".
func joinList(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " " + conj + " " + items[len(items)-1]
}
