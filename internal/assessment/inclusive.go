package assessment

import (
	"fmt"

	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
)

// InclusiveLanguage flags one family of non-inclusive phrases.
type InclusiveLanguage struct {
	term locale.InclusiveTerm
}

// NewInclusiveLanguage returns the check for term.
func NewInclusiveLanguage(term locale.InclusiveTerm) InclusiveLanguage {
	return InclusiveLanguage{term: term}
}

func (a InclusiveLanguage) Identifier() string { return a.term.ID }

func (a InclusiveLanguage) IsApplicable(doc document.Document, caps locale.Capabilities) bool {
	if !caps.Has(locale.FeatureInclusiveLanguage) || !doc.HasText() {
		return false
	}
	return a.matches(caps, doc.PlainText())
}

func (a InclusiveLanguage) Run(doc document.Document, caps locale.Capabilities) Outcome {
	sentences := caps.Sentences(doc.PlainText())
	marks := markMatching(sentences, func(s string) bool { return a.matches(caps, s) })
	if len(marks) == 0 {
		return NotApplicable()
	}

	found := a.term.Phrases[0]
	for _, p := range a.term.Phrases {
		if containsWords(caps, doc.PlainText(), p) {
			found = p
			break
		}
	}
	alternatives := joinList(quoted(a.term.Alternatives), "or")

	r := Result{Identifier: a.Identifier(), Marks: marks}
	if a.term.Severity == locale.SeverityPotentiallyNonInclusive {
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Be careful when using %q as it is potentially exclusionary. Unless you are sure that the group you refer to only consists of the people this term describes, use an alternative, such as %s.", found, alternatives)
	} else {
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Avoid using %q as it is potentially harmful. Consider using an alternative, such as %s.", found, alternatives)
	}
	return Scored(r)
}

func (a InclusiveLanguage) matches(caps locale.Capabilities, text string) bool {
	for _, p := range a.term.Phrases {
		if containsWords(caps, text, p) {
			return true
		}
	}
	return false
}

func quoted(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
