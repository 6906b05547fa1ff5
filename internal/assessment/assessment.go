// Package assessment defines the scoring checks run against a document.
//
// Every check implements Assessment. The Assessor gates Run behind
// IsApplicable; Run may still decline with NotApplicable when a check only
// reports problems. Scores use the closed range [0, 9].
package assessment

import (
	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
)

// Score anchors shared by all checks.
const (
	ScoreGood    = 9
	ScoreOK      = 6
	ScoreBad     = 3
	ScoreVeryBad = 1
)

// Edit field names point an editor at the input that needs changing.
const (
	EditKeyphrase       = "keyphrase"
	EditMetaDescription = "meta description"
	EditSEOTitle        = "SEO title"
	EditSlug            = "slug"
	EditTitle           = "title"
)

// Mark is one highlighted region of the text.
type Mark struct {
	Original string `json:"original"`
	Marked   string `json:"marked"`
}

// Result is the output of one applicable assessment.
type Result struct {
	Identifier    string
	Score         float64
	Text          string
	Marks         []Mark
	EditFieldName string
}

// Outcome is either a scored Result or "not applicable".
type Outcome struct {
	result Result
	scored bool
}

// Scored wraps a result.
func Scored(r Result) Outcome {
	return Outcome{result: r, scored: true}
}

// NotApplicable is the outcome of a check that has nothing to report.
func NotApplicable() Outcome {
	return Outcome{}
}

// Result returns the scored result and true, or false when not applicable.
func (o Outcome) Result() (Result, bool) {
	return o.result, o.scored
}

// Assessment is one scoring check.
type Assessment interface {
	Identifier() string
	// IsApplicable must be pure.
	IsApplicable(doc document.Document, caps locale.Capabilities) bool
	// Run is only called when IsApplicable returned true and must not panic
	// for any Document built by the document package.
	Run(doc document.Document, caps locale.Capabilities) Outcome
}
