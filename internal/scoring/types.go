// Package scoring maps raw assessment scores to ratings and produces the
// result shape that leaves the process.
package scoring

import "github.com/dotcommander/seoscore/internal/assessment"

// Rating is the coarse category derived from a score.
type Rating string

const (
	RatingFeedback Rating = "feedback"
	RatingBad      Rating = "bad"
	RatingOK       Rating = "ok"
	RatingGood     Rating = "good"
)

// Upper bounds (inclusive) of the bad and ok ratings.
const (
	badMax = 4
	okMax  = 7
)

// NormalizedResult is one assessment result as reported to callers.
type NormalizedResult struct {
	Identifier    string            `json:"_identifier"`   // assessment identifier
	Score         float64           `json:"score"`         // 0-9
	Text          string            `json:"text"`          // feedback shown to the author
	Marks         []assessment.Mark `json:"marks"`         // never null
	EditFieldName string            `json:"editFieldName"` // input to edit, may be empty
	Rating        Rating            `json:"rating"`        // derived from Score
}

// ScoreToRating returns the rating for score. Every real number maps to
// exactly one rating and higher scores never map to a worse rating.
func ScoreToRating(score float64) Rating {
	switch {
	case score <= 0:
		return RatingFeedback
	case score <= badMax:
		return RatingBad
	case score <= okMax:
		return RatingOK
	default:
		return RatingGood
	}
}

// Normalize projects r into its reported shape and attaches the rating.
func Normalize(r assessment.Result) NormalizedResult {
	marks := r.Marks
	if marks == nil {
		marks = []assessment.Mark{}
	}
	return NormalizedResult{
		Identifier:    r.Identifier,
		Score:         r.Score,
		Text:          r.Text,
		Marks:         marks,
		EditFieldName: r.EditFieldName,
		Rating:        ScoreToRating(r.Score),
	}
}

// NormalizeAll normalizes results, preserving order. It never returns nil.
func NormalizeAll(results []assessment.Result) []NormalizedResult {
	out := make([]NormalizedResult, 0, len(results))
	for _, r := range results {
		out = append(out, Normalize(r))
	}
	return out
}
