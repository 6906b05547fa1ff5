package assessment

import (
	"fmt"

	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
)

// SynonymCoverage checks how many declared synonyms the text actually uses.
type SynonymCoverage struct{}

func (SynonymCoverage) Identifier() string { return "synonymCoverage" }

func (SynonymCoverage) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasSynonyms() && doc.HasText()
}

func (a SynonymCoverage) Run(doc document.Document, caps locale.Capabilities) Outcome {
	text := doc.PlainText()
	var missing []string
	synonyms := doc.Synonyms()
	for _, s := range synonyms {
		if !newPhrase(caps, s).allContentIn(caps, text) {
			missing = append(missing, s)
		}
	}
	used := len(synonyms) - len(missing)

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	switch {
	case len(missing) == 0:
		r.Score = ScoreGood
		r.Text = "Synonym coverage: All of your synonyms appear in the text. Well done!"
	case used*2 >= len(synonyms):
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Synonym coverage: %d of %d synonyms appear in the text. Consider using %s as well.", used, len(synonyms), joinList(missing, "and"))
	default:
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Synonym coverage: Only %d of %d synonyms appear in the text. Use %s to broaden your topic.", used, len(synonyms), joinList(missing, "and"))
	}
	return Scored(r)
}

// KeyphraseProminence checks that the focus keyphrase is used at least as
// often as its synonyms.
type KeyphraseProminence struct{}

func (KeyphraseProminence) Identifier() string { return "keyphraseProminence" }

func (KeyphraseProminence) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasKeyword() && doc.HasSynonyms() && doc.HasText()
}

func (a KeyphraseProminence) Run(doc document.Document, caps locale.Capabilities) Outcome {
	text := doc.PlainText()
	keyword := newPhrase(caps, doc.Keyword()).countIn(caps, text)
	synonyms := 0
	for _, s := range doc.Synonyms() {
		synonyms += newPhrase(caps, s).countIn(caps, text)
	}

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	switch {
	case keyword == 0:
		r.Score = ScoreBad
		r.Text = "Keyphrase prominence: Your focus keyphrase does not appear in the text; only its synonyms do. Use the keyphrase itself."
	case keyword >= synonyms:
		r.Score = ScoreGood
		r.Text = "Keyphrase prominence: Your focus keyphrase is used more than its synonyms. Good job!"
	default:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Keyphrase prominence: Synonyms appear %d times but the focus keyphrase only %d times. Give the keyphrase more weight.", synonyms, keyword)
	}
	return Scored(r)
}
