package assessment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
)

const (
	sectionWordsGood      = 300
	sectionWordsOK        = 350
	paragraphWordsGood    = 150
	paragraphWordsOK      = 200
	longSentencesGood     = 25.0
	longSentencesOK       = 30.0
	transitionMinWords    = 200
	transitionGood        = 30.0
	transitionOK          = 20.0
	textPresenceMinWords  = 50
	repeatedBeginningsMax = 3
	complexWordsMax       = 10.0
	alignmentMinChars     = 50
)

// SubheadingsTooLong checks the longest stretch of text between subheadings.
type SubheadingsTooLong struct{}

func (SubheadingsTooLong) Identifier() string { return "subheadingsTooLong" }

func (SubheadingsTooLong) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasText()
}

func (a SubheadingsTooLong) Run(doc document.Document, caps locale.Capabilities) Outcome {
	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	total := wordCount(doc, caps)

	if len(doc.Subheadings()) == 0 {
		if total < sectionWordsGood {
			r.Score = ScoreGood
			r.Text = "Subheading distribution: You are not using any subheadings, but your text is short enough and probably doesn't need them."
		} else {
			r.Score = 2
			r.Text = "Subheading distribution: You are not using any subheadings, although your text is rather long. Try and add some subheadings."
		}
		return Scored(r)
	}

	// The first section is the introduction and is not measured.
	sections := doc.Sections()
	longest, longestText := 0, ""
	for i, s := range sections {
		if i == 0 && len(sections) > 1 {
			continue
		}
		if n := len(caps.Words(s)); n > longest {
			longest, longestText = n, s
		}
	}

	switch {
	case longest <= sectionWordsGood:
		r.Score = ScoreGood
		r.Text = "Subheading distribution: Great job!"
	case longest <= sectionWordsOK:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Subheading distribution: A section of your text is longer than %d words and is not separated by any subheadings. Add subheadings to improve readability.", sectionWordsGood)
		r.Marks = append(r.Marks, mark(longestText))
	default:
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Subheading distribution: A section of your text is longer than %d words and is not separated by any subheadings. Add subheadings to improve readability.", sectionWordsGood)
		r.Marks = append(r.Marks, mark(longestText))
	}
	return Scored(r)
}

// ParagraphTooLong checks paragraph lengths.
type ParagraphTooLong struct{}

func (ParagraphTooLong) Identifier() string { return "textParagraphTooLong" }

func (ParagraphTooLong) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return len(doc.Paragraphs()) > 0
}

func (a ParagraphTooLong) Run(doc document.Document, caps locale.Capabilities) Outcome {
	var texts []string
	longest := 0
	for _, p := range doc.Paragraphs() {
		texts = append(texts, p.Text)
		if n := len(caps.Words(p.Text)); n > longest {
			longest = n
		}
	}

	r := Result{Identifier: a.Identifier()}
	r.Marks = markMatching(texts, func(s string) bool { return len(caps.Words(s)) > paragraphWordsGood })
	switch {
	case longest <= paragraphWordsGood:
		r.Score = ScoreGood
		r.Text = "Paragraph length: None of the paragraphs are too long. Great job!"
	case longest <= paragraphWordsOK:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Paragraph length: %d of the paragraphs contains more than the recommended maximum of %d words. Shorten your paragraphs!", len(r.Marks), paragraphWordsGood)
	default:
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Paragraph length: %d of the paragraphs contains more than the recommended maximum of %d words. Shorten your paragraphs!", len(r.Marks), paragraphWordsGood)
	}
	return Scored(r)
}

// SentenceLength checks the share of sentences longer than the locale's
// recommended maximum.
type SentenceLength struct{}

func (SentenceLength) Identifier() string { return "textSentenceLength" }

func (SentenceLength) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasText()
}

func (a SentenceLength) Run(doc document.Document, caps locale.Capabilities) Outcome {
	sentences := caps.Sentences(doc.PlainText())
	limit := caps.MaxSentenceWords()
	isLong := func(s string) bool { return len(caps.Words(s)) > limit }

	r := Result{Identifier: a.Identifier()}
	r.Marks = markMatching(sentences, isLong)
	pct := percent(len(r.Marks), len(sentences))

	switch {
	case pct <= longSentencesGood:
		r.Score = ScoreGood
		r.Text = "Sentence length: Great!"
	case pct <= longSentencesOK:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Sentence length: %.1f%% of the sentences contain more than %d words, which is more than the recommended maximum of %.0f%%. Try to shorten the sentences.", pct, limit, longSentencesGood)
	default:
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Sentence length: %.1f%% of the sentences contain more than %d words, which is more than the recommended maximum of %.0f%%. Try to shorten the sentences.", pct, limit, longSentencesGood)
	}
	return Scored(r)
}

// TransitionWords checks the share of sentences containing a transition word.
type TransitionWords struct{}

func (TransitionWords) Identifier() string { return "textTransitionWords" }

func (TransitionWords) IsApplicable(doc document.Document, caps locale.Capabilities) bool {
	return caps.Has(locale.FeatureTransitionWords) && wordCount(doc, caps) >= transitionMinWords
}

func (a TransitionWords) Run(doc document.Document, caps locale.Capabilities) Outcome {
	sentences := caps.Sentences(doc.PlainText())
	with := 0
	for _, s := range sentences {
		if caps.IsTransitionSentence(s) {
			with++
		}
	}
	pct := percent(with, len(sentences))

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	switch {
	case pct >= transitionGood:
		r.Score = ScoreGood
		r.Text = "Transition words: Well done!"
	case pct >= transitionOK:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Transition words: Only %.1f%% of the sentences contain transition words, which is not enough. Use more of them.", pct)
	default:
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Transition words: Only %.1f%% of the sentences contain transition words, which is not enough. Use more of them.", pct)
	}
	return Scored(r)
}

// TextPresence flags texts too short to assess.
type TextPresence struct{}

func (TextPresence) Identifier() string { return "textPresence" }

func (TextPresence) IsApplicable(document.Document, locale.Capabilities) bool { return true }

func (a TextPresence) Run(doc document.Document, caps locale.Capabilities) Outcome {
	if wordCount(doc, caps) >= textPresenceMinWords {
		return NotApplicable()
	}
	return Scored(Result{
		Identifier: a.Identifier(),
		Score:      ScoreBad,
		Text:       "Not enough content: Please add some content to enable a good analysis.",
		Marks:      []Mark{},
	})
}

// SentenceBeginnings flags runs of consecutive sentences that start with the
// same word.
type SentenceBeginnings struct{}

func (SentenceBeginnings) Identifier() string { return "sentenceBeginnings" }

func (SentenceBeginnings) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasText()
}

func (a SentenceBeginnings) Run(doc document.Document, caps locale.Capabilities) Outcome {
	sentences := caps.Sentences(doc.PlainText())
	first := make([]string, len(sentences))
	for i, s := range sentences {
		if w := caps.Words(s); len(w) > 0 {
			first[i] = w[0]
		}
	}

	flagged := make(map[int]bool)
	runs := 0
	for i := 0; i < len(first); {
		j := i + 1
		for j < len(first) && first[i] != "" && first[j] == first[i] {
			j++
		}
		if j-i >= repeatedBeginningsMax {
			runs++
			for k := i; k < j; k++ {
				flagged[k] = true
			}
		}
		i = j
	}

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	for i, s := range sentences {
		if flagged[i] {
			r.Marks = append(r.Marks, mark(s))
		}
	}
	if runs == 0 {
		r.Score = ScoreGood
		r.Text = "Consecutive sentences: There is enough variety in your sentences. That's great!"
		return Scored(r)
	}
	r.Score = ScoreBad
	r.Text = fmt.Sprintf("Consecutive sentences: The text contains %d or more consecutive sentences starting with the same word. Try to mix things up!", repeatedBeginningsMax)
	return Scored(r)
}

// WordComplexity checks the share of long, many-syllabled words.
type WordComplexity struct{}

func (WordComplexity) Identifier() string { return "wordComplexity" }

func (WordComplexity) IsApplicable(doc document.Document, caps locale.Capabilities) bool {
	return caps.Has(locale.FeatureWordComplexity) && doc.HasText()
}

func (a WordComplexity) Run(doc document.Document, caps locale.Capabilities) Outcome {
	words := caps.Words(doc.PlainText())
	hard := 0
	for _, w := range words {
		if caps.IsComplexWord(w) {
			hard++
		}
	}
	pct := percent(hard, len(words))

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	if pct < complexWordsMax {
		r.Score = ScoreGood
		r.Text = "Word complexity: You are not using too many complex words, which makes your text easy to read. Good job!"
		return Scored(r)
	}
	r.Score = ScoreOK
	r.Text = fmt.Sprintf("Word complexity: %.2f%% of the words in your text are considered complex. Try to use shorter and more familiar words to improve readability.", pct)
	r.Marks = markMatching(caps.Sentences(doc.PlainText()), func(s string) bool {
		for _, w := range caps.Words(s) {
			if caps.IsComplexWord(w) {
				return true
			}
		}
		return false
	})
	return Scored(r)
}

// TextAlignment flags long centered paragraphs.
type TextAlignment struct{}

func (TextAlignment) Identifier() string { return "textAlignment" }

func (TextAlignment) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return len(doc.Paragraphs()) > 0
}

func (a TextAlignment) Run(doc document.Document, caps locale.Capabilities) Outcome {
	var centered []string
	for _, p := range doc.Paragraphs() {
		if p.Align == "center" && utf8.RuneCountInString(strings.TrimSpace(p.Text)) >= alignmentMinChars {
			centered = append(centered, p.Text)
		}
	}
	if len(centered) == 0 {
		return NotApplicable()
	}

	side := "left-aligned"
	if caps.Direction() == "rtl" {
		side = "right-aligned"
	}
	return Scored(Result{
		Identifier: a.Identifier(),
		Score:      2,
		Text:       fmt.Sprintf("Alignment: There are long sections of center-aligned text. We recommend making them %s.", side),
		Marks:      markMatching(centered, func(string) bool { return true }),
	})
}
