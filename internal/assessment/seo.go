package assessment

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
)

// Keyphrase density bounds, in percent of all words.
const (
	minDensity         = 0.5
	maxDensity         = 3.0
	minDensityWords    = 100
	maxKeyphraseWords  = 4
	metaDescriptionMin = 120
	metaDescriptionMax = 156
	titleWidthMin      = 40
	titleWidthMax      = 60
	recommendedWords   = 300
	distributionMinSen = 15
)

// IntroductionKeyword checks that the keyphrase appears in the first
// paragraph, ideally within one sentence.
type IntroductionKeyword struct {
	UseSynonyms bool
}

func (a IntroductionKeyword) Identifier() string { return "introductionKeyword" }

func (a IntroductionKeyword) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	if a.UseSynonyms && !doc.HasSynonyms() {
		return false
	}
	return doc.HasKeyword() && doc.HasText()
}

func (a IntroductionKeyword) Run(doc document.Document, caps locale.Capabilities) Outcome {
	forms := keyphraseForms(doc, caps, a.UseSynonyms)
	intro := doc.Introduction()
	sentences := caps.Sentences(intro)

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	for _, s := range sentences {
		if anyAllContentIn(caps, forms, s) {
			r.Score = ScoreGood
			r.Text = "Keyphrase in introduction: Well done!"
			r.Marks = append(r.Marks, mark(s))
			return Scored(r)
		}
	}
	if anyAllContentIn(caps, forms, intro) {
		r.Score = ScoreOK
		r.Text = "Keyphrase in introduction: Your keyphrase or its synonyms appear in the first paragraph, but not within one sentence. Fix that!"
		return Scored(r)
	}
	r.Score = ScoreBad
	r.Text = "Keyphrase in introduction: Your keyphrase or its synonyms do not appear in the first paragraph. Make sure the topic is clear immediately."
	return Scored(r)
}

// KeyphraseLength checks the number of content words in the focus keyphrase.
type KeyphraseLength struct{}

func (KeyphraseLength) Identifier() string { return "keyphraseLength" }

func (KeyphraseLength) IsApplicable(document.Document, locale.Capabilities) bool { return true }

func (a KeyphraseLength) Run(doc document.Document, caps locale.Capabilities) Outcome {
	r := Result{Identifier: a.Identifier(), Marks: []Mark{}, EditFieldName: EditKeyphrase}
	kp := newPhrase(caps, doc.Keyword())
	n := len(kp.content)

	switch {
	case kp.empty():
		r.Score = ScoreVeryBad
		r.Text = "Keyphrase length: No focus keyphrase was set for this page. Set a keyphrase in order to calculate your SEO score."
	case n <= maxKeyphraseWords:
		r.Score = ScoreGood
		r.Text = "Keyphrase length: Good job!"
	case n <= 2*maxKeyphraseWords:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Keyphrase length: The keyphrase contains %d content words. That's more than the recommended maximum of %d content words. Make it shorter!", n, maxKeyphraseWords)
	default:
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Keyphrase length: The keyphrase contains %d content words. That's way more than the recommended maximum of %d content words. Make it shorter!", n, maxKeyphraseWords)
	}
	return Scored(r)
}

// KeyphraseDensity checks how often the keyphrase occurs relative to text
// length.
type KeyphraseDensity struct {
	UseSynonyms bool
}

func (a KeyphraseDensity) Identifier() string { return "keyphraseDensity" }

func (a KeyphraseDensity) IsApplicable(doc document.Document, caps locale.Capabilities) bool {
	if a.UseSynonyms && !doc.HasSynonyms() {
		return false
	}
	return doc.HasKeyword() && wordCount(doc, caps) >= minDensityWords
}

func (a KeyphraseDensity) Run(doc document.Document, caps locale.Capabilities) Outcome {
	forms := keyphraseForms(doc, caps, a.UseSynonyms)
	text := doc.PlainText()
	words := wordCount(doc, caps)
	count := totalCount(caps, forms, text)
	density := percent(count, words)
	minCount := int(math.Ceil(minDensity / 100 * float64(words)))
	maxCount := int(math.Floor(maxDensity / 100 * float64(words)))

	r := Result{Identifier: a.Identifier()}
	r.Marks = markMatching(caps.Sentences(text), func(s string) bool {
		return totalCount(caps, forms, s) > 0
	})

	switch {
	case count == 0:
		r.Score = ScoreVeryBad
		r.Text = fmt.Sprintf("Keyphrase density: The keyphrase was found 0 times. That's less than the recommended minimum of %d times for a text of this length. Focus on your keyphrase!", minCount)
	case density < minDensity:
		r.Score = 4
		r.Text = fmt.Sprintf("Keyphrase density: The keyphrase was found %d times. That's less than the recommended minimum of %d times for a text of this length. Focus on your keyphrase!", count, minCount)
	case density <= maxDensity:
		r.Score = ScoreGood
		r.Text = fmt.Sprintf("Keyphrase density: The keyphrase was found %d times. This is great!", count)
	default:
		r.Score = 2
		r.Text = fmt.Sprintf("Keyphrase density: The keyphrase was found %d times. That's more than the recommended maximum of %d times for a text of this length. Don't overoptimize!", count, maxCount)
	}
	return Scored(r)
}

// MetaDescriptionKeyword checks that the meta description mentions the
// keyphrase once or twice.
type MetaDescriptionKeyword struct {
	UseSynonyms bool
}

func (a MetaDescriptionKeyword) Identifier() string { return "metaDescriptionKeyword" }

func (a MetaDescriptionKeyword) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	if a.UseSynonyms && !doc.HasSynonyms() {
		return false
	}
	return doc.HasKeyword() && strings.TrimSpace(doc.Description()) != ""
}

func (a MetaDescriptionKeyword) Run(doc document.Document, caps locale.Capabilities) Outcome {
	forms := keyphraseForms(doc, caps, a.UseSynonyms)
	matches := 0
	for _, s := range caps.Sentences(doc.Description()) {
		if anyAllContentIn(caps, forms, s) {
			matches++
		}
	}

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}, EditFieldName: EditMetaDescription}
	switch {
	case matches == 0:
		r.Score = ScoreBad
		r.Text = "Keyphrase in meta description: The meta description has been specified, but it does not contain the keyphrase. Fix that!"
	case matches <= 2:
		r.Score = ScoreGood
		r.Text = "Keyphrase in meta description: Keyphrase or synonym appear in the meta description. Well done!"
	default:
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Keyphrase in meta description: The meta description contains the keyphrase %d times, which is over the advised maximum of 2 times. Limit that!", matches)
	}
	return Scored(r)
}

// MetaDescriptionLength checks the meta description fits search result
// snippets.
type MetaDescriptionLength struct{}

func (MetaDescriptionLength) Identifier() string { return "metaDescriptionLength" }

func (MetaDescriptionLength) IsApplicable(document.Document, locale.Capabilities) bool { return true }

func (a MetaDescriptionLength) Run(doc document.Document, _ locale.Capabilities) Outcome {
	n := utf8.RuneCountInString(strings.TrimSpace(doc.Description()))
	r := Result{Identifier: a.Identifier(), Marks: []Mark{}, EditFieldName: EditMetaDescription}

	switch {
	case n == 0:
		r.Score = ScoreVeryBad
		r.Text = "Meta description length: No meta description has been specified. Search engines will display copy from the page instead. Make sure to write one!"
	case n < metaDescriptionMin:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Meta description length: The meta description is too short (under %d characters). Up to %d characters are available. Use the space!", metaDescriptionMin, metaDescriptionMax)
	case n > metaDescriptionMax:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Meta description length: The meta description is over %d characters. To ensure the entire description will be visible, you should reduce its length!", metaDescriptionMax)
	default:
		r.Score = ScoreGood
		r.Text = "Meta description length: Well done!"
	}
	return Scored(r)
}

// SubheadingsKeyword checks that a reasonable share of H2/H3 subheadings
// reflect the keyphrase.
type SubheadingsKeyword struct{}

func (SubheadingsKeyword) Identifier() string { return "subheadingsKeyword" }

func (SubheadingsKeyword) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasKeyword() && len(doc.Subheadings()) > 0
}

func (a SubheadingsKeyword) Run(doc document.Document, caps locale.Capabilities) Outcome {
	forms := keyphraseForms(doc, caps, true)
	subheadings := doc.Subheadings()
	var texts []string
	for _, h := range subheadings {
		texts = append(texts, h.Text)
	}
	r := Result{Identifier: a.Identifier()}
	r.Marks = markMatching(texts, func(s string) bool { return anyAllContentIn(caps, forms, s) })

	matches := len(r.Marks)
	pct := percent(matches, len(subheadings))
	switch {
	case matches == 0:
		r.Score = ScoreBad
		r.Text = "Keyphrase in subheading: Use more keyphrases or synonyms in your H2 and H3 subheadings!"
	case len(subheadings) == 1 || (pct >= 30 && pct <= 75):
		r.Score = ScoreGood
		r.Text = fmt.Sprintf("Keyphrase in subheading: %d of your H2 and H3 subheadings reflect the topic of your copy. Good job!", matches)
	case pct > 75:
		r.Score = ScoreBad
		r.Text = "Keyphrase in subheading: More than 75% of your H2 and H3 subheadings reflect the topic of your copy. That's too much. Don't over-optimize!"
	default:
		r.Score = ScoreOK
		r.Text = "Keyphrase in subheading: Use more keyphrases or synonyms in your H2 and H3 subheadings!"
	}
	return Scored(r)
}

// TextLength checks the total word count.
type TextLength struct{}

func (TextLength) Identifier() string { return "textLength" }

func (TextLength) IsApplicable(document.Document, locale.Capabilities) bool { return true }

func (a TextLength) Run(doc document.Document, caps locale.Capabilities) Outcome {
	n := wordCount(doc, caps)
	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}

	switch {
	case n < 100:
		r.Score = ScoreVeryBad
		r.Text = fmt.Sprintf("Text length: The text contains %d words. This is far below the recommended minimum of %d words. Add more content.", n, recommendedWords)
	case n < 200:
		r.Score = 2
		r.Text = fmt.Sprintf("Text length: The text contains %d words. This is below the recommended minimum of %d words. Add more content.", n, recommendedWords)
	case n < 250:
		r.Score = ScoreBad
		r.Text = fmt.Sprintf("Text length: The text contains %d words. This is below the recommended minimum of %d words. Add more content.", n, recommendedWords)
	case n < recommendedWords:
		r.Score = ScoreOK
		r.Text = fmt.Sprintf("Text length: The text contains %d words. This is slightly below the recommended minimum of %d words. Add a bit more copy.", n, recommendedWords)
	default:
		r.Score = ScoreGood
		r.Text = fmt.Sprintf("Text length: The text contains %d words. Good job!", n)
	}
	return Scored(r)
}

// ExternalLinks checks for followed links to other sites.
type ExternalLinks struct{}

func (ExternalLinks) Identifier() string { return "externalLinks" }

func (ExternalLinks) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasText()
}

func (a ExternalLinks) Run(doc document.Document, _ locale.Capabilities) Outcome {
	ownHost := ""
	if u, err := url.Parse(doc.Permalink()); err == nil {
		ownHost = strings.ToLower(u.Host)
	}

	external, followed := 0, 0
	for _, l := range doc.Links() {
		u, err := url.Parse(strings.TrimSpace(l.Href))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			continue
		}
		if ownHost != "" && strings.ToLower(u.Host) == ownHost {
			continue
		}
		external++
		if !strings.Contains(strings.ToLower(l.Rel), "nofollow") {
			followed++
		}
	}

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	switch {
	case external == 0:
		r.Score = ScoreBad
		r.Text = "Outbound links: No outbound links appear in this page. Add some where appropriate."
	case followed == 0:
		r.Score = 7
		r.Text = "Outbound links: All outbound links on this page are nofollowed. Add some normal links."
	default:
		r.Score = 8
		r.Text = "Outbound links: Good job!"
	}
	return Scored(r)
}

// KeyphraseInSEOTitle checks that the SEO title starts with the exact
// keyphrase.
type KeyphraseInSEOTitle struct{}

func (KeyphraseInSEOTitle) Identifier() string { return "keyphraseInSEOTitle" }

func (KeyphraseInSEOTitle) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasKeyword() && strings.TrimSpace(doc.Title()) != ""
}

func (a KeyphraseInSEOTitle) Run(doc document.Document, caps locale.Capabilities) Outcome {
	title := strings.Join(caps.Words(doc.Title()), " ")
	keyword := strings.Join(caps.Words(doc.Keyword()), " ")
	r := Result{Identifier: a.Identifier(), Marks: []Mark{}, EditFieldName: EditSEOTitle}

	switch {
	case keyword != "" && (title == keyword || strings.HasPrefix(title, keyword+" ")):
		r.Score = ScoreGood
		r.Text = "Keyphrase in SEO title: The exact match of the focus keyphrase appears at the beginning of the SEO title. Good job!"
	case containsWords(caps, doc.Title(), doc.Keyword()):
		r.Score = ScoreOK
		r.Text = "Keyphrase in SEO title: The exact match of the focus keyphrase appears in the SEO title, but not at the beginning. Move it to the beginning for the best results."
	case newPhrase(caps, doc.Keyword()).allContentIn(caps, doc.Title()):
		r.Score = ScoreOK
		r.Text = "Keyphrase in SEO title: Does not contain the exact match. Try to write the exact match of your keyphrase in the SEO title and put it at the beginning of the title."
	default:
		r.Score = 2
		r.Text = "Keyphrase in SEO title: Not all the words from your keyphrase appear in the SEO title. For the best SEO results write the exact match of your keyphrase in the SEO title, and put the keyphrase at the beginning of the title."
	}
	return Scored(r)
}

// TitleWidth approximates the rendered width of the SEO title by its
// character count.
type TitleWidth struct{}

func (TitleWidth) Identifier() string { return "titleWidth" }

func (TitleWidth) IsApplicable(document.Document, locale.Capabilities) bool { return true }

func (a TitleWidth) Run(doc document.Document, _ locale.Capabilities) Outcome {
	n := utf8.RuneCountInString(strings.TrimSpace(doc.Title()))
	r := Result{Identifier: a.Identifier(), Marks: []Mark{}, EditFieldName: EditSEOTitle}

	switch {
	case n == 0:
		r.Score = ScoreVeryBad
		r.Text = "SEO title width: Please create an SEO title."
	case n > titleWidthMax:
		r.Score = ScoreBad
		r.Text = "SEO title width: The SEO title is wider than the viewable limit. Try to make it shorter."
	case n < titleWidthMin:
		r.Score = ScoreOK
		r.Text = "SEO title width: The SEO title is too short. Use the space to add keyphrase variations or create compelling call-to-action copy."
	default:
		r.Score = ScoreGood
		r.Text = "SEO title width: Good job!"
	}
	return Scored(r)
}

// SlugKeyword checks that the slug carries the keyphrase.
type SlugKeyword struct{}

func (SlugKeyword) Identifier() string { return "slugKeyword" }

func (SlugKeyword) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasKeyword() && strings.TrimSpace(doc.Slug()) != ""
}

func (a SlugKeyword) Run(doc document.Document, caps locale.Capabilities) Outcome {
	slug := strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(doc.Slug())
	present := make(map[string]bool)
	for _, s := range stemsOf(caps, slug) {
		present[s] = true
	}
	kp := newPhrase(caps, doc.Keyword())
	found := 0
	for _, s := range kp.content {
		if present[s] {
			found++
		}
	}

	r := Result{Identifier: a.Identifier(), Marks: []Mark{}, EditFieldName: EditSlug}
	switch {
	case len(kp.content) > 0 && found == len(kp.content):
		r.Score = ScoreGood
		r.Text = "Keyphrase in slug: Great work!"
	case found*2 > len(kp.content):
		r.Score = ScoreOK
		r.Text = "Keyphrase in slug: (Part of) your keyphrase does not appear in the slug. Change that!"
	default:
		r.Score = ScoreBad
		r.Text = "Keyphrase in slug: (Part of) your keyphrase does not appear in the slug. Change that!"
	}
	return Scored(r)
}

// Images checks that the text has images and that their alt text reflects
// the keyphrase.
type Images struct{}

func (Images) Identifier() string { return "images" }

func (Images) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return doc.HasText()
}

func (a Images) Run(doc document.Document, caps locale.Capabilities) Outcome {
	images := doc.Images()
	r := Result{Identifier: a.Identifier(), Marks: []Mark{}}
	if len(images) == 0 {
		r.Score = ScoreBad
		r.Text = "Image keyphrase: No images appear on this page. Add some as appropriate!"
		return Scored(r)
	}

	forms := keyphraseForms(doc, caps, true)
	withAlt, withKeyphrase := 0, 0
	for _, img := range images {
		if strings.TrimSpace(img.Alt) == "" {
			continue
		}
		withAlt++
		if anyAllContentIn(caps, forms, img.Alt) {
			withKeyphrase++
		}
	}

	switch {
	case len(forms) > 0 && withKeyphrase > 0:
		r.Score = ScoreGood
		r.Text = "Image keyphrase: Good job!"
	case len(forms) > 0:
		r.Score = ScoreOK
		r.Text = "Image keyphrase: Images on this page do not have alt attributes that reflect the topic of your text. Add your keyphrase or synonyms to the alt tags of relevant images!"
	case withAlt > 0:
		r.Score = ScoreGood
		r.Text = "Image alt attributes: Good job!"
	default:
		r.Score = ScoreOK
		r.Text = "Image alt attributes: Images on this page have no alt attributes. Add some!"
	}
	return Scored(r)
}

// SingleH1 flags texts that use more than one H1.
type SingleH1 struct{}

func (SingleH1) Identifier() string { return "singleH1" }

func (SingleH1) IsApplicable(doc document.Document, _ locale.Capabilities) bool {
	return len(h1Texts(doc)) > 1
}

func (a SingleH1) Run(doc document.Document, _ locale.Capabilities) Outcome {
	return Scored(Result{
		Identifier: a.Identifier(),
		Score:      ScoreVeryBad,
		Text:       "Single title: H1s should only be used as your main title. Find all H1s in your text that aren't your main title and change them to a lower heading level!",
		Marks:      markMatching(h1Texts(doc), func(string) bool { return true }),
	})
}

func h1Texts(doc document.Document) []string {
	var out []string
	for _, h := range doc.Headings() {
		if h.Level == 1 {
			out = append(out, h.Text)
		}
	}
	return out
}

// KeyphraseDistribution checks that the keyphrase or its synonyms occur in
// every third of a long text.
type KeyphraseDistribution struct{}

func (KeyphraseDistribution) Identifier() string { return "keyphraseDistribution" }

func (KeyphraseDistribution) IsApplicable(doc document.Document, caps locale.Capabilities) bool {
	return doc.HasKeyword() && len(caps.Sentences(doc.PlainText())) >= distributionMinSen
}

func (a KeyphraseDistribution) Run(doc document.Document, caps locale.Capabilities) Outcome {
	forms := keyphraseForms(doc, caps, true)
	sentences := caps.Sentences(doc.PlainText())
	hits := make([]bool, len(sentences))
	for i, s := range sentences {
		hits[i] = anyAllContentIn(caps, forms, s)
	}

	covered := 0
	for part := 0; part < 3; part++ {
		lo := part * len(sentences) / 3
		hi := (part + 1) * len(sentences) / 3
		for i := lo; i < hi; i++ {
			if hits[i] {
				covered++
				break
			}
		}
	}

	r := Result{Identifier: a.Identifier()}
	r.Marks = markMatching(sentences, func(s string) bool { return anyAllContentIn(caps, forms, s) })
	switch covered {
	case 3:
		r.Score = ScoreGood
		r.Text = "Keyphrase distribution: Good job!"
	case 2:
		r.Score = ScoreOK
		r.Text = "Keyphrase distribution: Uneven. Some parts of your text do not contain the keyphrase or its synonyms. Distribute them more evenly."
	default:
		r.Score = ScoreVeryBad
		r.Text = "Keyphrase distribution: Very uneven. Large parts of your text do not contain the keyphrase or its synonyms. Distribute them more evenly."
	}
	return Scored(r)
}

// TextTitle checks that the page has a title.
type TextTitle struct{}

func (TextTitle) Identifier() string { return "textTitleAssessment" }

func (TextTitle) IsApplicable(document.Document, locale.Capabilities) bool { return true }

func (a TextTitle) Run(doc document.Document, _ locale.Capabilities) Outcome {
	r := Result{Identifier: a.Identifier(), Marks: []Mark{}, EditFieldName: EditTitle}
	if strings.TrimSpace(doc.Title()) != "" {
		r.Score = ScoreGood
		r.Text = "Title: Your page has a title. Well done!"
	} else {
		r.Score = ScoreVeryBad
		r.Text = "Title: Your page does not have a title yet. Add one!"
	}
	return Scored(r)
}
