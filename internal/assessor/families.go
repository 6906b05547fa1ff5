package assessor

import (
	"github.com/dotcommander/seoscore/internal/assessment"
	"github.com/dotcommander/seoscore/internal/locale"
)

// NewSEOAssessor returns the SEO family.
func NewSEOAssessor() *Assessor {
	a := New(FamilySEO)
	registerAll(a,
		assessment.IntroductionKeyword{},
		assessment.KeyphraseLength{},
		assessment.KeyphraseDensity{},
		assessment.MetaDescriptionKeyword{},
		assessment.MetaDescriptionLength{},
		assessment.SubheadingsKeyword{},
		assessment.TextLength{},
		assessment.ExternalLinks{},
		assessment.KeyphraseInSEOTitle{},
		assessment.TitleWidth{},
		assessment.SlugKeyword{},
		assessment.Images{},
		assessment.SingleH1{},
		assessment.KeyphraseDistribution{},
		assessment.TextTitle{},
	)
	return a
}

// NewContentAssessor returns the readability family.
func NewContentAssessor() *Assessor {
	a := New(FamilyReadability)
	registerAll(a,
		assessment.SubheadingsTooLong{},
		assessment.ParagraphTooLong{},
		assessment.SentenceLength{},
		assessment.TransitionWords{},
		assessment.TextPresence{},
		assessment.SentenceBeginnings{},
		assessment.WordComplexity{},
		assessment.TextAlignment{},
	)
	return a
}

// NewRelatedKeywordAssessor returns the related-keyword family. Its keyphrase
// checks count synonyms as keyphrase forms.
func NewRelatedKeywordAssessor() *Assessor {
	a := New(FamilyRelatedKeyword)
	registerAll(a,
		assessment.IntroductionKeyword{UseSynonyms: true},
		assessment.KeyphraseDensity{UseSynonyms: true},
		assessment.MetaDescriptionKeyword{UseSynonyms: true},
		assessment.SynonymCoverage{},
		assessment.KeyphraseProminence{},
	)
	return a
}

// NewInclusiveLanguageAssessor returns one check per inclusive-language term
// of caps. Locales without terms get an empty assessor.
func NewInclusiveLanguageAssessor(caps locale.Capabilities) *Assessor {
	a := New(FamilyInclusiveLanguage)
	for _, term := range caps.InclusiveTerms() {
		registerAll(a, assessment.NewInclusiveLanguage(term))
	}
	return a
}

// Families returns fresh assessors for every family in report order.
func Families(caps locale.Capabilities) []*Assessor {
	return []*Assessor{
		NewSEOAssessor(),
		NewContentAssessor(),
		NewRelatedKeywordAssessor(),
		NewInclusiveLanguageAssessor(caps),
	}
}

func registerAll(a *Assessor, list ...assessment.Assessment) {
	for _, as := range list {
		a.Register(as.Identifier(), as)
	}
}
