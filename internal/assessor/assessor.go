// Package assessor runs one family of assessments against a document.
package assessor

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/seoscore/internal/assessment"
	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
)

// Family names, also used as the first segment of disable patterns.
const (
	FamilySEO               = "seo"
	FamilyReadability       = "readability"
	FamilyRelatedKeyword    = "relatedKeyword"
	FamilyInclusiveLanguage = "inclusiveLanguage"
)

type entry struct {
	name       string
	assessment assessment.Assessment
}

// Assessor holds an ordered, named list of assessments for one family.
// An Assessor is not safe for concurrent use.
type Assessor struct {
	family   string
	entries  []entry
	disabled []string
	outcomes []assessment.Outcome
}

// New returns an empty Assessor for family.
func New(family string) *Assessor {
	return &Assessor{family: family}
}

// Family returns the family name.
func (a *Assessor) Family() string { return a.family }

// Register appends an assessment under name. Registering an existing name
// replaces that assessment in place, keeping its position.
func (a *Assessor) Register(name string, as assessment.Assessment) {
	for i := range a.entries {
		if a.entries[i].name == name {
			a.entries[i].assessment = as
			return
		}
	}
	a.entries = append(a.entries, entry{name: name, assessment: as})
}

// Names returns the registered names in registration order.
func (a *Assessor) Names() []string {
	names := make([]string, len(a.entries))
	for i, e := range a.entries {
		names[i] = e.name
	}
	return names
}

// Disable skips every assessment whose "family/name" matches one of the
// doublestar patterns. Invalid patterns never match.
func (a *Assessor) Disable(patterns ...string) {
	a.disabled = append(a.disabled, patterns...)
}

func (a *Assessor) isDisabled(name string) bool {
	key := a.family + "/" + name
	for _, p := range a.disabled {
		if ok, err := doublestar.Match(p, key); err == nil && ok {
			return true
		}
	}
	return false
}

// Assess runs every enabled assessment in registration order. Assessments
// that are not applicable to doc are not run. Results of a previous call are
// discarded.
func (a *Assessor) Assess(doc document.Document, caps locale.Capabilities) {
	a.outcomes = a.outcomes[:0]
	for _, e := range a.entries {
		if a.isDisabled(e.name) || !e.assessment.IsApplicable(doc, caps) {
			a.outcomes = append(a.outcomes, assessment.NotApplicable())
			continue
		}
		a.outcomes = append(a.outcomes, e.assessment.Run(doc, caps))
	}
}

// ValidResults returns the scored results of the last Assess call in
// registration order. It never returns nil.
func (a *Assessor) ValidResults() []assessment.Result {
	results := make([]assessment.Result, 0, len(a.outcomes))
	for _, o := range a.outcomes {
		if r, ok := o.Result(); ok {
			results = append(results, r)
		}
	}
	return results
}
