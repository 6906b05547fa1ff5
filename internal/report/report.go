// Package report composes the four assessment families into one report.
package report

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/seoscore/internal/assessor"
	"github.com/dotcommander/seoscore/internal/document"
	"github.com/dotcommander/seoscore/internal/locale"
	"github.com/dotcommander/seoscore/internal/scoring"
)

// Report is the per-family result lists for one document. Lists are never
// nil and keep registration order.
type Report struct {
	SEO               []scoring.NormalizedResult `json:"seo"`
	Readability       []scoring.NormalizedResult `json:"readability"`
	RelatedKeyword    []scoring.NormalizedResult `json:"relatedKeyword"`
	InclusiveLanguage []scoring.NormalizedResult `json:"inclusiveLanguage"`
}

// Empty returns a report with every list present and empty.
func Empty() Report {
	return Report{
		SEO:               []scoring.NormalizedResult{},
		Readability:       []scoring.NormalizedResult{},
		RelatedKeyword:    []scoring.NormalizedResult{},
		InclusiveLanguage: []scoring.NormalizedResult{},
	}
}

// Section is one family's list, for callers that iterate the report.
type Section struct {
	Family  string
	Results []scoring.NormalizedResult
}

// Sections returns the families in report order.
func (r Report) Sections() []Section {
	return []Section{
		{assessor.FamilySEO, r.SEO},
		{assessor.FamilyReadability, r.Readability},
		{assessor.FamilyRelatedKeyword, r.RelatedKeyword},
		{assessor.FamilyInclusiveLanguage, r.InclusiveLanguage},
	}
}

func (r *Report) set(family string, results []scoring.NormalizedResult) {
	switch family {
	case assessor.FamilySEO:
		r.SEO = results
	case assessor.FamilyReadability:
		r.Readability = results
	case assessor.FamilyRelatedKeyword:
		r.RelatedKeyword = results
	case assessor.FamilyInclusiveLanguage:
		r.InclusiveLanguage = results
	}
}

// Problems returns a copy of r keeping only results rated below good whose
// identifier matches none of the exclude globs.
func (r Report) Problems(exclude []string) Report {
	out := Empty()
	for _, s := range r.Sections() {
		kept := []scoring.NormalizedResult{}
		for _, res := range s.Results {
			if res.Rating == scoring.RatingGood || excluded(res.Identifier, exclude) {
				continue
			}
			kept = append(kept, res)
		}
		out.set(s.Family, kept)
	}
	return out
}

func excluded(id string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, id); err == nil && ok {
			return true
		}
	}
	return false
}

// DefectError reports an assessment that panicked. It is a bug, never a
// property of the input, and callers must treat it as fatal.
type DefectError struct {
	Family string
	Value  any
	Stack  []byte
}

func (e *DefectError) Error() string {
	return fmt.Sprintf("assessment defect in %s family: %v", e.Family, e.Value)
}

// Options configures a Composer.
type Options struct {
	// Parallel runs the families concurrently.
	Parallel bool
	// Disabled holds "family/name" doublestar globs of assessments to skip.
	Disabled []string
}

// Composer builds reports.
type Composer struct {
	log      *zap.Logger
	opts     Options
	provider *locale.Provider
	families func(locale.Capabilities) []*assessor.Assessor
}

// NewComposer returns a Composer. A nil logger discards logs.
func NewComposer(log *zap.Logger, opts Options) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{log: log, opts: opts, families: assessor.Families}
}

// WithProvider makes the Composer resolve locales through p instead of the
// shared provider.
func (c *Composer) WithProvider(p *locale.Provider) *Composer {
	c.provider = p
	return c
}

func (c *Composer) resolve(code string) locale.Capabilities {
	if c.provider != nil {
		return c.provider.Resolve(code)
	}
	return locale.Resolve(code)
}

// Compose builds a Document from raw and reports on it.
func (c *Composer) Compose(ctx context.Context, raw []byte) (Report, error) {
	doc, err := document.Build(raw)
	if err != nil {
		return Report{}, err
	}
	return c.ComposeDocument(ctx, doc)
}

// ComposeDocument runs every family against doc. The report layout does not
// depend on execution order.
func (c *Composer) ComposeDocument(ctx context.Context, doc document.Document) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	caps := c.resolve(doc.Locale())
	families := c.families(caps)
	results := make([][]scoring.NormalizedResult, len(families))

	c.log.Debug("composing report",
		zap.String("locale", caps.Code()),
		zap.Bool("parallel", c.opts.Parallel),
		zap.Int("families", len(families)))

	runFamily := func(i int) error {
		res, err := c.runFamily(families[i], doc, caps)
		if err != nil {
			return err
		}
		results[i] = res
		return nil
	}

	if c.opts.Parallel {
		g, gCtx := errgroup.WithContext(ctx)
		for i := range families {
			g.Go(func() error {
				if err := gCtx.Err(); err != nil {
					return err
				}
				return runFamily(i)
			})
		}
		if err := g.Wait(); err != nil {
			return Report{}, err
		}
	} else {
		for i := range families {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
			if err := runFamily(i); err != nil {
				return Report{}, err
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	rep := Empty()
	for i, a := range families {
		rep.set(a.Family(), results[i])
	}
	return rep, nil
}

func (c *Composer) runFamily(a *assessor.Assessor, doc document.Document, caps locale.Capabilities) (res []scoring.NormalizedResult, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &DefectError{Family: a.Family(), Value: v, Stack: debug.Stack()}
			c.log.Error("assessment panicked", zap.String("family", a.Family()), zap.Any("panic", v))
		}
	}()

	start := time.Now()
	a.Disable(c.opts.Disabled...)
	a.Assess(doc, caps)
	res = scoring.NormalizeAll(a.ValidResults())

	c.log.Debug("family assessed",
		zap.String("family", a.Family()),
		zap.Int("results", len(res)),
		zap.Duration("elapsed", time.Since(start)))
	return res, nil
}
