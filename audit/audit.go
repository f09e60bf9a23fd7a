// Package audit scores a website's readiness for machine consumption in
// two dimensions: content extractability for generative answer engines
// (GEO) and machine-actionable integration surfaces for autonomous agents
// (AEO). The pipeline is a pure, single-shot computation over
// already-fetched inputs; fetching, persistence, and reporting live with
// the callers.
package audit

import (
	"fmt"
	"sync"
	"time"
)

// Narrator supplies the free-text insights narrative for a finished
// analysis. The audit treats the result as an opaque string.
type Narrator interface {
	Narrate(analysis *SiteAnalysis) string
}

// Analyzer runs the full audit pipeline.
type Analyzer struct {
	workers  int
	narrator Narrator
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers bounds the per-page analysis fan-out.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithNarrator attaches the insights collaborator.
func WithNarrator(n Narrator) Option {
	return func(a *Analyzer) {
		a.narrator = n
	}
}

// New creates an Analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{workers: 8}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeSite runs the complete pipeline: classify the site, analyze every
// page, aggregate, run the archetype's integration rubric, score, and rank
// recommendations. The only failure is an empty page set; everything else
// degrades to low scores.
func (a *Analyzer) AnalyzeSite(pages []PageSnapshot, resources SiteResources) (*SiteAnalysis, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("analyze %s: %w", resources.Origin, ErrNoPages)
	}

	// Parse every page once; page analysis is independent per page, so it
	// fans out across a bounded worker pool.
	contexts := make([]*pageContext, len(pages))
	pageAnalyses := make([]PageAnalysis, len(pages))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, a.workers)
	for i := range pages {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			ctx := newPageContext(pages[i])
			contexts[i] = ctx
			pageAnalyses[i] = analyzePage(ctx)
		}(i)
	}
	wg.Wait()

	site := newSiteContext(contexts, resources)
	archetype := classify(site)

	content, err := Aggregate(pageAnalyses)
	if err != nil {
		return nil, err
	}

	integration := analyzeIntegration(site, archetype)
	scores := scoreSite(content, integration, archetype)

	analysis := &SiteAnalysis{
		URL:             resources.Origin,
		AnalyzedAt:      time.Now().UTC(),
		PageCount:       len(pages),
		Archetype:       archetype,
		Pages:           pageAnalyses,
		GEOScore:        scores.GEO,
		GEOGrade:        gradeFor(scores.GEO),
		AEOScore:        scores.AEO,
		AEOGrade:        gradeFor(scores.AEO),
		OverallScore:    scores.Overall,
		OverallGrade:    gradeFor(scores.Overall),
		Content:         content,
		Integration:     integration,
		Recommendations: recommend(content, integration, archetype),
	}
	if a.narrator != nil {
		analysis.Insights = a.narrator.Narrate(analysis)
	}
	return analysis, nil
}

// Classify exposes archetype detection on its own, for callers that want
// the archetype without paying for a full analysis.
func (a *Analyzer) Classify(pages []PageSnapshot, resources SiteResources) Archetype {
	contexts := make([]*pageContext, len(pages))
	for i := range pages {
		contexts[i] = newPageContext(pages[i])
	}
	return classify(newSiteContext(contexts, resources))
}
