package audit

import (
	"errors"
	"math"
	"sort"
)

// ErrNoPages is the one fatal condition in the pipeline: there is nothing
// to aggregate when the crawl produced zero pages.
var ErrNoPages = errors.New("audit: no pages to analyze")

// maxRecsPerCategory caps deduplicated recommendation strings kept per
// aggregated category.
const maxRecsPerCategory = 5

// Aggregate folds per-page content profiles into one site-level profile.
// A single page passes through unchanged. Across multiple pages, category
// scores are averaged, findings are deduplicated by check name keeping the
// worst observed outcome, and the contributing page URLs are recorded.
func Aggregate(pages []PageAnalysis) (ContentProfile, error) {
	if len(pages) == 0 {
		return ContentProfile{}, ErrNoPages
	}
	if len(pages) == 1 {
		return pages[0].Content, nil
	}

	var out ContentProfile
	for _, cat := range contentCategories {
		*cat.get(&out) = aggregateCategory(cat, pages)
	}
	return out, nil
}

func aggregateCategory(cat contentCategory, pages []PageAnalysis) CategoryScore {
	total := 0
	for _, page := range pages {
		total += cat.get(&page.Content).Score
	}
	score := int(math.Round(float64(total) / float64(len(pages))))

	// Worst observed instance per check name wins; every page that ran
	// the check contributes its URL.
	type worst struct {
		finding Finding
		urls    []string
	}
	order := []string{}
	byCheck := make(map[string]*worst)
	for _, page := range pages {
		for _, f := range cat.get(&page.Content).Findings {
			w, seen := byCheck[f.Check]
			if !seen {
				byCheck[f.Check] = &worst{finding: f, urls: []string{page.URL}}
				order = append(order, f.Check)
				continue
			}
			w.urls = appendUnique(w.urls, page.URL)
			if f.Points < w.finding.Points {
				urls := w.urls
				w.finding = f
				w.urls = urls
			}
		}
	}

	findings := make([]Finding, 0, len(order))
	for _, check := range order {
		w := byCheck[check]
		f := w.finding
		f.PageURLs = w.urls
		findings = append(findings, f)
	}

	var recs []string
	for _, page := range pages {
		for _, rec := range cat.get(&page.Content).Recommendations {
			if len(recs) >= maxRecsPerCategory {
				break
			}
			recs = appendUnique(recs, rec)
		}
	}

	// The aggregate score is the mean of page scores, not the ratio of
	// deduplicated finding points, so it is set directly here.
	agg := CategoryScore{
		Score:           score,
		Grade:           gradeFor(score),
		Weight:          cat.get(&pages[0].Content).Weight,
		Findings:        findings,
		Recommendations: recs,
	}
	sort.SliceStable(agg.Findings, func(i, j int) bool {
		return agg.Findings[i].Points < agg.Findings[j].Points
	})
	return agg
}

func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}
