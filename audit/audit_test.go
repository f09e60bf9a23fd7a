package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

type staticNarrator struct{ text string }

func (n staticNarrator) Narrate(*SiteAnalysis) string { return n.text }

func TestAnalyzeSiteNoPages(t *testing.T) {
	analyzer := New()
	_, err := analyzer.AnalyzeSite(nil, SiteResources{Origin: "https://example.com"})
	if !errors.Is(err, ErrNoPages) {
		t.Fatalf("Expected ErrNoPages, got %v", err)
	}
}

func TestAnalyzeSiteEndToEnd(t *testing.T) {
	pages := []PageSnapshot{
		{
			URL:      "https://example.com/guide",
			HTML:     richPageHTML,
			Headers:  map[string]string{"Content-Type": "text/html; charset=utf-8"},
			LoadTime: 800,
		},
		{
			URL:      "https://example.com/about",
			HTML:     "<html lang=\"en\"><head><title>About Widget Labs, The Team</title></head><body><h1>About</h1><p>We make widgets.</p></body></html>",
			LoadTime: 600,
		},
	}
	res := SiteResources{
		Origin:    "https://example.com",
		RobotsTxt: "User-agent: *\nAllow: /\n\nSitemap: https://example.com/sitemap.xml\n",
		LLMSTxt:   "# Example\n\n> Widgets and how to keep them.\n\n## Docs\n\n- [Guide](https://example.com/guide): upkeep\n",
	}

	analyzer := New(WithWorkers(2), WithNarrator(staticNarrator{text: "looks healthy"}))
	analysis, err := analyzer.AnalyzeSite(pages, res)
	if err != nil {
		t.Fatalf("AnalyzeSite failed: %v", err)
	}

	t.Run("Shape", func(t *testing.T) {
		if analysis.URL != "https://example.com" {
			t.Errorf("Expected origin URL, got %q", analysis.URL)
		}
		if analysis.PageCount != 2 || len(analysis.Pages) != 2 {
			t.Errorf("Expected 2 pages, got count=%d len=%d", analysis.PageCount, len(analysis.Pages))
		}
		if analysis.Pages[0].URL != pages[0].URL || analysis.Pages[1].URL != pages[1].URL {
			t.Errorf("Page order not preserved: %q, %q", analysis.Pages[0].URL, analysis.Pages[1].URL)
		}
		if analysis.AnalyzedAt.IsZero() {
			t.Error("AnalyzedAt not set")
		}
		if analysis.Insights != "looks healthy" {
			t.Errorf("Narrator output not attached, got %q", analysis.Insights)
		}
	})

	t.Run("Scores", func(t *testing.T) {
		for name, score := range map[string]int{
			"GEO":     analysis.GEOScore,
			"AEO":     analysis.AEOScore,
			"Overall": analysis.OverallScore,
		} {
			if score < 0 || score > 100 {
				t.Errorf("%s score out of range: %d", name, score)
			}
		}
		if analysis.OverallGrade != gradeFor(analysis.OverallScore) {
			t.Errorf("Grade %q inconsistent with score %d", analysis.OverallGrade, analysis.OverallScore)
		}
	})

	t.Run("IntegrationMatchesArchetype", func(t *testing.T) {
		if analysis.Integration.Archetype != analysis.Archetype {
			t.Errorf("Integration archetype %s != site archetype %s",
				analysis.Integration.Archetype, analysis.Archetype)
		}
		order := integrationOrder(analysis.Archetype)
		if len(analysis.Integration.Categories) != len(order) {
			t.Errorf("Expected %d integration categories, got %d",
				len(order), len(analysis.Integration.Categories))
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		again, err := analyzer.AnalyzeSite(pages, res)
		if err != nil {
			t.Fatalf("Second run failed: %v", err)
		}
		if again.GEOScore != analysis.GEOScore ||
			again.AEOScore != analysis.AEOScore ||
			again.OverallScore != analysis.OverallScore ||
			again.Archetype != analysis.Archetype {
			t.Errorf("Same inputs produced different results: %d/%d/%d %s vs %d/%d/%d %s",
				analysis.GEOScore, analysis.AEOScore, analysis.OverallScore, analysis.Archetype,
				again.GEOScore, again.AEOScore, again.OverallScore, again.Archetype)
		}
		if len(again.Recommendations) != len(analysis.Recommendations) {
			t.Errorf("Recommendation count changed between runs: %d vs %d",
				len(analysis.Recommendations), len(again.Recommendations))
		}
	})

	t.Run("JSONRoundTrip", func(t *testing.T) {
		data, err := json.Marshal(analysis)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		var decoded SiteAnalysis
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}
		if decoded.OverallScore != analysis.OverallScore ||
			decoded.Archetype != analysis.Archetype ||
			decoded.GEOGrade != analysis.GEOGrade {
			t.Errorf("Round trip lost data: %+v", decoded)
		}
		if len(decoded.Recommendations) != len(analysis.Recommendations) {
			t.Errorf("Round trip lost recommendations")
		}
	})
}

func TestAnalyzeSiteManyPagesUnderWorkerPool(t *testing.T) {
	var pages []PageSnapshot
	for i := 0; i < 40; i++ {
		pages = append(pages, PageSnapshot{
			URL:      fmt.Sprintf("https://example.com/page-%d", i),
			HTML:     fmt.Sprintf("<html><body><h1>Page %d</h1><p>Content for page %d.</p></body></html>", i, i),
			LoadTime: 500,
		})
	}

	analyzer := New(WithWorkers(4))
	analysis, err := analyzer.AnalyzeSite(pages, SiteResources{Origin: "https://example.com"})
	if err != nil {
		t.Fatalf("AnalyzeSite failed: %v", err)
	}

	if analysis.PageCount != 40 {
		t.Errorf("Expected 40 pages analyzed, got %d", analysis.PageCount)
	}
	for i, p := range analysis.Pages {
		want := fmt.Sprintf("https://example.com/page-%d", i)
		if p.URL != want {
			t.Fatalf("Page %d out of order: got %q", i, p.URL)
		}
	}
}

func TestClassifyConvenience(t *testing.T) {
	analyzer := New()
	got := analyzer.Classify([]PageSnapshot{
		{URL: "https://example.com/docs/a", HTML: "<html></html>"},
		{URL: "https://example.com/docs/b", HTML: "<html></html>"},
		{URL: "https://example.com/api/c", HTML: "<html></html>"},
	}, SiteResources{})
	if got != ArchetypeSaaSAPI {
		t.Errorf("Expected saas-api, got %s", got)
	}
}
