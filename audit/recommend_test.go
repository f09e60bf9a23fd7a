package audit

import (
	"strings"
	"testing"
)

func TestPriorityForBands(t *testing.T) {
	cases := []struct {
		impact float64
		want   Priority
	}{
		{9.0, PriorityCritical},
		{8.1, PriorityCritical},
		{8.0, PriorityHigh}, // boundary is strict
		{5.5, PriorityHigh},
		{5.0, PriorityMedium},
		{3.5, PriorityMedium},
		{3.0, PriorityLow},
		{0.0, PriorityLow},
	}

	for _, c := range cases {
		if got := priorityFor(c.impact); got != c.want {
			t.Errorf("priorityFor(%v) = %s, want %s", c.impact, got, c.want)
		}
	}
}

func TestPotentialScoreClosesHalfTheGap(t *testing.T) {
	cases := []struct{ current, want int }{
		{0, 50},
		{40, 70},
		{60, 80},
		{69, 85}, // 69 + round(31*0.5) = 69 + 16
		{100, 100},
	}
	for _, c := range cases {
		if got := potentialScore(c.current); got != c.want {
			t.Errorf("potentialScore(%d) = %d, want %d", c.current, got, c.want)
		}
	}
}

func TestTitleFor(t *testing.T) {
	cases := []struct{ category, want string }{
		{"structured-data", "Improve Structured Data"},
		{"api-docs-coverage", "Improve API Docs Coverage"},
		{"sdk-availability", "Improve SDK Availability"},
		{"nap-consistency", "Improve NAP Consistency"},
	}
	for _, c := range cases {
		if got := titleFor(c.category); got != c.want {
			t.Errorf("titleFor(%q) = %q, want %q", c.category, got, c.want)
		}
	}
}

func TestRecommendThreshold(t *testing.T) {
	content := uniformContent(100)
	content.StructuredData = CategoryScore{
		Score:           70,
		Grade:           "C",
		Weight:          0.13,
		Recommendations: []string{"Add a JSON-LD block describing the page's primary entity"},
	}
	integration := uniformIntegration(ArchetypeGeneral, 100)

	// Exactly at the threshold a category is left alone.
	recs := recommend(content, integration, ArchetypeGeneral)
	if len(recs) != 0 {
		t.Fatalf("Score 70 should produce no recommendations, got %d", len(recs))
	}

	content.StructuredData.Score = 69
	recs = recommend(content, integration, ArchetypeGeneral)
	if len(recs) != 1 {
		t.Fatalf("Score 69 should produce 1 recommendation, got %d", len(recs))
	}

	rec := recs[0]
	if rec.Category != CatStructuredData {
		t.Errorf("Expected structured-data category, got %q", rec.Category)
	}
	if rec.Dimension != DimensionContent {
		t.Errorf("Expected content dimension, got %s", rec.Dimension)
	}
	if rec.CurrentScore != 69 || rec.PotentialScore != 85 {
		t.Errorf("Expected 69 -> 85, got %d -> %d", rec.CurrentScore, rec.PotentialScore)
	}
	// impact = 0.13 * 31 = 4.03 -> medium
	if rec.Priority != PriorityMedium {
		t.Errorf("Expected medium priority, got %s", rec.Priority)
	}
	if !strings.Contains(rec.Impact, "structured-data") {
		t.Errorf("Impact description should name the category, got %q", rec.Impact)
	}
}

func TestRecommendSilentCategoryProducesNothing(t *testing.T) {
	// A weak category with no attached recommendation strings has no
	// actions to emit.
	content := uniformContent(100)
	content.Freshness = CategoryScore{Score: 10, Grade: "F", Weight: 0.08}
	integration := uniformIntegration(ArchetypeGeneral, 100)

	if recs := recommend(content, integration, ArchetypeGeneral); len(recs) != 0 {
		t.Errorf("Expected no recommendations without action strings, got %d", len(recs))
	}
}

func TestRecommendOrdering(t *testing.T) {
	content := uniformContent(100)
	// impact = 0.10 * 90 = 9.0 -> critical, effort high
	content.TopicalAuthority = CategoryScore{
		Score: 10, Grade: "F", Weight: 0.10,
		Recommendations: []string{"Expand coverage"},
	}
	// impact = 0.10 * 40 = 4.0 -> medium, effort low
	content.MetaInformation = CategoryScore{
		Score: 60, Grade: "D", Weight: 0.10,
		Recommendations: []string{"Add a meta description"},
	}

	integration := uniformIntegration(ArchetypeGeneral, 100)
	// impact = 0.20 * 80 = 16.0 -> critical, effort low
	integration.Categories[CatSitemapRobots] = CategoryScore{
		Score: 20, Grade: "F", Weight: 0.20,
		Recommendations: []string{"Publish a robots.txt"},
	}

	recs := recommend(content, integration, ArchetypeGeneral)
	if len(recs) != 3 {
		t.Fatalf("Expected 3 recommendations, got %d", len(recs))
	}

	// Critical before medium; within critical, low effort before high.
	if recs[0].Category != CatSitemapRobots {
		t.Errorf("Expected sitemap-robots first (critical, low effort), got %q", recs[0].Category)
	}
	if recs[1].Category != CatTopicalAuthority {
		t.Errorf("Expected topical-authority second (critical, high effort), got %q", recs[1].Category)
	}
	if recs[2].Category != CatMetaInformation {
		t.Errorf("Expected meta-information last (medium), got %q", recs[2].Category)
	}
}

func TestRecommendSnippetOnFirstActionOnly(t *testing.T) {
	content := uniformContent(100)
	integration := uniformIntegration(ArchetypeGeneral, 100)
	integration.Categories[CatAgentManifest] = CategoryScore{
		Score: 0, Grade: "F", Weight: 0.20,
		Findings: []Finding{fail("llms-txt", "no llms.txt", 10)},
		Recommendations: []string{
			"Publish an llms.txt manifest describing the site for language-model agents",
			"Publish llms-full.txt with the full flattened content for context ingestion",
		},
	}

	recs := recommend(content, integration, ArchetypeGeneral)
	if len(recs) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Snippet == nil {
		t.Error("First recommendation should carry the remediation snippet")
	}
	if recs[1].Snippet != nil {
		t.Error("Only the first recommendation should carry a snippet")
	}
}
