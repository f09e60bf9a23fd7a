package audit

import (
	"math"
	"testing"
)

func TestContentWeightsSumToOne(t *testing.T) {
	sum := 0.0
	seen := make(map[string]bool)
	for _, cat := range contentCategories {
		if seen[cat.name] {
			t.Errorf("Duplicate content category %q", cat.name)
		}
		seen[cat.name] = true
		if cat.weight <= 0 {
			t.Errorf("Category %q has non-positive weight %v", cat.name, cat.weight)
		}
		sum += cat.weight
	}

	if len(contentCategories) != 11 {
		t.Errorf("Expected 11 content categories, got %d", len(contentCategories))
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Content weights sum to %v, want 1.0", sum)
	}
}

func TestIntegrationWeightsSumToOne(t *testing.T) {
	archetypes := []Archetype{
		ArchetypeSaaSAPI,
		ArchetypeEcommerce,
		ArchetypeLocalBusiness,
		ArchetypeContentPublisher,
		ArchetypeGeneral,
	}

	for _, archetype := range archetypes {
		t.Run(string(archetype), func(t *testing.T) {
			checks, ok := integrationVariants[archetype]
			if !ok {
				t.Fatalf("No integration variant registered for %s", archetype)
			}

			sum := 0.0
			seen := make(map[string]bool)
			hasRobots, hasManifest := false, false
			for _, c := range checks {
				if seen[c.name] {
					t.Errorf("Duplicate category %q in %s variant", c.name, archetype)
				}
				seen[c.name] = true
				if c.eval == nil {
					t.Errorf("Category %q has no evaluator", c.name)
				}
				sum += c.weight
				if c.name == CatSitemapRobots {
					hasRobots = true
				}
				if c.name == CatAgentManifest {
					hasManifest = true
				}
			}

			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("%s weights sum to %v, want 1.0", archetype, sum)
			}
			if !hasRobots || !hasManifest {
				t.Errorf("%s variant must include sitemap-robots and agent-manifest", archetype)
			}
		})
	}
}

func TestBlendSplitsSumToOne(t *testing.T) {
	for archetype, split := range blendSplits {
		if math.Abs(split.Content+split.Integration-1.0) > 1e-9 {
			t.Errorf("%s blend split sums to %v, want 1.0", archetype, split.Content+split.Integration)
		}
	}
	if len(blendSplits) != 5 {
		t.Errorf("Expected 5 blend splits, got %d", len(blendSplits))
	}
}

func TestEffortForDefaultsToMedium(t *testing.T) {
	if got := effortFor("some-unknown-category"); got != EffortMedium {
		t.Errorf("Expected medium effort for unlisted category, got %s", got)
	}
	if got := effortFor(CatSitemapRobots); got != EffortLow {
		t.Errorf("Expected low effort for sitemap-robots, got %s", got)
	}
	if got := effortFor(CatOpenAPISpec); got != EffortHigh {
		t.Errorf("Expected high effort for openapi-spec, got %s", got)
	}
}

func TestIntegrationOrderIsStable(t *testing.T) {
	first := integrationOrder(ArchetypeSaaSAPI)
	second := integrationOrder(ArchetypeSaaSAPI)
	if len(first) != len(second) {
		t.Fatalf("Order length changed between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Order position %d changed: %q vs %q", i, first[i], second[i])
		}
	}

	unknown := integrationOrder(Archetype("unknown"))
	general := integrationOrder(ArchetypeGeneral)
	if len(unknown) != len(general) {
		t.Errorf("Unknown archetype should fall back to the general variant")
	}
}
