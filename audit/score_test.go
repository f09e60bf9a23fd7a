package audit

import "testing"

// uniformContent builds a profile with every category at the same score
// and its canonical weight.
func uniformContent(score int) ContentProfile {
	var p ContentProfile
	for _, cat := range contentCategories {
		*cat.get(&p) = CategoryScore{
			Score:  score,
			Grade:  gradeFor(score),
			Weight: cat.weight,
		}
	}
	return p
}

// uniformIntegration builds a profile with every variant category at the
// same score and the variant's weight.
func uniformIntegration(archetype Archetype, score int) IntegrationProfile {
	categories := make(map[string]CategoryScore)
	for _, c := range integrationVariants[archetype] {
		categories[c.name] = CategoryScore{
			Score:  score,
			Grade:  gradeFor(score),
			Weight: c.weight,
		}
	}
	return IntegrationProfile{Archetype: archetype, Categories: categories}
}

func TestScoreSiteBlends(t *testing.T) {
	cases := []struct {
		archetype   Archetype
		geo, aeo    int
		wantOverall int
	}{
		// local-business: 80*0.65 + 40*0.35 = 66
		{ArchetypeLocalBusiness, 80, 40, 66},
		// saas-api splits evenly: (80+40)/2 = 60
		{ArchetypeSaaSAPI, 80, 40, 60},
		// content-publisher: 80*0.70 + 40*0.30 = 68
		{ArchetypeContentPublisher, 80, 40, 68},
		// ecommerce: 80*0.55 + 40*0.45 = 62
		{ArchetypeEcommerce, 80, 40, 62},
		// general: 80*0.60 + 40*0.40 = 64
		{ArchetypeGeneral, 80, 40, 64},
	}

	for _, c := range cases {
		t.Run(string(c.archetype), func(t *testing.T) {
			content := uniformContent(c.geo)
			integration := uniformIntegration(c.archetype, c.aeo)

			got := scoreSite(content, integration, c.archetype)
			if got.GEO != c.geo {
				t.Errorf("GEO = %d, want %d", got.GEO, c.geo)
			}
			if got.AEO != c.aeo {
				t.Errorf("AEO = %d, want %d", got.AEO, c.aeo)
			}
			if got.Overall != c.wantOverall {
				t.Errorf("Overall = %d, want %d", got.Overall, c.wantOverall)
			}
		})
	}
}

func TestScoreSiteBounds(t *testing.T) {
	for _, score := range []int{0, 100} {
		content := uniformContent(score)
		integration := uniformIntegration(ArchetypeGeneral, score)
		got := scoreSite(content, integration, ArchetypeGeneral)
		if got.GEO != score || got.AEO != score || got.Overall != score {
			t.Errorf("Uniform %d site scored GEO=%d AEO=%d Overall=%d",
				score, got.GEO, got.AEO, got.Overall)
		}
	}
}

func TestScoreSiteUnknownArchetypeUsesGeneralSplit(t *testing.T) {
	content := uniformContent(80)
	integration := uniformIntegration(ArchetypeGeneral, 40)

	got := scoreSite(content, integration, Archetype("unknown"))
	if got.Overall != 64 {
		t.Errorf("Expected general split (64) for unknown archetype, got %d", got.Overall)
	}
}
