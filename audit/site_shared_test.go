package audit

import "testing"

func TestCheckSitemapRobots(t *testing.T) {
	t.Run("MissingRobots", func(t *testing.T) {
		s := siteFrom(SiteResources{})
		findings, recs := checkSitemapRobots(s)

		if len(findings) != 3 {
			t.Fatalf("Expected 3 findings, got %d", len(findings))
		}
		for _, f := range findings {
			if f.Status != StatusFail {
				t.Errorf("Finding %q: expected fail without robots.txt, got %s", f.Check, f.Status)
			}
		}
		if len(recs) != 3 {
			t.Errorf("Expected a recommendation per failed check, got %d", len(recs))
		}
	})

	t.Run("OpenRobotsWithSitemap", func(t *testing.T) {
		s := siteFrom(SiteResources{
			RobotsTxt: "User-agent: *\nAllow: /\n\nSitemap: https://example.com/sitemap.xml\n",
		})
		findings, recs := checkSitemapRobots(s)

		for _, check := range []string{"robots-present", "sitemap-declared", "ai-crawlers-allowed"} {
			if f := findingByCheck(t, findings, check); f.Status != StatusPass {
				t.Errorf("%s: expected pass, got %s (%s)", check, f.Status, f.Detail)
			}
		}
		if len(recs) != 0 {
			t.Errorf("Expected no recommendations, got %v", recs)
		}
	})

	t.Run("SomeCrawlersBlocked", func(t *testing.T) {
		s := siteFrom(SiteResources{
			RobotsTxt: "User-agent: GPTBot\nDisallow: /\n\nUser-agent: *\nAllow: /\n",
		})
		findings, _ := checkSitemapRobots(s)

		f := findingByCheck(t, findings, "ai-crawlers-allowed")
		if f.Status != StatusPartial {
			t.Errorf("Expected partial with one crawler blocked, got %s", f.Status)
		}
		if f.Points != 6 {
			t.Errorf("Expected 6 points with most crawlers allowed, got %d", f.Points)
		}
	})

	t.Run("AllCrawlersBlocked", func(t *testing.T) {
		s := siteFrom(SiteResources{
			RobotsTxt: "User-agent: *\nDisallow: /\n",
		})
		findings, _ := checkSitemapRobots(s)

		f := findingByCheck(t, findings, "ai-crawlers-allowed")
		if f.Status != StatusFail {
			t.Errorf("Expected fail with everything blocked, got %s", f.Status)
		}
	})
}

func TestCheckAgentManifest(t *testing.T) {
	t.Run("NoManifest", func(t *testing.T) {
		findings, _ := checkAgentManifest(siteFrom(SiteResources{}))

		if f := findingByCheck(t, findings, "llms-txt"); f.Status != StatusFail {
			t.Errorf("llms-txt: expected fail, got %s", f.Status)
		}
		if f := findingByCheck(t, findings, "llms-txt-structure"); f.Points != 0 {
			t.Errorf("llms-txt-structure: expected 0 points without the file, got %d", f.Points)
		}
	})

	t.Run("WellFormedManifest", func(t *testing.T) {
		manifest := "# Example\n\n> Example sells widgets and documents their upkeep.\n\n## Docs\n\n- [Guide](https://example.com/guide): maintenance guide\n"
		findings, recs := checkAgentManifest(siteFrom(SiteResources{
			LLMSTxt:     manifest,
			LLMSFullTxt: "Full flattened content here.",
		}))

		for _, check := range []string{"llms-txt", "llms-txt-structure", "llms-full-txt"} {
			if f := findingByCheck(t, findings, check); f.Status != StatusPass {
				t.Errorf("%s: expected pass, got %s (%s)", check, f.Status, f.Detail)
			}
		}
		if len(recs) != 0 {
			t.Errorf("Expected no recommendations, got %v", recs)
		}
	})

	t.Run("UnstructuredManifest", func(t *testing.T) {
		findings, _ := checkAgentManifest(siteFrom(SiteResources{
			LLMSTxt: "we sell widgets, ask us anything",
		}))

		f := findingByCheck(t, findings, "llms-txt-structure")
		if f.Status != StatusFail {
			t.Errorf("Expected fail for unstructured llms.txt, got %s", f.Status)
		}
	})
}

func TestLLMSTxtStructure(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int
	}{
		{"Empty", "", 0},
		{"TitleOnly", "# Site", 1},
		{"TitleAndSummary", "# Site\n\n> What the site is.", 2},
		{"Complete", "# Site\n\n> What the site is.\n\n## Links\n\n- [Docs](https://example.com/docs)", 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := llmsTxtStructure(c.text); got != c.want {
				t.Errorf("llmsTxtStructure(%q) = %d, want %d", c.text, got, c.want)
			}
		})
	}
}

func TestAnalyzeIntegrationCoversVariant(t *testing.T) {
	s := siteFrom(SiteResources{Origin: "https://example.com"},
		PageSnapshot{URL: "https://example.com/", HTML: "<html><body><h1>Hi</h1></body></html>"})

	for archetype := range integrationVariants {
		t.Run(string(archetype), func(t *testing.T) {
			profile := analyzeIntegration(s, archetype)
			if profile.Archetype != archetype {
				t.Errorf("Expected archetype %s, got %s", archetype, profile.Archetype)
			}

			order := integrationOrder(archetype)
			if len(profile.Categories) != len(order) {
				t.Fatalf("Expected %d categories, got %d", len(order), len(profile.Categories))
			}
			for _, name := range order {
				cat, ok := profile.Categories[name]
				if !ok {
					t.Errorf("Variant category %q missing from profile", name)
					continue
				}
				if cat.Score < 0 || cat.Score > 100 {
					t.Errorf("Category %q score out of range: %d", name, cat.Score)
				}
				if len(cat.Findings) == 0 {
					t.Errorf("Category %q produced no findings", name)
				}
			}
		})
	}
}
