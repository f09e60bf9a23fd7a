package audit

import (
	"fmt"
	"strings"

	"github.com/temoto/robotstxt"
)

// aiCrawlers are the user agents autonomous answer engines and agents
// crawl with. The robots rubric tests each one against the site root.
var aiCrawlers = []string{
	"GPTBot",
	"ClaudeBot",
	"PerplexityBot",
	"Google-Extended",
	"CCBot",
	"Bytespider",
}

// checkSitemapRobots evaluates the machine-readable crawl surface:
// robots.txt presence, sitemap declaration, and per-AI-crawler access.
// Shared verbatim across every archetype variant.
func checkSitemapRobots(s *siteContext) ([]Finding, []string) {
	var r recorder

	if strings.TrimSpace(s.res.RobotsTxt) == "" {
		r.addRec(fail("robots-present", "no robots.txt", 5),
			"Publish a robots.txt so crawlers know what they may fetch")
		r.addRec(fail("sitemap-declared", "no robots.txt to declare a sitemap in", 10),
			"Declare your XML sitemap with a Sitemap: line in robots.txt")
		r.addRec(fail("ai-crawlers-allowed", "crawler access cannot be verified without robots.txt", 10),
			"Explicitly allow AI crawler user agents in robots.txt")
		return r.results()
	}
	r.add(pass("robots-present", "robots.txt published", 5))

	sitemap := false
	for _, line := range strings.Split(s.res.RobotsTxt, "\n") {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "sitemap:") {
			sitemap = true
			break
		}
	}
	r.addRec(boolCheck("sitemap-declared", sitemap,
		"sitemap declared in robots.txt", "no sitemap declared in robots.txt", 10),
		"Declare your XML sitemap with a Sitemap: line in robots.txt")

	robots, err := robotstxt.FromString(s.res.RobotsTxt)
	if err != nil {
		r.addRec(fail("ai-crawlers-allowed", "robots.txt does not parse", 10),
			"Fix robots.txt syntax; unparseable rules block conservative crawlers")
		return r.results()
	}
	allowed := 0
	var blocked []string
	for _, agent := range aiCrawlers {
		if robots.FindGroup(agent).Test("/") {
			allowed++
		} else {
			blocked = append(blocked, agent)
		}
	}
	switch {
	case allowed == len(aiCrawlers):
		r.add(pass("ai-crawlers-allowed", "all known AI crawlers may fetch the site root", 10))
	case allowed >= len(aiCrawlers)/2:
		r.addRec(partial("ai-crawlers-allowed",
			fmt.Sprintf("blocked: %s", strings.Join(blocked, ", ")), 6, 10),
			"Allow the AI crawler user agents you want citing you (GPTBot, ClaudeBot, PerplexityBot, ...)")
	case allowed > 0:
		r.addRec(partial("ai-crawlers-allowed",
			fmt.Sprintf("blocked: %s", strings.Join(blocked, ", ")), 3, 10),
			"Allow the AI crawler user agents you want citing you (GPTBot, ClaudeBot, PerplexityBot, ...)")
	default:
		r.addRec(fail("ai-crawlers-allowed", "every known AI crawler is blocked from the site root", 10),
			"Allow the AI crawler user agents you want citing you (GPTBot, ClaudeBot, PerplexityBot, ...)")
	}

	return r.results()
}

// checkAgentManifest evaluates llms.txt / llms-full.txt, the manifest files
// agents read before anything else. Shared across every archetype variant.
func checkAgentManifest(s *siteContext) ([]Finding, []string) {
	var r recorder

	llms := strings.TrimSpace(s.res.LLMSTxt)
	r.addRec(boolCheck("llms-txt", llms != "",
		"llms.txt published", "no llms.txt", 10),
		"Publish an llms.txt manifest describing the site for language-model agents")

	if llms != "" {
		structure := llmsTxtStructure(llms)
		switch structure {
		case 3:
			r.add(pass("llms-txt-structure", "llms.txt carries title, summary, and linked sections", 10))
		case 0:
			r.addRec(fail("llms-txt-structure", "llms.txt has no recognizable structure", 10),
				"Structure llms.txt as an H1 title, a blockquote summary, and H2 sections of links")
		default:
			r.addRec(partial("llms-txt-structure",
				fmt.Sprintf("llms.txt carries %d of 3 expected elements", structure), structure*3, 10),
				"Structure llms.txt as an H1 title, a blockquote summary, and H2 sections of links")
		}
	} else {
		r.add(fail("llms-txt-structure", "nothing to inspect without llms.txt", 10))
	}

	r.addRec(boolCheck("llms-full-txt", strings.TrimSpace(s.res.LLMSFullTxt) != "",
		"llms-full.txt published", "no llms-full.txt", 5),
		"Publish llms-full.txt with the full flattened content for context ingestion")

	return r.results()
}

// llmsTxtStructure counts the conventional llms.txt elements present:
// an H1 title, a blockquote summary, and at least one linked H2 section.
func llmsTxtStructure(text string) int {
	score := 0
	if strings.HasPrefix(strings.TrimSpace(text), "# ") {
		score++
	}
	if strings.Contains(text, "\n> ") || strings.HasPrefix(text, "> ") {
		score++
	}
	if strings.Contains(text, "\n## ") && strings.Contains(text, "](http") {
		score++
	}
	return score
}
