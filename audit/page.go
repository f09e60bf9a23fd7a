package audit

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// analyzePage runs the fixed battery of eleven content checks against one
// page. Every check degrades to zero-point findings on sparse or malformed
// markup; nothing here returns an error.
func analyzePage(p *pageContext) PageAnalysis {
	title := p.snap.Title
	if title == "" {
		title = strings.TrimSpace(p.doc.Find("title").First().Text())
	}

	return PageAnalysis{
		URL:   p.snap.URL,
		Title: title,
		Content: ContentProfile{
			ContentStructure:   checkContentStructure(p),
			StructuredData:     checkStructuredData(p),
			TopicalAuthority:   checkTopicalAuthority(p),
			CitationWorthiness: checkCitationWorthiness(p),
			Freshness:          checkFreshness(p),
			LanguagePatterns:   checkLanguagePatterns(p),
			MetaInformation:    checkMetaInformation(p),
			TechnicalHealth:    checkTechnicalHealth(p),
			ContentUniqueness:  checkContentUniqueness(p),
			MultiFormat:        checkMultiFormat(p),
			TrustSignals:       checkTrustSignals(p),
		},
	}
}

func contentWeight(name string) float64 {
	for _, c := range contentCategories {
		if c.name == name {
			return c.weight
		}
	}
	return 0
}

// checkContentStructure scores how cleanly an answer engine can carve the
// page into sections.
func checkContentStructure(p *pageContext) CategoryScore {
	var r recorder

	h1 := p.doc.Find("h1").Length()
	switch {
	case h1 == 1:
		r.add(pass("single-h1", "exactly one top-level heading", 10))
	case h1 > 1:
		r.addRec(partial("single-h1", fmt.Sprintf("%d top-level headings found", h1), 4, 10),
			"Use exactly one H1 per page so the main topic is unambiguous")
	default:
		r.addRec(fail("single-h1", "no top-level heading", 10),
			"Add a single H1 heading that states the page topic")
	}

	sub := p.doc.Find("h2").Length() + p.doc.Find("h3").Length()
	switch {
	case sub >= 3:
		r.add(pass("subheadings", fmt.Sprintf("%d subheadings", sub), 10))
	case sub >= 1:
		r.addRec(partial("subheadings", fmt.Sprintf("only %d subheadings", sub), 5, 10),
			"Break the content into at least three H2/H3 sections")
	default:
		r.addRec(fail("subheadings", "no subheadings", 10),
			"Break the content into at least three H2/H3 sections")
	}

	blocks := p.doc.Find("ul, ol, table").Length()
	switch {
	case blocks >= 2:
		r.add(pass("scannable-blocks", fmt.Sprintf("%d lists or tables", blocks), 5))
	case blocks == 1:
		r.addRec(partial("scannable-blocks", "one list or table", 3, 5),
			"Use lists and tables for facts that should be extractable at a glance")
	default:
		r.addRec(fail("scannable-blocks", "no lists or tables", 5),
			"Use lists and tables for facts that should be extractable at a glance")
	}

	lead := strings.TrimSpace(p.doc.Find("p").First().Text())
	if n := len(lead); n >= 40 && n <= 320 {
		r.add(pass("answer-up-front", "opening paragraph is a concise summary", 5))
	} else {
		r.addRec(fail("answer-up-front", "no concise opening paragraph", 5),
			"Open with a 1-3 sentence paragraph that answers the page's main question directly")
	}

	question := false
	p.doc.Find("h2, h3").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if isQuestionHeading(s.Text()) {
			question = true
			return false
		}
		return true
	})
	r.addRec(boolCheck("question-headings", question,
		"question-style headings present", "no question-style headings", 5),
		"Phrase some subheadings as the questions users actually ask")

	return r.category(contentWeight(CatContentStructure))
}

func isQuestionHeading(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if strings.HasSuffix(t, "?") {
		return true
	}
	for _, prefix := range []string{"how ", "what ", "why ", "when ", "where ", "which ", "can "} {
		if strings.HasPrefix(t, prefix) {
			return true
		}
	}
	return false
}

// checkStructuredData scores the page's machine-readable entity markup.
func checkStructuredData(p *pageContext) CategoryScore {
	var r recorder

	rawBlocks := p.doc.Find(`script[type="application/ld+json"]`).Length()
	switch {
	case len(p.jsonLD) > 0:
		r.add(pass("jsonld-present", fmt.Sprintf("%d structured-data nodes", len(p.jsonLD)), 10))
	case rawBlocks > 0:
		r.addRec(partial("jsonld-present", "structured-data block present but unparseable", 3, 10),
			"Fix the JSON-LD block so it parses; broken markup is ignored by crawlers")
	default:
		r.addRec(fail("jsonld-present", "no structured data", 10),
			"Add a JSON-LD block describing the page's primary entity")
	}

	primary := firstOfType(p.jsonLD, append(append([]string{"WebPage", "WebSite", "Organization", "Person", "FAQPage", "HowTo"}, articleTypes...), productTypes...)...)
	r.addRec(boolCheck("primary-entity", primary != nil,
		"recognized primary entity type", "no recognized primary entity type", 5),
		"Declare a recognized @type (Article, Product, Organization, ...) for the page")

	if primary != nil && len(primary) >= 5 {
		r.add(pass("entity-completeness", fmt.Sprintf("primary entity carries %d properties", len(primary)), 5))
	} else if primary != nil {
		r.addRec(partial("entity-completeness", "primary entity is sparsely described", 3, 5),
			"Fill in the primary entity's properties (name, description, image, dates)")
	} else {
		r.addRec(fail("entity-completeness", "no entity to describe", 5),
			"Fill in the primary entity's properties (name, description, image, dates)")
	}

	r.addRec(boolCheck("faq-howto", firstOfType(p.jsonLD, "FAQPage", "HowTo") != nil,
		"FAQ or HowTo markup present", "no FAQ or HowTo markup", 5),
		"Mark up question/answer content with FAQPage structured data")

	r.addRec(boolCheck("breadcrumbs", firstOfType(p.jsonLD, "BreadcrumbList") != nil,
		"breadcrumb markup present", "no breadcrumb markup", 5),
		"Add BreadcrumbList markup so the page's place in the site is explicit")

	return r.category(contentWeight(CatStructuredData))
}

// checkTopicalAuthority scores depth of coverage.
func checkTopicalAuthority(p *pageContext) CategoryScore {
	var r recorder

	switch {
	case p.words >= 800:
		r.add(pass("content-depth", fmt.Sprintf("%d words", p.words), 10))
	case p.words >= 300:
		r.addRec(partial("content-depth", fmt.Sprintf("%d words", p.words), 6, 10),
			"Expand the page toward comprehensive coverage (800+ words) of its topic")
	case p.words >= 100:
		r.addRec(partial("content-depth", fmt.Sprintf("only %d words", p.words), 3, 10),
			"Expand the page toward comprehensive coverage (800+ words) of its topic")
	default:
		r.addRec(fail("content-depth", fmt.Sprintf("only %d words", p.words), 10),
			"Expand the page toward comprehensive coverage (800+ words) of its topic")
	}

	h2 := p.doc.Find("h2").Length()
	switch {
	case h2 >= 4:
		r.add(pass("section-coverage", fmt.Sprintf("%d major sections", h2), 5))
	case h2 >= 2:
		r.add(partial("section-coverage", fmt.Sprintf("%d major sections", h2), 3, 5))
	default:
		r.addRec(fail("section-coverage", "topic covered in a single block", 5),
			"Cover distinct subtopics under their own H2 sections")
	}

	internal, external, _ := p.externalLinks()
	switch {
	case internal >= 3:
		r.add(pass("internal-linking", fmt.Sprintf("%d internal links", internal), 5))
	case internal >= 1:
		r.addRec(partial("internal-linking", fmt.Sprintf("%d internal links", internal), 2, 5),
			"Link to related pages on your own site to establish topical breadth")
	default:
		r.addRec(fail("internal-linking", "no internal links", 5),
			"Link to related pages on your own site to establish topical breadth")
	}

	switch {
	case external >= 2:
		r.add(pass("supporting-references", fmt.Sprintf("%d outbound references", external), 5))
	case external == 1:
		r.add(partial("supporting-references", "one outbound reference", 2, 5))
	default:
		r.addRec(fail("supporting-references", "no outbound references", 5),
			"Reference external sources that support the page's claims")
	}

	return r.category(contentWeight(CatTopicalAuthority))
}

// checkCitationWorthiness scores whether an answer engine would quote this
// page: concrete facts, figures, and attributable statements.
func checkCitationWorthiness(p *pageContext) CategoryScore {
	var r recorder

	facts := countFactSentences(p.text)
	switch {
	case facts >= 3:
		r.add(pass("quotable-facts", fmt.Sprintf("%d sentences with concrete figures", facts), 10))
	case facts >= 1:
		r.addRec(partial("quotable-facts", fmt.Sprintf("%d sentences with concrete figures", facts), 5, 10),
			"State concrete numbers, dates, and statistics that answers can cite")
	default:
		r.addRec(fail("quotable-facts", "no sentences with concrete figures", 10),
			"State concrete numbers, dates, and statistics that answers can cite")
	}

	r.addRec(boolCheck("data-tables", p.doc.Find("table").Length() > 0,
		"tabular data present", "no tabular data", 5),
		"Present comparable figures in a table rather than prose")

	attributed := p.doc.Find("cite, blockquote").Length() > 0 ||
		p.contains("according to") || p.contains("source:")
	r.addRec(boolCheck("source-attribution", attributed,
		"claims carry attribution", "no attributed claims", 5),
		"Attribute claims to named sources so quotes carry provenance")

	r.add(boolCheck("concise-paragraphs", conciseParagraphs(p.doc),
		"paragraphs are extractable lengths", "paragraphs run too long to quote", 5))

	return r.category(contentWeight(CatCitationWorthiness))
}

// countFactSentences counts sentences carrying a digit — a cheap proxy for
// quotable statistics.
func countFactSentences(text string) int {
	count := 0
	for _, s := range strings.FieldsFunc(text, func(r rune) bool { return r == '.' || r == '!' || r == '?' }) {
		if strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) >= 0 &&
			len(strings.Fields(s)) >= 4 {
			count++
		}
	}
	return count
}

func conciseParagraphs(doc *goquery.Document) bool {
	total, long := 0, 0
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		total++
		if len(text) > 600 {
			long++
		}
	})
	if total == 0 {
		return false
	}
	return float64(long)/float64(total) <= 0.2
}

// checkFreshness scores date signals. Recency itself is not judged here —
// that would make the result depend on the clock rather than the inputs.
func checkFreshness(p *pageContext) CategoryScore {
	var r recorder

	published, modified := pageDates(p)
	r.addRec(boolCheck("machine-readable-date", published != "",
		"publication date in structured markup", "no machine-readable publication date", 10),
		"Expose datePublished (and dateModified) in structured data or meta tags")

	visible := p.doc.Find("time").Length() > 0 || dateTextRe.MatchString(p.text)
	r.addRec(boolCheck("visible-date", visible,
		"human-visible date present", "no visible date on the page", 5),
		"Show a visible publication or updated date near the top of the page")

	r.addRec(boolCheck("modified-date", modified != "" && modified != published,
		"page declares a distinct updated date", "no updated date distinct from publication", 5),
		"Record dateModified when content is revised so staleness is detectable")

	return r.category(contentWeight(CatFreshness))
}

// pageDates pulls published/modified dates from JSON-LD and meta tags.
func pageDates(p *pageContext) (published, modified string) {
	for _, node := range p.jsonLD {
		if published == "" {
			published = ldString(node, "datePublished")
		}
		if modified == "" {
			modified = ldString(node, "dateModified")
		}
	}
	if published == "" {
		published, _ = p.doc.Find(`meta[property="article:published_time"]`).Attr("content")
	}
	if modified == "" {
		modified, _ = p.doc.Find(`meta[property="article:modified_time"]`).Attr("content")
	}
	return published, modified
}

// checkLanguagePatterns scores phrasing that answer engines lift verbatim.
func checkLanguagePatterns(p *pageContext) CategoryScore {
	var r recorder

	r.addRec(boolCheck("definition-openers", hasDefinitionOpener(p.doc),
		"definition-style opener present", "no definition-style statements", 5),
		"Open key sections with direct 'X is ...' definitions")

	experience := false
	for _, marker := range []string{"we tested", "i tested", "in our experience", "we found", "hands-on", "our team", "we measured"} {
		if p.contains(marker) {
			experience = true
			break
		}
	}
	r.addRec(boolCheck("first-person-experience", experience,
		"first-person experience language present", "no first-person experience language", 5),
		"Describe first-hand testing or experience; engines favor accounts over summaries")

	pairs := questionAnswerPairs(p.doc)
	switch {
	case pairs >= 2:
		r.add(pass("question-answer-pairs", fmt.Sprintf("%d question/answer sections", pairs), 10))
	case pairs == 1:
		r.addRec(partial("question-answer-pairs", "one question/answer section", 5, 10),
			"Structure common questions as a heading followed by a direct answer")
	default:
		r.addRec(fail("question-answer-pairs", "no question/answer sections", 10),
			"Structure common questions as a heading followed by a direct answer")
	}

	r.add(boolCheck("plain-language", plainLanguage(p.text),
		"sentence length is readable", "sentences run long", 5))

	return r.category(contentWeight(CatLanguagePatterns))
}

func hasDefinitionOpener(doc *goquery.Document) bool {
	found := false
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		for _, verb := range []string{" is ", " are ", " means ", " refers to "} {
			if i := strings.Index(text, verb); i > 0 && i < 60 {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// questionAnswerPairs counts question headings immediately followed by
// body text.
func questionAnswerPairs(doc *goquery.Document) int {
	pairs := 0
	doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		if !isQuestionHeading(s.Text()) {
			return
		}
		if strings.TrimSpace(s.NextFiltered("p").Text()) != "" ||
			strings.TrimSpace(s.Next().Text()) != "" {
			pairs++
		}
	})
	return pairs
}

func plainLanguage(text string) bool {
	sentences := strings.FieldsFunc(text, func(r rune) bool { return r == '.' || r == '!' || r == '?' })
	if len(sentences) == 0 {
		return false
	}
	words := 0
	for _, s := range sentences {
		words += len(strings.Fields(s))
	}
	return float64(words)/float64(len(sentences)) <= 24
}
