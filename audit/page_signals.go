package audit

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// checkMetaInformation scores the page's head metadata.
func checkMetaInformation(p *pageContext) CategoryScore {
	var r recorder

	title := strings.TrimSpace(p.doc.Find("title").First().Text())
	if title == "" {
		title = p.snap.Title
	}
	switch n := len(title); {
	case n >= 15 && n <= 70:
		r.add(pass("title-tag", fmt.Sprintf("title is %d characters", n), 10))
	case n > 0:
		r.addRec(partial("title-tag", fmt.Sprintf("title is %d characters", n), 5, 10),
			"Keep the title tag between 15 and 70 characters")
	default:
		r.addRec(fail("title-tag", "no title tag", 10),
			"Add a descriptive title tag")
	}

	desc, _ := p.doc.Find(`meta[name="description"]`).Attr("content")
	switch n := len(strings.TrimSpace(desc)); {
	case n >= 50 && n <= 160:
		r.add(pass("meta-description", fmt.Sprintf("description is %d characters", n), 10))
	case n > 0:
		r.addRec(partial("meta-description", fmt.Sprintf("description is %d characters", n), 5, 10),
			"Keep the meta description between 50 and 160 characters")
	default:
		r.addRec(fail("meta-description", "no meta description", 10),
			"Add a meta description summarizing the page")
	}

	canonical, _ := p.doc.Find(`link[rel="canonical"]`).Attr("href")
	r.addRec(boolCheck("canonical", strings.TrimSpace(canonical) != "",
		"canonical URL declared", "no canonical URL", 5),
		"Declare a canonical link so duplicates collapse to one citable URL")

	ogTitle := p.doc.Find(`meta[property="og:title"]`).Length() > 0
	ogDesc := p.doc.Find(`meta[property="og:description"]`).Length() > 0
	switch {
	case ogTitle && ogDesc:
		r.add(pass("open-graph", "Open Graph title and description present", 5))
	case ogTitle || ogDesc:
		r.add(partial("open-graph", "partial Open Graph tags", 3, 5))
	default:
		r.addRec(fail("open-graph", "no Open Graph tags", 5),
			"Add og:title and og:description for consistent previews")
	}

	return r.category(contentWeight(CatMetaInformation))
}

// checkTechnicalHealth scores transport-level signals surfaced in the
// snapshot: load time, headers, and crawl directives.
func checkTechnicalHealth(p *pageContext) CategoryScore {
	var r recorder

	switch lt := p.snap.LoadTime; {
	case lt > 0 && lt <= 1000:
		r.add(pass("load-time", fmt.Sprintf("loaded in %dms", lt), 10))
	case lt > 0 && lt <= 2500:
		r.addRec(partial("load-time", fmt.Sprintf("loaded in %dms", lt), 6, 10),
			"Bring page load under one second; slow pages get crawled and cited less")
	case lt > 0 && lt <= 4000:
		r.addRec(partial("load-time", fmt.Sprintf("loaded in %dms", lt), 3, 10),
			"Bring page load under one second; slow pages get crawled and cited less")
	default:
		r.addRec(fail("load-time", fmt.Sprintf("load time %dms", lt), 10),
			"Bring page load under one second; slow pages get crawled and cited less")
	}

	ct := strings.ToLower(p.header("Content-Type"))
	switch {
	case strings.Contains(ct, "text/html") && strings.Contains(ct, "charset"):
		r.add(pass("content-type", "HTML content type with charset", 5))
	case strings.Contains(ct, "text/html"):
		r.add(partial("content-type", "content type lacks charset", 3, 5))
	default:
		r.addRec(fail("content-type", "no HTML content-type header", 5),
			"Serve pages with an explicit text/html content type and charset")
	}

	viewport, _ := p.doc.Find(`meta[name="viewport"]`).Attr("content")
	r.addRec(boolCheck("mobile-viewport", strings.Contains(strings.ToLower(viewport), "width=device-width"),
		"responsive viewport declared", "no responsive viewport", 5),
		"Add a responsive viewport meta tag")

	lang, _ := p.doc.Find("html").Attr("lang")
	r.addRec(boolCheck("lang-declared", strings.TrimSpace(lang) != "",
		"document language declared", "no lang attribute", 5),
		"Declare the document language on the html element")

	robotsMeta, _ := p.doc.Find(`meta[name="robots"]`).Attr("content")
	blocked := strings.Contains(strings.ToLower(robotsMeta), "noindex")
	r.addRec(boolCheck("indexable", !blocked,
		"page is indexable", "page carries a noindex directive", 5),
		"Remove the noindex directive if this page should be citable")

	return r.category(contentWeight(CatTechnicalHealth))
}

// checkContentUniqueness scores substance: how much of the markup is actual
// content and how much of that content repeats itself.
func checkContentUniqueness(p *pageContext) CategoryScore {
	var r recorder

	density := 0.0
	if len(p.snap.HTML) > 0 {
		density = float64(len(p.text)) / float64(len(p.snap.HTML))
	}
	switch {
	case density >= 0.10:
		r.add(pass("text-density", fmt.Sprintf("%.0f%% of markup is text", density*100), 10))
	case density >= 0.05:
		r.addRec(partial("text-density", fmt.Sprintf("%.0f%% of markup is text", density*100), 5, 10),
			"Reduce boilerplate markup; thin text-to-markup ratios read as low-value pages")
	default:
		r.addRec(fail("text-density", fmt.Sprintf("%.0f%% of markup is text", density*100), 10),
			"Reduce boilerplate markup; thin text-to-markup ratios read as low-value pages")
	}

	r.addRec(boolCheck("substantial-body", p.words >= 150,
		fmt.Sprintf("%d words of body content", p.words),
		fmt.Sprintf("only %d words of body content", p.words), 5),
		"Add substantive body content; near-empty pages are skipped by answer engines")

	dupes := duplicateParagraphs(p.doc)
	switch {
	case dupes == 0:
		r.add(pass("low-duplication", "no repeated paragraphs", 5))
	case dupes <= 2:
		r.add(partial("low-duplication", fmt.Sprintf("%d repeated paragraphs", dupes), 3, 5))
	default:
		r.addRec(fail("low-duplication", fmt.Sprintf("%d repeated paragraphs", dupes), 5),
			"Remove duplicated blocks of copy")
	}

	return r.category(contentWeight(CatContentUniqueness))
}

func duplicateParagraphs(doc *goquery.Document) int {
	seen := make(map[string]int)
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) >= 40 {
			seen[text]++
		}
	})
	dupes := 0
	for _, n := range seen {
		if n > 1 {
			dupes++
		}
	}
	return dupes
}

// checkMultiFormat scores richness beyond prose.
func checkMultiFormat(p *pageContext) CategoryScore {
	var r recorder

	images := p.doc.Find("img")
	withAlt := 0
	images.Each(func(_ int, s *goquery.Selection) {
		if alt, ok := s.Attr("alt"); ok && strings.TrimSpace(alt) != "" {
			withAlt++
		}
	})
	switch total := images.Length(); {
	case total > 0 && withAlt == total:
		r.add(pass("images-with-alt", fmt.Sprintf("all %d images carry alt text", total), 10))
	case total > 0 && withAlt > 0:
		r.addRec(partial("images-with-alt", fmt.Sprintf("%d of %d images carry alt text", withAlt, total), 5, 10),
			"Give every image descriptive alt text")
	case total > 0:
		r.addRec(partial("images-with-alt", fmt.Sprintf("none of %d images carry alt text", total), 2, 10),
			"Give every image descriptive alt text")
	default:
		r.addRec(fail("images-with-alt", "no images", 10),
			"Illustrate the content with captioned, alt-texted images")
	}

	video := p.doc.Find(`video, iframe[src*="youtube"], iframe[src*="vimeo"]`).Length() > 0
	r.add(boolCheck("video-content", video, "video content embedded", "no video content", 5))

	r.add(boolCheck("structured-lists", p.doc.Find("ul, ol").Length() > 0,
		"list formatting used", "no list formatting", 5))

	r.add(boolCheck("code-samples", p.doc.Find("pre, code").Length() > 0,
		"code samples present", "no code samples", 5))

	return r.category(contentWeight(CatMultiFormat))
}

// checkTrustSignals scores author and organization provenance.
func checkTrustSignals(p *pageContext) CategoryScore {
	var r recorder

	byline := p.doc.Find(`[rel="author"], .author, .byline, [class*="author"]`).Length() > 0
	var ldAuthor bool
	for _, node := range p.jsonLD {
		if _, ok := node["author"]; ok {
			ldAuthor = true
			break
		}
	}
	switch {
	case ldAuthor:
		r.add(pass("author-byline", "author declared in structured data", 10))
	case byline:
		r.addRec(partial("author-byline", "visible byline without structured markup", 5, 10),
			"Declare the author in structured data, not just visible text")
	default:
		r.addRec(fail("author-byline", "no author attribution", 10),
			"Attribute the content to a named author")
	}

	org := firstOfType(p.jsonLD, "Organization", "Person")
	r.addRec(boolCheck("publisher-identity", org != nil && ldHas(org, "name"),
		"publisher identity in structured data", "no publisher identity markup", 5),
		"Add Organization markup identifying who publishes this site")

	contact := p.doc.Find(`a[href*="contact"], a[href*="about"]`).Length() > 0
	r.addRec(boolCheck("contact-visibility", contact,
		"contact or about page linked", "no contact or about link", 5),
		"Link to contact and about pages from every page")

	_, _, domains := p.externalLinks()
	r.addRec(boolCheck("outbound-authority", len(domains) >= 2,
		fmt.Sprintf("links out to %d distinct domains", len(domains)),
		"page links to fewer than two outside domains", 5),
		"Cite authoritative outside sources; isolation reads as low trust")

	return r.category(contentWeight(CatTrustSignals))
}
