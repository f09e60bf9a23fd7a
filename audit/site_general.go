package audit

import (
	"fmt"
	"strings"
)

// The condensed general rubric, for sites that fit no specific archetype.

func checkStructuredDataCoverage(s *siteContext) ([]Finding, []string) {
	var r recorder

	withLD := 0
	for _, p := range s.pages {
		if len(p.jsonLD) > 0 {
			withLD++
		}
	}
	r.addRec(boolCheck("any-jsonld", withLD > 0,
		fmt.Sprintf("%d pages carry structured data", withLD), "no structured data anywhere", 10),
		"Add JSON-LD structured data describing what each page is")

	switch {
	case len(s.pages) > 0 && withLD*2 >= len(s.pages):
		r.add(pass("coverage", fmt.Sprintf("%d of %d pages carry structured data", withLD, len(s.pages)), 5))
	case withLD > 0:
		r.addRec(partial("coverage", fmt.Sprintf("only %d of %d pages carry structured data", withLD, len(s.pages)), 3, 5),
			"Extend structured data beyond the home page")
	default:
		r.addRec(fail("coverage", "no pages carry structured data", 5),
			"Extend structured data beyond the home page")
	}

	identity := s.firstNodeOfType("Organization", "WebSite")
	r.addRec(boolCheck("site-identity", identity != nil && ldHas(identity, "name"),
		"site identity declared in markup", "no Organization or WebSite markup", 5),
		"Declare who runs the site with Organization or WebSite markup")

	return r.results()
}

func checkContentOrganization(s *siteContext) ([]Finding, []string) {
	var r recorder

	titled := 0
	titles := make(map[string]int)
	withH1 := 0
	for _, p := range s.pages {
		title := strings.TrimSpace(p.snap.Title)
		if title == "" {
			title = strings.TrimSpace(p.doc.Find("title").First().Text())
		}
		if title != "" {
			titled++
			titles[title]++
		}
		if p.doc.Find("h1").Length() > 0 {
			withH1++
		}
	}

	switch {
	case len(s.pages) > 0 && titled == len(s.pages):
		r.add(pass("titled-pages", "every crawled page carries a title", 10))
	case titled > 0:
		r.addRec(partial("titled-pages", fmt.Sprintf("%d of %d pages carry a title", titled, len(s.pages)), 5, 10),
			"Give every page a descriptive title")
	default:
		r.addRec(fail("titled-pages", "no page titles", 10),
			"Give every page a descriptive title")
	}

	unique := true
	for _, n := range titles {
		if n > 1 {
			unique = false
			break
		}
	}
	r.addRec(boolCheck("unique-titles", titled > 0 && unique,
		"page titles are unique", "duplicate page titles found", 5),
		"Make page titles unique so each page is separately addressable")

	r.addRec(boolCheck("heading-structure", len(s.pages) > 0 && withH1*2 >= len(s.pages),
		"pages lead with a main heading", "most pages lack a main heading", 5),
		"Lead every page with an H1 stating its topic")

	return r.results()
}

func checkContactInformation(s *siteContext) ([]Finding, []string) {
	var r recorder

	r.addRec(boolCheck("contact-page", s.urlsMatching(contactPathRe) > 0,
		"contact page crawled", "no contact page", 10),
		"Publish a contact page; reachability is a baseline trust signal")

	details := s.anySelector(`a[href^="mailto:"], a[href^="tel:"]`)
	if !details {
		for _, p := range s.pages {
			if emailRe.MatchString(p.text) || phoneRe.MatchString(p.text) {
				details = true
				break
			}
		}
	}
	r.addRec(boolCheck("contact-details", details,
		"contact details visible", "no visible contact details", 5),
		"Show an email address or phone number as text")

	return r.results()
}
