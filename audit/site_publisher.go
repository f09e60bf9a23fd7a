package audit

import (
	"fmt"
	"time"
)

// The content-publisher rubric: editorial provenance and syndication
// surfaces an answer engine leans on when deciding whom to cite.

func checkArticleSchema(s *siteContext) ([]Finding, []string) {
	var r recorder

	articles := s.countType(articleTypes...)
	r.addRec(boolCheck("article-jsonld", articles > 0,
		fmt.Sprintf("%d article entities marked up", articles), "no Article structured data", 10),
		"Mark up posts with Article or BlogPosting structured data")

	covered := s.pagesOfType(articleTypes...)
	switch {
	case len(s.pages) > 0 && covered*2 >= len(s.pages):
		r.add(pass("article-coverage", fmt.Sprintf("%d of %d pages carry article markup", covered, len(s.pages)), 5))
	case covered > 0:
		r.addRec(partial("article-coverage", fmt.Sprintf("only %d of %d pages carry article markup", covered, len(s.pages)), 3, 5),
			"Extend article markup to the whole archive")
	default:
		r.addRec(fail("article-coverage", "no pages carry article markup", 5),
			"Extend article markup to the whole archive")
	}

	node := s.firstNodeOfType(articleTypes...)
	complete := node != nil && ldHas(node, "headline") && ldHas(node, "datePublished")
	r.addRec(boolCheck("headline-and-dates", complete,
		"articles declare headline and publication date", "article markup missing headline or date", 5),
		"Declare headline and datePublished on every article")

	r.addRec(boolCheck("author-field", node != nil && node["author"] != nil,
		"articles declare an author", "article markup has no author", 5),
		"Declare the author inside the article markup")

	return r.results()
}

func checkAuthorCredentials(s *siteContext) ([]Finding, []string) {
	var r recorder

	withAuthor := 0
	for _, p := range s.pages {
		for _, node := range p.jsonLD {
			if node["author"] != nil {
				withAuthor++
				break
			}
		}
	}
	switch {
	case len(s.pages) > 0 && withAuthor*2 >= len(s.pages):
		r.add(pass("author-bylines", fmt.Sprintf("%d of %d pages carry author markup", withAuthor, len(s.pages)), 10))
	case withAuthor > 0:
		r.addRec(partial("author-bylines", fmt.Sprintf("only %d of %d pages carry author markup", withAuthor, len(s.pages)), 5, 10),
			"Credit a named author on every article")
	default:
		r.addRec(fail("author-bylines", "no author markup anywhere", 10),
			"Credit a named author on every article")
	}

	r.addRec(boolCheck("author-pages", s.urlsMatching(authorPathRe) > 0,
		"author or team pages published", "no author pages", 5),
		"Publish author bio pages that establish expertise")

	person := s.firstNodeOfType("Person")
	credentialed := person != nil && (ldHas(person, "jobTitle") || person["sameAs"] != nil)
	r.addRec(boolCheck("credentials-markup", credentialed,
		"author credentials in structured data", "no credential markup for authors", 5),
		"Link authors to their credentials (jobTitle, sameAs profiles) in Person markup")

	return r.results()
}

func checkCitationPractices(s *siteContext) ([]Finding, []string) {
	var r recorder

	totalExternal := 0
	for _, p := range s.pages {
		_, external, _ := p.externalLinks()
		totalExternal += external
	}
	mean := 0.0
	if len(s.pages) > 0 {
		mean = float64(totalExternal) / float64(len(s.pages))
	}
	switch {
	case mean >= 2:
		r.add(pass("outbound-citations", fmt.Sprintf("averaging %.1f outbound links per page", mean), 10))
	case mean >= 1:
		r.addRec(partial("outbound-citations", fmt.Sprintf("averaging %.1f outbound links per page", mean), 5, 10),
			"Cite sources with outbound links; engines mirror citation habits")
	default:
		r.addRec(fail("outbound-citations", "articles rarely link out", 10),
			"Cite sources with outbound links; engines mirror citation habits")
	}

	r.add(boolCheck("citation-markup", s.anySelector("cite, blockquote"),
		"quotations and citations marked up", "no cite or blockquote markup", 5))

	sections := s.anyPageContains("sources") || s.anyPageContains("references")
	r.addRec(boolCheck("source-sections", sections,
		"source sections present", "no source or reference sections", 5),
		"End substantial pieces with a sources section")

	return r.results()
}

func checkPublishingCadence(s *siteContext) ([]Finding, []string) {
	var r recorder

	var dates []time.Time
	for _, p := range s.pages {
		published, _ := pageDates(p)
		if t, ok := parseLDDate(published); ok {
			dates = append(dates, t)
		}
	}

	switch {
	case len(dates) >= 2:
		r.add(pass("dates-present", fmt.Sprintf("%d pages carry parseable publication dates", len(dates)), 10))
	case len(dates) == 1:
		r.addRec(partial("dates-present", "only one page carries a parseable publication date", 5, 10),
			"Date every article in machine-readable form")
	default:
		r.addRec(fail("dates-present", "no parseable publication dates", 10),
			"Date every article in machine-readable form")
	}

	months := make(map[string]bool)
	for _, t := range dates {
		months[t.Format("2006-01")] = true
	}
	r.addRec(boolCheck("date-spread", len(months) >= 2,
		fmt.Sprintf("publishing spans %d distinct months", len(months)),
		"crawled publication dates cluster in a single month", 5),
		"Sustain a publishing cadence; a one-burst archive reads as abandoned")

	return r.results()
}

// parseLDDate accepts the date shapes JSON-LD commonly carries.
func parseLDDate(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func checkContentFeeds(s *siteContext) ([]Finding, []string) {
	var r recorder

	link := s.anySelector(`link[type="application/rss+xml"], link[type="application/atom+xml"]`)
	r.addRec(boolCheck("rss-link", link,
		"feed advertised in page head", "no RSS/Atom feed advertised", 10),
		"Advertise an RSS or Atom feed in the page head")

	r.addRec(boolCheck("feed-paths", s.urlsMatching(feedPathRe) > 0,
		"feed endpoint crawled", "no feed endpoint found", 5),
		"Serve the feed at a conventional path such as /feed or /rss.xml")

	return r.results()
}

func checkArchiveNavigation(s *siteContext) ([]Finding, []string) {
	var r recorder

	r.addRec(boolCheck("taxonomy-paths", s.urlsMatching(categoryPathRe) > 0,
		"category or tag pages crawled", "no category or tag pages", 10),
		"Organize the archive under category and tag pages")

	r.add(boolCheck("archive-links", s.anyPageContains("archive"),
		"archive navigation present", "no archive navigation", 5))

	return r.results()
}
