package audit

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// pageContext is the parsed view of one snapshot. It is built once per page
// and shared by the page-level checks, the classifier, and the site-level
// checks, so the HTML is only parsed a single time.
type pageContext struct {
	snap    PageSnapshot
	doc     *goquery.Document
	text    string // body text
	lower   string // lowercased body text
	words   int
	jsonLD  []map[string]any
	headers map[string]string // lowercased keys
}

func newPageContext(snap PageSnapshot) *pageContext {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		// html.Parse is lenient; an error here means unreadable input.
		// Degrade to an empty document so every check scores zero.
		doc, _ = goquery.NewDocumentFromReader(strings.NewReader(""))
	}

	text := strings.TrimSpace(doc.Find("body").Text())
	headers := make(map[string]string, len(snap.Headers))
	for k, v := range snap.Headers {
		headers[strings.ToLower(k)] = v
	}

	return &pageContext{
		snap:    snap,
		doc:     doc,
		text:    text,
		lower:   strings.ToLower(text),
		words:   len(strings.Fields(text)),
		jsonLD:  extractJSONLD(doc),
		headers: headers,
	}
}

func (p *pageContext) header(name string) string {
	return p.headers[strings.ToLower(name)]
}

func (p *pageContext) contains(substr string) bool {
	return strings.Contains(p.lower, strings.ToLower(substr))
}

// externalDomains counts distinct external hosts linked from the page.
func (p *pageContext) externalLinks() (internal, external int, domains map[string]bool) {
	domains = make(map[string]bool)
	base := hostOf(p.snap.URL)
	p.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || href == "#" || strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return
		}
		if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
			host := hostOf(href)
			if host != "" && host != base {
				external++
				domains[host] = true
				return
			}
		}
		internal++
	})
	return internal, external, domains
}

// contains is a case-insensitive substring test for resource texts.
func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func hostOf(rawURL string) string {
	rest := rawURL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	return strings.ToLower(strings.TrimPrefix(rest, "www."))
}

// pathOf strips scheme, host, query and fragment from a URL.
func pathOf(rawURL string) string {
	rest := rawURL
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
		if j := strings.Index(rest, "/"); j >= 0 {
			rest = rest[j:]
		} else {
			rest = "/"
		}
	}
	if i := strings.IndexAny(rest, "?#"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}

// Shared signal patterns. Kept package-level so they compile once.
var (
	phoneRe       = regexp.MustCompile(`(\+?\d{1,3}[\s.-]?)?\(?\d{3}\)?[\s.-]\d{3}[\s.-]\d{4}`)
	streetAddrRe  = regexp.MustCompile(`(?i)\b\d{1,5}\s+[A-Za-z][A-Za-z.\s]{1,40}\b(street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|way|court|ct|suite|ste)\b`)
	priceRe       = regexp.MustCompile(`(?i)([$€£]\s?\d[\d,.]*|\d[\d,.]*\s?(usd|eur|gbp))`)
	emailRe       = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	dateTextRe    = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}\b|\b\d{4}-\d{2}-\d{2}\b`)
	hoursTextRe   = regexp.MustCompile(`(?i)\b(mon|tue|wed|thu|fri|sat|sun)[a-z]*\b.{0,40}\b\d{1,2}(:\d{2})?\s?(am|pm)\b`)
	contactPathRe = regexp.MustCompile(`(?i)/(contact|contact-us)(/|$)`)
)

// siteContext is the whole-site view handed to the classifier and the
// site-level analyzer: every page context plus the sitewide resources.
type siteContext struct {
	pages []*pageContext
	res   SiteResources
}

func newSiteContext(pages []*pageContext, res SiteResources) *siteContext {
	return &siteContext{pages: pages, res: res}
}

// typeCounts tallies JSON-LD @type occurrences across all pages.
func (s *siteContext) typeCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range s.pages {
		for _, node := range p.jsonLD {
			for _, t := range ldTypes(node) {
				counts[t]++
			}
		}
	}
	return counts
}

func (s *siteContext) countType(types ...string) int {
	n := 0
	for _, p := range s.pages {
		for _, node := range p.jsonLD {
			if hasType(node, types...) {
				n++
			}
		}
	}
	return n
}

// pagesOfType counts pages carrying at least one node of the given types.
func (s *siteContext) pagesOfType(types ...string) int {
	n := 0
	for _, p := range s.pages {
		if firstOfType(p.jsonLD, types...) != nil {
			n++
		}
	}
	return n
}

func (s *siteContext) firstNodeOfType(types ...string) map[string]any {
	for _, p := range s.pages {
		if node := firstOfType(p.jsonLD, types...); node != nil {
			return node
		}
	}
	return nil
}

// anyPageContains reports whether any page's text carries the substring.
func (s *siteContext) anyPageContains(substr string) bool {
	for _, p := range s.pages {
		if p.contains(substr) {
			return true
		}
	}
	return false
}

func (s *siteContext) pagesContaining(substr string) int {
	n := 0
	for _, p := range s.pages {
		if p.contains(substr) {
			n++
		}
	}
	return n
}

// urlsMatching counts crawled URLs whose path matches the pattern.
func (s *siteContext) urlsMatching(re *regexp.Regexp) int {
	n := 0
	for _, p := range s.pages {
		if re.MatchString(pathOf(p.snap.URL)) {
			n++
		}
	}
	return n
}

// anyNodeHas reports whether any JSON-LD node on any page carries the key.
func (s *siteContext) anyNodeHas(key string) bool {
	for _, p := range s.pages {
		for _, node := range p.jsonLD {
			if node[key] != nil {
				return true
			}
		}
	}
	return false
}

func (s *siteContext) anySelector(selector string) bool {
	for _, p := range s.pages {
		if p.doc.Find(selector).Length() > 0 {
			return true
		}
	}
	return false
}
