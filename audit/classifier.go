package audit

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// URL path signals per archetype.
var (
	docsPathRe      = regexp.MustCompile(`(?i)/(docs?|api|reference|sdk|developers?)(/|$)`)
	shopPathRe      = regexp.MustCompile(`(?i)/(shop|store|cart|checkout|products?|collections?)(/|$)`)
	localPathRe     = regexp.MustCompile(`(?i)/(contact|locations?|about)(/|$)`)
	blogPathRe      = regexp.MustCompile(`(?i)/(blog|articles?|news|posts?|stories)(/|$)`)
	servicesPathRe  = regexp.MustCompile(`(?i)/(services?|treatments|practice-areas|menu)(/|$)`)
	changelogPathRe = regexp.MustCompile(`(?i)/(changelog|release-?notes|whats-?new)(/|$)`)
	faqPathRe       = regexp.MustCompile(`(?i)/(faq|help|support|troubleshooting)(/|$)`)
	authorPathRe    = regexp.MustCompile(`(?i)/(authors?|team|about|staff|contributors)(/|$)`)
	categoryPathRe  = regexp.MustCompile(`(?i)/(categor(y|ies)|collections?|tags?|topics|archives?)(/|$)`)
	feedPathRe      = regexp.MustCompile(`(?i)/(feed|rss|atom)(\.xml)?(/|$)`)
)

// classify assigns the archetype through a strict first-match-wins chain.
// It is total: an empty or unrecognizable site falls through to general.
func classify(s *siteContext) Archetype {
	if len(s.pages) == 0 {
		return ArchetypeGeneral
	}

	if isSaaSAPI(s) {
		return ArchetypeSaaSAPI
	}
	if isEcommerce(s) {
		return ArchetypeEcommerce
	}
	if isLocalBusiness(s) {
		return ArchetypeLocalBusiness
	}
	if isContentPublisher(s) {
		return ArchetypeContentPublisher
	}
	return ArchetypeGeneral
}

func isSaaSAPI(s *siteContext) bool {
	if spec := parseOpenAPI(s.res.OpenAPIDoc); spec != nil {
		return true
	}
	if s.urlsMatching(docsPathRe) >= 3 {
		return true
	}
	return s.anyPageContains("api key") && s.anyPageContains("endpoint") &&
		(s.anyPageContains("sdk") || s.anyPageContains("documentation"))
}

func isEcommerce(s *siteContext) bool {
	if s.countType(productTypes...) > 0 {
		return true
	}
	if s.urlsMatching(shopPathRe) > 0 {
		return true
	}
	if !s.anyPageContains("add to cart") {
		return false
	}
	for _, p := range s.pages {
		if priceRe.MatchString(p.text) {
			return true
		}
	}
	return false
}

func isLocalBusiness(s *siteContext) bool {
	if s.countType(localBusinessTypes...) > 0 {
		return true
	}
	if s.urlsMatching(localPathRe) > 0 {
		for _, p := range s.pages {
			if streetAddrRe.MatchString(p.text) {
				return true
			}
		}
	}
	// A recurring name+address+phone block is the classic footer signal.
	napPages := 0
	for _, p := range s.pages {
		if phoneRe.MatchString(p.text) && streetAddrRe.MatchString(p.text) {
			napPages++
		}
	}
	return napPages >= 2
}

func isContentPublisher(s *siteContext) bool {
	if s.countType(articleTypes...) >= 5 {
		return true
	}
	matched := s.urlsMatching(blogPathRe)
	return float64(matched) > 0.4*float64(len(s.pages))
}

// openAPIDoc is the parsed shape of the spec document the fetch layer
// handed us. YAML is a superset of JSON here, so one parser covers both.
type openAPIDoc map[string]any

// parseOpenAPI returns nil unless the text parses and identifies itself as
// an OpenAPI or Swagger document.
func parseOpenAPI(text string) openAPIDoc {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil
	}
	if _, ok := doc["openapi"]; ok {
		return doc
	}
	if _, ok := doc["swagger"]; ok {
		return doc
	}
	return nil
}

func (d openAPIDoc) version() string {
	if v, ok := d["openapi"].(string); ok {
		return v
	}
	if v, ok := d["swagger"].(string); ok {
		return v
	}
	return ""
}

func (d openAPIDoc) paths() map[string]any {
	paths, _ := d["paths"].(map[string]any)
	return paths
}

// operations flattens every path item into its operation objects.
func (d openAPIDoc) operations() []map[string]any {
	var ops []map[string]any
	methods := []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}
	for _, item := range d.paths() {
		pathItem, ok := item.(map[string]any)
		if !ok {
			continue
		}
		for _, m := range methods {
			if op, ok := pathItem[m].(map[string]any); ok {
				ops = append(ops, op)
			}
		}
	}
	return ops
}
