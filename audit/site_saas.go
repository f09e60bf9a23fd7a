package audit

import (
	"fmt"
	"strings"
)

// The saas-api rubric: how far a developer-facing site goes toward being
// machine-actionable. All evaluators run over the whole crawled page set
// plus the sitewide resources.

func checkOpenAPISpec(s *siteContext) ([]Finding, []string) {
	var r recorder

	if strings.TrimSpace(s.res.OpenAPIDoc) == "" {
		r.addRec(fail("spec-present", "no OpenAPI document", 10),
			"Publish an OpenAPI specification; it is the contract agents integrate against")
		r.add(fail("spec-parses", "nothing to parse", 5))
		r.add(fail("spec-version", "no version to declare", 5))
		r.add(fail("paths-documented", "no operations documented", 5))
		r.add(fail("operation-descriptions", "no operations to describe", 5))
		return r.results()
	}
	r.add(pass("spec-present", "OpenAPI document published", 10))

	spec := parseOpenAPI(s.res.OpenAPIDoc)
	if spec == nil {
		r.addRec(fail("spec-parses", "document does not parse as OpenAPI or Swagger", 5),
			"Fix the OpenAPI document so it parses; a broken spec is worse than none")
		r.add(fail("spec-version", "unparseable document", 5))
		r.add(fail("paths-documented", "unparseable document", 5))
		r.add(fail("operation-descriptions", "unparseable document", 5))
		return r.results()
	}
	r.add(pass("spec-parses", "document parses cleanly", 5))
	r.add(boolCheck("spec-version", spec.version() != "",
		fmt.Sprintf("declares version %s", spec.version()), "no openapi/swagger version field", 5))

	switch n := len(spec.paths()); {
	case n >= 5:
		r.add(pass("paths-documented", fmt.Sprintf("%d paths documented", n), 5))
	case n >= 1:
		r.addRec(partial("paths-documented", fmt.Sprintf("only %d paths documented", n), 3, 5),
			"Document every public endpoint in the OpenAPI paths object")
	default:
		r.addRec(fail("paths-documented", "spec declares no paths", 5),
			"Document every public endpoint in the OpenAPI paths object")
	}

	ops := spec.operations()
	described := 0
	for _, op := range ops {
		if ldHas(op, "description") || ldHas(op, "summary") {
			described++
		}
	}
	switch {
	case len(ops) > 0 && described == len(ops):
		r.add(pass("operation-descriptions", "every operation carries a description", 5))
	case described > 0:
		r.addRec(partial("operation-descriptions",
			fmt.Sprintf("%d of %d operations described", described, len(ops)), 3, 5),
			"Give every operation a summary or description agents can reason over")
	default:
		r.addRec(fail("operation-descriptions", "no operation descriptions", 5),
			"Give every operation a summary or description agents can reason over")
	}

	return r.results()
}

func checkAPIDocsCoverage(s *siteContext) ([]Finding, []string) {
	var r recorder

	switch n := s.urlsMatching(docsPathRe); {
	case n >= 5:
		r.add(pass("docs-pages", fmt.Sprintf("%d documentation pages crawled", n), 10))
	case n >= 1:
		r.addRec(partial("docs-pages", fmt.Sprintf("only %d documentation pages crawled", n), 5, 10),
			"Grow the reference documentation; thin docs limit what agents can do unaided")
	default:
		r.addRec(fail("docs-pages", "no documentation pages found", 10),
			"Publish reference documentation under a /docs or /api path")
	}

	endpointRef := s.anyPageContains("GET /") || s.anyPageContains("POST /")
	r.addRec(boolCheck("endpoint-reference", endpointRef,
		"endpoint reference notation found", "no endpoint reference notation", 5),
		"Document endpoints with explicit method and path notation")

	return r.results()
}

func checkAuthDocs(s *siteContext) ([]Finding, []string) {
	var r recorder

	documented := s.anyPageContains("authentication") || s.anyPageContains("authorization") ||
		s.anyPageContains("api key")
	r.addRec(boolCheck("auth-documented", documented,
		"authentication is documented", "no authentication documentation", 10),
		"Document how clients authenticate; agents cannot guess a credential flow")

	examples := s.anyPageContains("bearer ") || s.anyPageContains("authorization:")
	r.addRec(boolCheck("credential-examples", examples,
		"credential header examples shown", "no credential header examples", 5),
		"Show a literal Authorization header example")

	return r.results()
}

func checkSDKAvailability(s *siteContext) ([]Finding, []string) {
	var r recorder

	r.addRec(boolCheck("sdk-mentions", s.anyPageContains("sdk") || s.anyPageContains("client library"),
		"SDKs or client libraries offered", "no SDK or client library mentioned", 10),
		"Offer SDKs or client libraries for the main ecosystems")

	managers := 0
	for _, cmd := range []string{"npm install", "pip install", "go get", "gem install", "composer require", "cargo add"} {
		if s.anyPageContains(cmd) {
			managers++
		}
	}
	switch {
	case managers >= 2:
		r.add(pass("package-managers", fmt.Sprintf("%d package-manager install commands", managers), 5))
	case managers == 1:
		r.add(partial("package-managers", "one package-manager install command", 3, 5))
	default:
		r.addRec(fail("package-managers", "no package-manager install commands", 5),
			"Show the literal install command for each SDK")
	}

	return r.results()
}

func checkCodeExamples(s *siteContext) ([]Finding, []string) {
	var r recorder

	blocks := 0
	for _, p := range s.pages {
		blocks += p.doc.Find("pre").Length()
	}
	switch {
	case blocks >= 10:
		r.add(pass("code-blocks", fmt.Sprintf("%d code blocks across the site", blocks), 10))
	case blocks >= 3:
		r.addRec(partial("code-blocks", fmt.Sprintf("%d code blocks across the site", blocks), 6, 10),
			"Pair every documented operation with a runnable code example")
	case blocks >= 1:
		r.addRec(partial("code-blocks", fmt.Sprintf("only %d code blocks", blocks), 3, 10),
			"Pair every documented operation with a runnable code example")
	default:
		r.addRec(fail("code-blocks", "no code blocks", 10),
			"Pair every documented operation with a runnable code example")
	}

	r.addRec(boolCheck("curl-examples", s.anyPageContains("curl "),
		"curl examples present", "no curl examples", 5),
		"Include curl examples; they double as agent-executable templates")

	languages := 0
	for _, lang := range []string{"python", "javascript", "typescript", "golang", "ruby", "java"} {
		if s.anyPageContains(lang) {
			languages++
		}
	}
	switch {
	case languages >= 2:
		r.add(pass("multi-language", fmt.Sprintf("%d languages referenced", languages), 5))
	case languages == 1:
		r.add(partial("multi-language", "one language referenced", 3, 5))
	default:
		r.add(fail("multi-language", "no language-specific guidance", 5))
	}

	return r.results()
}

func checkErrorDocs(s *siteContext) ([]Finding, []string) {
	var r recorder

	documented := s.anyPageContains("error code") || s.anyPageContains("status code")
	r.addRec(boolCheck("error-reference", documented,
		"error responses documented", "no error response documentation", 10),
		"Document error codes and what a client should do about each")

	troubleshooting := s.anyPageContains("troubleshoot") ||
		s.urlsMatching(faqPathRe) > 0
	r.addRec(boolCheck("troubleshooting", troubleshooting,
		"troubleshooting guidance present", "no troubleshooting guidance", 5),
		"Add a troubleshooting or FAQ page for common failures")

	return r.results()
}

func checkRateLimitDocs(s *siteContext) ([]Finding, []string) {
	var r recorder

	r.addRec(boolCheck("rate-limits-documented", s.anyPageContains("rate limit"),
		"rate limits documented", "no rate limit documentation", 10),
		"Document rate limits so well-behaved agents can pace themselves")

	headers := s.anyPageContains("x-ratelimit") || s.anyPageContains("retry-after")
	r.addRec(boolCheck("limit-headers", headers,
		"limit headers documented", "no limit header documentation", 5),
		"Document the X-RateLimit / Retry-After headers your API returns")

	return r.results()
}

func checkChangelog(s *siteContext) ([]Finding, []string) {
	var r recorder

	page := s.urlsMatching(changelogPathRe) > 0 ||
		s.anyPageContains("changelog") || s.anyPageContains("release notes")
	r.addRec(boolCheck("changelog-page", page,
		"changelog published", "no changelog", 10),
		"Publish a changelog; agents pin behavior to versions")

	versioned := s.anyPageContains("/v1/") || s.anyPageContains("/v2/") ||
		s.anyPageContains("api version")
	r.addRec(boolCheck("versioning", versioned,
		"API versioning visible", "no versioning scheme visible", 5),
		"Version the API surface explicitly")

	return r.results()
}

func checkQuickstart(s *siteContext) ([]Finding, []string) {
	var r recorder

	quickstart := s.anyPageContains("quickstart") || s.anyPageContains("getting started")
	r.addRec(boolCheck("quickstart-page", quickstart,
		"quickstart guide present", "no quickstart guide", 10),
		"Publish a quickstart that reaches a first successful call fast")

	copyPaste := false
	if quickstart {
		for _, p := range s.pages {
			if (p.contains("quickstart") || p.contains("getting started")) && p.doc.Find("pre").Length() > 0 {
				copyPaste = true
				break
			}
		}
	}
	r.addRec(boolCheck("copy-paste-ready", copyPaste,
		"quickstart includes runnable code", "quickstart lacks runnable code", 5),
		"Make the quickstart copy-paste runnable end to end")

	return r.results()
}

func checkWebhookDocs(s *siteContext) ([]Finding, []string) {
	var r recorder

	webhook := s.anyPageContains("webhook")
	r.addRec(boolCheck("webhooks-documented", webhook,
		"webhooks documented", "no webhook documentation", 10),
		"Document webhooks; push integration is what makes agents reactive")

	payloads := false
	if webhook {
		for _, p := range s.pages {
			if p.contains("webhook") && p.doc.Find("pre").Length() > 0 {
				payloads = true
				break
			}
		}
	}
	r.addRec(boolCheck("payload-examples", payloads,
		"webhook payload examples shown", "no webhook payload examples", 5),
		"Show example webhook payloads verbatim")

	return r.results()
}
