package audit

// snippetKey identifies a remediation template by the category and the
// failed check that triggers it.
type snippetKey struct {
	category string
	check    string
}

// snippetTable maps a failed check to a ready-to-adapt starter template.
// Lookup is deterministic; most categories have no template.
var snippetTable = map[snippetKey]Snippet{
	{CatStructuredData, "faq-howto"}: {
		Language: "json",
		Label:    "FAQPage JSON-LD starter",
		Code: `<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "FAQPage",
  "mainEntity": [{
    "@type": "Question",
    "name": "What does your product do?",
    "acceptedAnswer": {
      "@type": "Answer",
      "text": "A one-paragraph direct answer."
    }
  }]
}
</script>`,
	},
	{CatAgentManifest, "llms-txt"}: {
		Language: "markdown",
		Label:    "llms.txt starter",
		Code: `# Your Site Name

> One-paragraph summary of what this site offers and who it serves.

## Docs

- [Getting started](https://example.com/docs/quickstart): first steps
- [API reference](https://example.com/docs/api): full endpoint reference

## Policies

- [Terms](https://example.com/terms): usage terms for automated clients`,
	},
	{CatSitemapRobots, "ai-crawlers-allowed"}: {
		Language: "text",
		Label:    "robots.txt AI crawler allowances",
		Code: `User-agent: GPTBot
Allow: /

User-agent: ClaudeBot
Allow: /

User-agent: PerplexityBot
Allow: /

Sitemap: https://example.com/sitemap.xml`,
	},
	{CatSitemapRobots, "robots-present"}: {
		Language: "text",
		Label:    "robots.txt starter",
		Code: `User-agent: *
Allow: /

Sitemap: https://example.com/sitemap.xml`,
	},
	{CatLocalSchema, "localbusiness-jsonld"}: {
		Language: "json",
		Label:    "LocalBusiness JSON-LD starter",
		Code: `<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "LocalBusiness",
  "name": "Your Business",
  "telephone": "+1-555-555-0100",
  "address": {
    "@type": "PostalAddress",
    "streetAddress": "123 Main Street",
    "addressLocality": "Springfield",
    "addressRegion": "CA",
    "postalCode": "90000"
  },
  "openingHours": "Mo-Fr 09:00-17:00"
}
</script>`,
	},
	{CatProductSchema, "product-jsonld"}: {
		Language: "json",
		Label:    "Product JSON-LD starter",
		Code: `<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Product",
  "name": "Product Name",
  "image": "https://example.com/product.jpg",
  "description": "One-paragraph product description.",
  "sku": "SKU-0001",
  "offers": {
    "@type": "Offer",
    "price": "49.00",
    "priceCurrency": "USD",
    "availability": "https://schema.org/InStock"
  }
}
</script>`,
	},
	{CatArticleSchema, "article-jsonld"}: {
		Language: "json",
		Label:    "Article JSON-LD starter",
		Code: `<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "Article",
  "headline": "Article Headline",
  "datePublished": "2025-01-01",
  "dateModified": "2025-06-01",
  "author": {
    "@type": "Person",
    "name": "Author Name"
  }
}
</script>`,
	},
	{CatOpenAPISpec, "spec-present"}: {
		Language: "yaml",
		Label:    "OpenAPI starter",
		Code: `openapi: 3.1.0
info:
  title: Your API
  version: 1.0.0
paths:
  /things:
    get:
      summary: List things
      responses:
        "200":
          description: A list of things`,
	},
}

// snippetFor returns the template keyed by the category and its first
// failed check with one registered, or nil.
func snippetFor(category string, findings []Finding) *Snippet {
	for _, f := range findings {
		if f.Status != StatusFail {
			continue
		}
		if s, ok := snippetTable[snippetKey{category, f.Check}]; ok {
			return &s
		}
	}
	return nil
}
