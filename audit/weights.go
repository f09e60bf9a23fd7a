package audit

// Content category names. These are stable identifiers shared with the
// report renderer, so changing one is a breaking schema change.
const (
	CatContentStructure   = "content-structure"
	CatStructuredData     = "structured-data"
	CatTopicalAuthority   = "topical-authority"
	CatCitationWorthiness = "citation-worthiness"
	CatFreshness          = "freshness"
	CatLanguagePatterns   = "language-patterns"
	CatMetaInformation    = "meta-information"
	CatTechnicalHealth    = "technical-health"
	CatContentUniqueness  = "content-uniqueness"
	CatMultiFormat        = "multi-format"
	CatTrustSignals       = "trust-signals"
)

// Integration category names. sitemap-robots and agent-manifest are shared
// across every archetype variant.
const (
	CatSitemapRobots = "sitemap-robots"
	CatAgentManifest = "agent-manifest"

	CatOpenAPISpec     = "openapi-spec"
	CatAPIDocsCoverage = "api-docs-coverage"
	CatAuthDocs        = "auth-docs"
	CatSDKAvailability = "sdk-availability"
	CatCodeExamples    = "code-examples"
	CatErrorDocs       = "error-docs"
	CatRateLimitDocs   = "rate-limit-docs"
	CatChangelog       = "changelog"
	CatQuickstart      = "quickstart"
	CatWebhookDocs     = "webhook-docs"

	CatProductSchema        = "product-schema"
	CatOfferPricing         = "offer-pricing"
	CatReviewSignals        = "review-signals"
	CatMerchantFeed         = "merchant-feed"
	CatPolicyPages          = "policy-pages"
	CatStructuredNavigation = "structured-navigation"

	CatLocalSchema       = "local-schema"
	CatNAPConsistency    = "nap-consistency"
	CatServicePages      = "service-pages"
	CatHoursAvailability = "hours-availability"
	CatReviewPresence    = "review-presence"
	CatContactChannels   = "contact-channels"

	CatArticleSchema     = "article-schema"
	CatAuthorCredentials = "author-credentials"
	CatCitationPractices = "citation-practices"
	CatPublishingCadence = "publishing-cadence"
	CatContentFeeds      = "content-feeds"
	CatArchiveNavigation = "archive-navigation"

	CatStructuredDataCoverage = "structured-data-coverage"
	CatContentOrganization    = "content-organization"
	CatContactInformation     = "contact-information"
)

// contentCategory pairs a fixed category with its weight and its slot in
// the ContentProfile struct, so aggregation and scoring can stay
// table-driven without reflection.
type contentCategory struct {
	name   string
	weight float64
	get    func(*ContentProfile) *CategoryScore
}

// The eleven fixed content categories. Weights sum to 1.0 (verified by
// tests, not at runtime).
var contentCategories = []contentCategory{
	{CatContentStructure, 0.12, func(p *ContentProfile) *CategoryScore { return &p.ContentStructure }},
	{CatStructuredData, 0.13, func(p *ContentProfile) *CategoryScore { return &p.StructuredData }},
	{CatTopicalAuthority, 0.10, func(p *ContentProfile) *CategoryScore { return &p.TopicalAuthority }},
	{CatCitationWorthiness, 0.10, func(p *ContentProfile) *CategoryScore { return &p.CitationWorthiness }},
	{CatFreshness, 0.08, func(p *ContentProfile) *CategoryScore { return &p.Freshness }},
	{CatLanguagePatterns, 0.08, func(p *ContentProfile) *CategoryScore { return &p.LanguagePatterns }},
	{CatMetaInformation, 0.10, func(p *ContentProfile) *CategoryScore { return &p.MetaInformation }},
	{CatTechnicalHealth, 0.09, func(p *ContentProfile) *CategoryScore { return &p.TechnicalHealth }},
	{CatContentUniqueness, 0.07, func(p *ContentProfile) *CategoryScore { return &p.ContentUniqueness }},
	{CatMultiFormat, 0.06, func(p *ContentProfile) *CategoryScore { return &p.MultiFormat }},
	{CatTrustSignals, 0.07, func(p *ContentProfile) *CategoryScore { return &p.TrustSignals }},
}

// blendSplit fixes how GEO and AEO combine into the overall score.
type blendSplit struct {
	Content     float64
	Integration float64
}

// The content share dominates everywhere except saas-api, where agent
// integration matters as much as content.
var blendSplits = map[Archetype]blendSplit{
	ArchetypeSaaSAPI:          {0.50, 0.50},
	ArchetypeEcommerce:        {0.55, 0.45},
	ArchetypeLocalBusiness:    {0.65, 0.35},
	ArchetypeContentPublisher: {0.70, 0.30},
	ArchetypeGeneral:          {0.60, 0.40},
}

// effortTable classifies remediation effort per category. Anything not
// listed defaults to medium.
var effortTable = map[string]Effort{
	CatMetaInformation:    EffortLow,
	CatSitemapRobots:      EffortLow,
	CatAgentManifest:      EffortLow,
	CatFreshness:          EffortLow,
	CatContentFeeds:       EffortLow,
	CatContactChannels:    EffortLow,
	CatContactInformation: EffortLow,
	CatHoursAvailability:  EffortLow,

	CatStructuredData:         EffortMedium,
	CatContentStructure:       EffortMedium,
	CatLocalSchema:            EffortMedium,
	CatProductSchema:          EffortMedium,
	CatArticleSchema:          EffortMedium,
	CatStructuredDataCoverage: EffortMedium,
	CatPolicyPages:            EffortMedium,
	CatChangelog:              EffortMedium,
	CatQuickstart:             EffortMedium,

	CatTopicalAuthority:  EffortHigh,
	CatContentUniqueness: EffortHigh,
	CatOpenAPISpec:       EffortHigh,
	CatAPIDocsCoverage:   EffortHigh,
	CatSDKAvailability:   EffortHigh,
	CatMerchantFeed:      EffortHigh,
	CatPublishingCadence: EffortHigh,
}

func effortFor(category string) Effort {
	if e, ok := effortTable[category]; ok {
		return e
	}
	return EffortMedium
}
