package audit

// integrationCheck is one category of an archetype's integration rubric:
// a weight plus a pure evaluator over the whole crawled site.
type integrationCheck struct {
	name   string
	weight float64
	eval   func(*siteContext) ([]Finding, []string)
}

// The five closed rubric variants. Weights within each variant sum to 1.0
// (verified by tests). sitemap-robots and agent-manifest appear in every
// variant because they are archetype-independent.
var integrationVariants = map[Archetype][]integrationCheck{
	ArchetypeSaaSAPI: {
		{CatOpenAPISpec, 0.15, checkOpenAPISpec},
		{CatAPIDocsCoverage, 0.12, checkAPIDocsCoverage},
		{CatAuthDocs, 0.08, checkAuthDocs},
		{CatSDKAvailability, 0.08, checkSDKAvailability},
		{CatCodeExamples, 0.10, checkCodeExamples},
		{CatErrorDocs, 0.07, checkErrorDocs},
		{CatRateLimitDocs, 0.06, checkRateLimitDocs},
		{CatChangelog, 0.06, checkChangelog},
		{CatQuickstart, 0.08, checkQuickstart},
		{CatWebhookDocs, 0.05, checkWebhookDocs},
		{CatSitemapRobots, 0.07, checkSitemapRobots},
		{CatAgentManifest, 0.08, checkAgentManifest},
	},
	ArchetypeEcommerce: {
		{CatProductSchema, 0.18, checkProductSchema},
		{CatOfferPricing, 0.13, checkOfferPricing},
		{CatReviewSignals, 0.12, checkReviewSignals},
		{CatMerchantFeed, 0.10, checkMerchantFeed},
		{CatPolicyPages, 0.12, checkPolicyPages},
		{CatStructuredNavigation, 0.10, checkStructuredNavigation},
		{CatSitemapRobots, 0.12, checkSitemapRobots},
		{CatAgentManifest, 0.13, checkAgentManifest},
	},
	ArchetypeLocalBusiness: {
		{CatLocalSchema, 0.20, checkLocalSchema},
		{CatNAPConsistency, 0.16, checkNAPConsistency},
		{CatServicePages, 0.12, checkServicePages},
		{CatHoursAvailability, 0.10, checkHoursAvailability},
		{CatReviewPresence, 0.12, checkReviewPresence},
		{CatContactChannels, 0.10, checkContactChannels},
		{CatSitemapRobots, 0.10, checkSitemapRobots},
		{CatAgentManifest, 0.10, checkAgentManifest},
	},
	ArchetypeContentPublisher: {
		{CatArticleSchema, 0.18, checkArticleSchema},
		{CatAuthorCredentials, 0.15, checkAuthorCredentials},
		{CatCitationPractices, 0.13, checkCitationPractices},
		{CatPublishingCadence, 0.12, checkPublishingCadence},
		{CatContentFeeds, 0.12, checkContentFeeds},
		{CatArchiveNavigation, 0.08, checkArchiveNavigation},
		{CatSitemapRobots, 0.10, checkSitemapRobots},
		{CatAgentManifest, 0.12, checkAgentManifest},
	},
	ArchetypeGeneral: {
		{CatStructuredDataCoverage, 0.25, checkStructuredDataCoverage},
		{CatContentOrganization, 0.20, checkContentOrganization},
		{CatContactInformation, 0.15, checkContactInformation},
		{CatSitemapRobots, 0.20, checkSitemapRobots},
		{CatAgentManifest, 0.20, checkAgentManifest},
	},
}

// analyzeIntegration runs the archetype's rubric variant over the site.
func analyzeIntegration(s *siteContext, archetype Archetype) IntegrationProfile {
	checks, ok := integrationVariants[archetype]
	if !ok {
		checks = integrationVariants[ArchetypeGeneral]
	}
	categories := make(map[string]CategoryScore, len(checks))
	for _, c := range checks {
		findings, recs := c.eval(s)
		categories[c.name] = newCategoryScore(c.weight, findings, recs)
	}
	return IntegrationProfile{Archetype: archetype, Categories: categories}
}

// integrationOrder is the stable iteration order for a variant's
// categories; map iteration alone would not be deterministic.
func integrationOrder(archetype Archetype) []string {
	checks, ok := integrationVariants[archetype]
	if !ok {
		checks = integrationVariants[ArchetypeGeneral]
	}
	names := make([]string, len(checks))
	for i, c := range checks {
		names[i] = c.name
	}
	return names
}
