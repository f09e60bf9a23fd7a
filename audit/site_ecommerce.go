package audit

import "fmt"

// The ecommerce rubric: product data an answer engine or shopping agent
// can read without scraping prose.

func checkProductSchema(s *siteContext) ([]Finding, []string) {
	var r recorder

	products := s.countType("Product", "ProductGroup", "IndividualProduct")
	r.addRec(boolCheck("product-jsonld", products > 0,
		fmt.Sprintf("%d Product entities marked up", products), "no Product structured data", 10),
		"Mark up every product page with Product structured data")

	covered := s.pagesOfType("Product", "ProductGroup", "IndividualProduct")
	coverage := 0.0
	if len(s.pages) > 0 {
		coverage = float64(covered) / float64(len(s.pages))
	}
	switch {
	case coverage >= 0.3:
		r.add(pass("product-coverage", fmt.Sprintf("%d of %d pages carry product markup", covered, len(s.pages)), 5))
	case covered > 0:
		r.addRec(partial("product-coverage", fmt.Sprintf("only %d of %d pages carry product markup", covered, len(s.pages)), 3, 5),
			"Extend product markup across the catalog, not just flagship pages")
	default:
		r.addRec(fail("product-coverage", "no pages carry product markup", 5),
			"Extend product markup across the catalog, not just flagship pages")
	}

	node := s.firstNodeOfType("Product", "ProductGroup", "IndividualProduct")
	fields := 0
	if node != nil {
		for _, key := range []string{"name", "image", "description"} {
			if ldHas(node, key) {
				fields++
			}
		}
	}
	switch {
	case fields == 3:
		r.add(pass("required-fields", "products carry name, image, and description", 5))
	case fields == 2:
		r.add(partial("required-fields", "products carry 2 of 3 core fields", 3, 5))
	default:
		r.addRec(fail("required-fields", "product markup is missing core fields", 5),
			"Give every Product a name, image, and description")
	}

	return r.results()
}

func checkOfferPricing(s *siteContext) ([]Finding, []string) {
	var r recorder

	offer := s.firstNodeOfType("Offer", "AggregateOffer")
	if offer == nil {
		if p := s.firstNodeOfType("Product"); p != nil {
			if o, ok := p["offers"].(map[string]any); ok {
				offer = o
			}
		}
	}
	r.addRec(boolCheck("offer-present", offer != nil,
		"Offer markup present", "no Offer markup", 10),
		"Attach Offer markup with machine-readable pricing to each product")

	priced := offer != nil && ldHas(offer, "price") && ldHas(offer, "priceCurrency")
	if offer != nil && !priced {
		// price may be numeric rather than string; ldHas only rejects
		// empty strings, so recheck presence directly.
		_, hasPrice := offer["price"]
		_, hasCurrency := offer["priceCurrency"]
		priced = hasPrice && hasCurrency
	}
	r.addRec(boolCheck("price-and-currency", priced,
		"price and currency declared", "offer lacks price or currency", 5),
		"Declare price and priceCurrency explicitly")

	available := offer != nil && offer["availability"] != nil
	r.addRec(boolCheck("availability", available,
		"availability declared", "no availability field", 5),
		"Declare availability so agents never recommend out-of-stock items")

	return r.results()
}

func checkReviewSignals(s *siteContext) ([]Finding, []string) {
	var r recorder

	rating := s.firstNodeOfType("AggregateRating")
	if rating == nil {
		if p := s.firstNodeOfType("Product"); p != nil {
			if ar, ok := p["aggregateRating"].(map[string]any); ok {
				rating = ar
			}
		}
	}
	r.addRec(boolCheck("aggregate-rating", rating != nil,
		"aggregate rating markup present", "no aggregate rating markup", 10),
		"Expose review scores as AggregateRating markup")

	r.addRec(boolCheck("review-markup", s.countType("Review") > 0,
		"individual reviews marked up", "no Review markup", 5),
		"Mark up individual reviews with Review structured data")

	complete := rating != nil && rating["ratingValue"] != nil && rating["reviewCount"] != nil
	r.add(boolCheck("rating-fields", complete,
		"rating value and count declared", "rating markup missing value or count", 5))

	return r.results()
}

func checkMerchantFeed(s *siteContext) ([]Finding, []string) {
	var r recorder

	feed := s.anyPageContains("product feed") || s.anyPageContains("merchant center") ||
		contains(s.res.RobotsTxt, "feed") || contains(s.res.LLMSTxt, "feed")
	r.addRec(boolCheck("feed-reference", feed,
		"a product feed is referenced", "no product feed referenced", 10),
		"Publish a structured product feed and reference it where machines look")

	node := s.firstNodeOfType("Product")
	identified := node != nil && (ldHas(node, "sku") || ldHas(node, "gtin") || ldHas(node, "gtin13") || ldHas(node, "mpn"))
	r.addRec(boolCheck("sku-identifiers", identified,
		"products carry stable identifiers", "no SKU/GTIN/MPN identifiers", 5),
		"Give products stable identifiers (sku, gtin, mpn) so catalogs reconcile")

	return r.results()
}

func checkPolicyPages(s *siteContext) ([]Finding, []string) {
	var r recorder

	r.addRec(boolCheck("shipping-policy", s.anyPageContains("shipping"),
		"shipping terms stated", "no shipping information", 5),
		"State shipping terms; agents get asked about delivery constantly")

	returns := s.anyPageContains("return policy") || s.anyPageContains("refund")
	r.addRec(boolCheck("returns-policy", returns,
		"returns policy stated", "no returns or refund policy", 5),
		"State the returns and refund policy in plain language")

	legal := s.anyPageContains("privacy policy") && s.anyPageContains("terms")
	r.addRec(boolCheck("privacy-terms", legal,
		"privacy policy and terms published", "privacy policy or terms missing", 5),
		"Publish privacy policy and terms of service pages")

	return r.results()
}

func checkStructuredNavigation(s *siteContext) ([]Finding, []string) {
	var r recorder

	r.addRec(boolCheck("breadcrumb-schema", s.countType("BreadcrumbList") > 0,
		"breadcrumb markup present", "no breadcrumb markup", 10),
		"Add BreadcrumbList markup so catalog structure is machine-readable")

	switch n := s.urlsMatching(categoryPathRe); {
	case n >= 2:
		r.add(pass("category-paths", fmt.Sprintf("%d category pages crawled", n), 5))
	case n == 1:
		r.add(partial("category-paths", "one category page crawled", 3, 5))
	default:
		r.addRec(fail("category-paths", "no category pages found", 5),
			"Organize products under crawlable category pages")
	}

	return r.results()
}
