package audit

import "fmt"

// The local-business rubric: whether an agent can answer "who are they,
// where are they, when are they open" from machine-readable signals.

func checkLocalSchema(s *siteContext) ([]Finding, []string) {
	var r recorder

	node := s.firstNodeOfType(localBusinessTypes...)
	r.addRec(boolCheck("localbusiness-jsonld", node != nil,
		"LocalBusiness structured data present", "no LocalBusiness structured data", 10),
		"Add LocalBusiness structured data with your name, address, and phone")

	r.addRec(boolCheck("address-field", node != nil && node["address"] != nil,
		"address declared in markup", "no structured address", 5),
		"Declare the street address inside the LocalBusiness markup")

	r.add(boolCheck("geo-coordinates", node != nil && node["geo"] != nil,
		"geo coordinates declared", "no geo coordinates", 5))

	hours := node != nil && (node["openingHours"] != nil || node["openingHoursSpecification"] != nil)
	r.addRec(boolCheck("hours-field", hours,
		"opening hours declared in markup", "no structured opening hours", 5),
		"Declare opening hours in the LocalBusiness markup")

	return r.results()
}

func checkNAPConsistency(s *siteContext) ([]Finding, []string) {
	var r recorder

	phonePages, addressPages, napPages := 0, 0, 0
	for _, p := range s.pages {
		phone := phoneRe.MatchString(p.text)
		address := streetAddrRe.MatchString(p.text)
		if phone {
			phonePages++
		}
		if address {
			addressPages++
		}
		if phone && address {
			napPages++
		}
	}

	r.addRec(boolCheck("phone-present", phonePages > 0,
		fmt.Sprintf("phone number found on %d pages", phonePages), "no phone number found", 5),
		"Show the business phone number as text, not an image")

	r.addRec(boolCheck("address-present", addressPages > 0,
		fmt.Sprintf("street address found on %d pages", addressPages), "no street address found", 5),
		"Show the street address as text on the site")

	switch {
	case napPages >= 2:
		r.add(pass("nap-recurs", fmt.Sprintf("name/address/phone recurs on %d pages", napPages), 10))
	case napPages == 1:
		r.addRec(partial("nap-recurs", "name/address/phone appears on a single page only", 5, 10),
			"Repeat the name/address/phone block consistently, typically in the footer")
	default:
		r.addRec(fail("nap-recurs", "no consistent name/address/phone block", 10),
			"Repeat the name/address/phone block consistently, typically in the footer")
	}

	r.addRec(boolCheck("clickable-phone", s.anySelector(`a[href^="tel:"]`),
		"phone number is a tel: link", "phone number is not clickable", 5),
		"Make the phone number a tel: link")

	return r.results()
}

func checkServicePages(s *siteContext) ([]Finding, []string) {
	var r recorder

	n := s.urlsMatching(servicesPathRe)
	r.addRec(boolCheck("service-paths", n > 0,
		fmt.Sprintf("%d service pages crawled", n), "no dedicated service pages", 10),
		"Give each service its own descriptive page")

	detailed := false
	for _, p := range s.pages {
		if servicesPathRe.MatchString(pathOf(p.snap.URL)) && p.words >= 200 {
			detailed = true
			break
		}
	}
	r.addRec(boolCheck("service-descriptions", detailed,
		"service pages carry substantive descriptions", "service pages are thin", 5),
		"Describe each service in enough depth to be quoted as an answer")

	return r.results()
}

func checkHoursAvailability(s *siteContext) ([]Finding, []string) {
	var r recorder

	visible := false
	for _, p := range s.pages {
		if hoursTextRe.MatchString(p.text) {
			visible = true
			break
		}
	}
	r.addRec(boolCheck("hours-visible", visible,
		"opening hours visible as text", "no visible opening hours", 10),
		"Publish opening hours as plain text, not an image or widget")

	structured := s.firstNodeOfType(localBusinessTypes...) != nil &&
		(s.anyNodeHas("openingHoursSpecification") || s.anyNodeHas("openingHours"))
	r.addRec(boolCheck("hours-structured", structured,
		"hours available in structured form", "no structured hours", 5),
		"Mirror the visible hours in openingHoursSpecification markup")

	return r.results()
}

func checkReviewPresence(s *siteContext) ([]Finding, []string) {
	var r recorder

	r.addRec(boolCheck("review-schema", s.countType("Review", "AggregateRating") > 0,
		"review markup present", "no review markup", 10),
		"Mark up customer reviews so reputation is machine-readable")

	social := s.anyPageContains("testimonial") || s.anyPageContains("review")
	r.add(boolCheck("testimonials", social,
		"testimonials or reviews shown", "no testimonials shown", 5))

	return r.results()
}

func checkContactChannels(s *siteContext) ([]Finding, []string) {
	var r recorder

	r.addRec(boolCheck("contact-page", s.urlsMatching(contactPathRe) > 0,
		"dedicated contact page crawled", "no contact page", 5),
		"Publish a dedicated contact page")

	r.add(boolCheck("clickable-channels", s.anySelector(`a[href^="tel:"], a[href^="mailto:"]`),
		"tel: or mailto: links present", "no clickable contact links", 5))

	email := false
	for _, p := range s.pages {
		if emailRe.MatchString(p.text) {
			email = true
			break
		}
	}
	r.addRec(boolCheck("email-visible", email,
		"email address visible", "no visible email address", 5),
		"Show a contact email address as text")

	return r.results()
}
