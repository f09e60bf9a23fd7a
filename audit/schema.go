package audit

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractJSONLD pulls every JSON-LD node out of a document. Arrays and
// @graph containers are flattened into a single node list; blocks that do
// not parse are skipped, never an error.
func extractJSONLD(doc *goquery.Document) []map[string]any {
	var nodes []map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var raw any
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return
		}
		nodes = append(nodes, flattenLD(raw)...)
	})
	return nodes
}

func flattenLD(raw any) []map[string]any {
	var nodes []map[string]any
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			nodes = append(nodes, flattenLD(item)...)
		}
	case map[string]any:
		nodes = append(nodes, v)
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				nodes = append(nodes, flattenLD(item)...)
			}
		}
	}
	return nodes
}

// ldTypes returns the @type values of a node. A node may declare a single
// type or a list of them.
func ldTypes(node map[string]any) []string {
	switch t := node["@type"].(type) {
	case string:
		return []string{t}
	case []any:
		var types []string
		for _, item := range t {
			if s, ok := item.(string); ok {
				types = append(types, s)
			}
		}
		return types
	}
	return nil
}

// hasType reports whether the node declares any of the given types.
func hasType(node map[string]any, types ...string) bool {
	for _, declared := range ldTypes(node) {
		for _, want := range types {
			if strings.EqualFold(declared, want) {
				return true
			}
		}
	}
	return false
}

// firstOfType returns the first node declaring one of the given types.
func firstOfType(nodes []map[string]any, types ...string) map[string]any {
	for _, node := range nodes {
		if hasType(node, types...) {
			return node
		}
	}
	return nil
}

// ldString reads a string property, unwrapping single-element arrays.
func ldString(node map[string]any, key string) string {
	switch v := node[key].(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// ldHas reports whether the node carries a non-empty value for every key.
func ldHas(node map[string]any, keys ...string) bool {
	for _, key := range keys {
		v, ok := node[key]
		if !ok || v == nil {
			return false
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// localBusinessTypes covers the LocalBusiness subtypes the classifier and
// the local rubric recognize. Not exhaustive; the common schema.org set.
var localBusinessTypes = []string{
	"LocalBusiness", "Restaurant", "Store", "CafeOrCoffeeShop", "BarOrPub",
	"Dentist", "Physician", "MedicalBusiness", "MedicalClinic",
	"ProfessionalService", "LegalService", "Attorney", "AccountingService",
	"HomeAndConstructionBusiness", "Plumber", "Electrician", "RoofingContractor",
	"AutoRepair", "AutomotiveBusiness", "BeautySalon", "HairSalon",
	"RealEstateAgent", "TravelAgency", "LodgingBusiness", "Hotel",
	"FinancialService", "VeterinaryCare", "ChildCare", "HealthClub",
}

var articleTypes = []string{"Article", "BlogPosting", "NewsArticle", "TechArticle", "ScholarlyArticle"}

var productTypes = []string{"Product", "ProductGroup", "Offer", "AggregateOffer", "IndividualProduct"}
