package audit

import "math"

// siteScores carries the three rolled-up scores for a run.
type siteScores struct {
	GEO     int
	AEO     int
	Overall int
}

// scoreSite computes the weighted GEO and AEO sums and blends them with
// the archetype's split. Pure arithmetic over already-scored profiles.
func scoreSite(content ContentProfile, integration IntegrationProfile, archetype Archetype) siteScores {
	geo := 0.0
	for _, cat := range contentCategories {
		c := cat.get(&content)
		geo += float64(c.Score) * c.Weight
	}

	aeo := 0.0
	for _, name := range integrationOrder(archetype) {
		c := integration.Categories[name]
		aeo += float64(c.Score) * c.Weight
	}

	split, ok := blendSplits[archetype]
	if !ok {
		split = blendSplits[ArchetypeGeneral]
	}

	geoScore := int(math.Round(geo))
	aeoScore := int(math.Round(aeo))
	overall := int(math.Round(float64(geoScore)*split.Content + float64(aeoScore)*split.Integration))

	return siteScores{GEO: geoScore, AEO: aeoScore, Overall: overall}
}
