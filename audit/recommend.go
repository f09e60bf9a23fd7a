package audit

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// A category only generates recommendations below this score.
const recommendThreshold = 70

// Impact bands. Values strictly greater than a bound move up a tier.
const (
	impactCritical = 8.0
	impactHigh     = 5.0
	impactMedium   = 3.0
)

// recommend filters weak categories and ranks their remediation actions by
// weighted impact, then effort. One Recommendation is emitted per
// recommendation string already attached to the losing category.
func recommend(content ContentProfile, integration IntegrationProfile, archetype Archetype) []Recommendation {
	var out []Recommendation

	for _, cat := range contentCategories {
		out = append(out, categoryRecommendations(cat.name, DimensionContent, *cat.get(&content))...)
	}
	for _, name := range integrationOrder(archetype) {
		out = append(out, categoryRecommendations(name, DimensionIntegration, integration.Categories[name])...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if pr := priorityRank(out[i].Priority) - priorityRank(out[j].Priority); pr != 0 {
			return pr < 0
		}
		return effortRank(out[i].Effort) < effortRank(out[j].Effort)
	})
	return out
}

func categoryRecommendations(name string, dim Dimension, cat CategoryScore) []Recommendation {
	if cat.Score >= recommendThreshold || len(cat.Recommendations) == 0 {
		return nil
	}

	impact := cat.Weight * float64(100-cat.Score)
	priority := priorityFor(impact)
	effort := effortFor(name)
	potential := potentialScore(cat.Score)
	impactDesc := fmt.Sprintf("Lifting %s from %d toward %d recovers %.1f weighted points of the overall score",
		name, cat.Score, potential, impact)

	snippet := snippetFor(name, cat.Findings)

	recs := make([]Recommendation, 0, len(cat.Recommendations))
	for i, text := range cat.Recommendations {
		rec := Recommendation{
			Category:       name,
			Dimension:      dim,
			Priority:       priority,
			Effort:         effort,
			Title:          titleFor(name),
			Description:    text,
			CurrentScore:   cat.Score,
			PotentialScore: potential,
			Impact:         impactDesc,
		}
		// The remediation template rides on the first action only.
		if i == 0 {
			rec.Snippet = snippet
		}
		recs = append(recs, rec)
	}
	return recs
}

func priorityFor(impact float64) Priority {
	switch {
	case impact > impactCritical:
		return PriorityCritical
	case impact > impactHigh:
		return PriorityHigh
	case impact > impactMedium:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

func effortRank(e Effort) int {
	switch e {
	case EffortLow:
		return 0
	case EffortMedium:
		return 1
	default:
		return 2
	}
}

// potentialScore models closing half the remaining gap, the realistic
// outcome of acting on a category's recommendations.
func potentialScore(current int) int {
	return current + int(math.Round(float64(100-current)*0.5))
}

func titleFor(category string) string {
	words := strings.Split(category, "-")
	for i, w := range words {
		switch w {
		case "api", "sdk", "nap", "seo":
			words[i] = strings.ToUpper(w)
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return "Improve " + strings.Join(words, " ")
}
