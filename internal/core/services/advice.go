package services

import (
	"strings"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// Quick knowledge capsules. The retrieval path supplies evidence-backed
// answers; these tables cover the directly matched advice intents.

var injuryTips = map[string][]string{
	"shoulder": {
		"Reduce overhead volume temporarily; emphasize technique and high-elbow catch.",
		"Add rotator cuff work: 3x12 external rotations, scapular retractions.",
		"Mobility: thoracic extension drills; avoid painful ranges.",
	},
	"knee": {
		"Limit intense breaststroke kicks; substitute with dolphin/flutter kick sets.",
		"Quad/hamstring balance work: step-ups, hamstring bridges.",
	},
	"lower_back": {
		"Neutral spine on turns; add core stability (dead bugs, bird dogs).",
		"Hip flexor mobility and glute activation.",
	},
}

var nutritionPlans = map[string][]string{
	"veg": {
		"Pre-session (60-90m): Oats + banana + nuts; water/electrolyte.",
		"During (>60m hard): 30-45g carb/hr via sports drink or fruit.",
		"Post: Rice + lentils + paneer/tofu; fruit; fluids.",
	},
	"vegan": {
		"Pre: Oats + banana + peanut butter; water/electrolyte.",
		"During: 30-45g carb/hr from dates/raisins/drink.",
		"Post: Rice/quinoa + legumes + veggies; fortified plant yogurt/milk.",
	},
	"non_veg": {
		"Pre: Granola + yogurt + fruit; water/electrolyte.",
		"During: 30-45g carb/hr via drink/gel/fruit.",
		"Post: Rice/pasta + eggs/chicken/fish + veggies; fruit.",
	},
}

// InjuryTips returns tips for a body area. Unknown areas get a generic
// fallback rather than an error.
func InjuryTips(params domain.InjuryAdviceParams) domain.InjuryAdvice {
	area := normaliseKey(params.Area)
	tips, ok := injuryTips[area]
	if !ok {
		tips = []string{"Consult a physio if pain persists; reduce aggravating movements and refine technique."}
	}
	return domain.InjuryAdvice{Area: area, Tips: tips}
}

// NutritionAdvice returns the meal guideline set for a dietary category.
// Unknown categories fall back to the vegetarian plan.
func NutritionAdvice(params domain.NutritionAdviceParams) domain.NutritionPlan {
	key := normaliseKey(params.Category)
	plan, ok := nutritionPlans[key]
	if !ok {
		key = "veg"
		plan = nutritionPlans[key]
	}
	return domain.NutritionPlan{Category: key, Plan: plan}
}

// normaliseKey folds case and separators so "lower back", "Lower-Back"
// and "lower_back" hit the same table entry.
func normaliseKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	return key
}
