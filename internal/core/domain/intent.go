package domain

// Intent is the classified purpose of a user query. It determines which
// generator or retrieval path handles the query.
type Intent string

// Recognised intents, in router priority order. OpenKnowledge is the
// fallthrough when no structured rule matches.
const (
	IntentSwimWorkout     Intent = "swim_workout"
	IntentDrylandWorkout  Intent = "dryland_workout"
	IntentPaceAnalysis    Intent = "pace_analysis"
	IntentInjuryAdvice    Intent = "injury_advice"
	IntentNutritionAdvice Intent = "nutrition_advice"
	IntentOpenKnowledge   Intent = "open_knowledge"
)

// IsValid returns true if the intent is recognised.
func (i Intent) IsValid() bool {
	switch i {
	case IntentSwimWorkout, IntentDrylandWorkout, IntentPaceAnalysis,
		IntentInjuryAdvice, IntentNutritionAdvice, IntentOpenKnowledge:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (i Intent) String() string {
	return string(i)
}

// SwimWorkoutParams are the parameters extracted for a swim workout request.
type SwimWorkoutParams struct {
	// Distance is the total workout distance in metres.
	Distance int

	// Intensity is the training goal (easy/aerobic/threshold/vo2/sprint).
	Intensity string

	// Stroke is the primary stroke (free/fly/back/breast/im).
	Stroke string
}

// DrylandWorkoutParams are the parameters for a dryland workout request.
type DrylandWorkoutParams struct {
	// Focus is the session focus (strength/core/mobility).
	Focus string
}

// PaceAnalysisParams are the parsed series for a pace analysis request.
type PaceAnalysisParams struct {
	// Laps are the lap times in seconds.
	Laps []float64

	// Rest are the rest intervals in seconds, if given.
	Rest []float64

	// HeartRates are the per-rep heart rates in bpm, if given.
	HeartRates []float64
}

// InjuryAdviceParams name the body area advice was requested for.
type InjuryAdviceParams struct {
	Area string
}

// NutritionAdviceParams name the dietary category.
type NutritionAdviceParams struct {
	Category string
}

// RouterDecision is the outcome of routing one query. Exactly one of the
// parameter fields is set for a structured intent; ContextChunks is set
// only for open_knowledge.
type RouterDecision struct {
	// Intent is the classified intent.
	Intent Intent

	// Per-intent extracted parameters. Only the field matching Intent
	// is non-nil.
	Swim      *SwimWorkoutParams
	Dryland   *DrylandWorkoutParams
	Pace      *PaceAnalysisParams
	Injury    *InjuryAdviceParams
	Nutrition *NutritionAdviceParams

	// ContextChunks holds the ranked retrieval context for
	// open_knowledge queries, best first.
	ContextChunks []RetrievedChunk
}
