package domain

// SwimPlan is a templated swim workout.
type SwimPlan struct {
	Goal     string
	Stroke   string
	TotalM   int
	Warmup   []string
	Main     []string
	Cooldown []string
}

// DrylandPlan is a templated dryland workout.
type DrylandPlan struct {
	Focus       string
	DurationMin int
	Blocks      []string
}

// PaceReport summarises a set of lap times.
type PaceReport struct {
	// MeanPaceSec is the average lap time in seconds.
	MeanPaceSec float64

	// StdevSec is the population standard deviation of lap times.
	StdevSec float64

	// CVPercent is the coefficient of variation as a percentage.
	CVPercent float64

	// Insights are coaching observations derived from the numbers.
	Insights []string
}

// InjuryAdvice is a set of tips for a body area.
type InjuryAdvice struct {
	Area string
	Tips []string
}

// NutritionPlan is a meal guideline set for a dietary category.
type NutritionPlan struct {
	Category string
	Plan     []string
}

// RaceStrategy is a pacing strategy for a race plan.
type RaceStrategy string

// Recognised race strategies.
const (
	StrategyEven     RaceStrategy = "even"
	StrategyNegative RaceStrategy = "negative"
	StrategyPositive RaceStrategy = "positive"
)

// IsValid returns true if the strategy is recognised.
func (s RaceStrategy) IsValid() bool {
	switch s {
	case StrategyEven, StrategyNegative, StrategyPositive:
		return true
	default:
		return false
	}
}

// RaceSplit is one planned or analysed 50m split.
type RaceSplit struct {
	// Number is the 1-based split index.
	Number int

	// IdealSec is the planned split time.
	IdealSec float64

	// CumulativeSec is the planned elapsed time at the end of this split.
	CumulativeSec float64

	// ActualSec is the swum time (post-race analysis only, 0 when missing).
	ActualSec float64

	// DeltaSec is actual minus ideal (post-race analysis only).
	DeltaSec float64

	// Suggestions are technique cues for this split.
	Suggestions []string
}

// RacePlan is a pre-race split plan for an event.
type RacePlan struct {
	Stroke    string
	DistanceM int
	TargetSec float64
	Strategy  RaceStrategy
	BasePB50  float64
	Splits    []RaceSplit
}

// RaceAnalysis is a post-race comparison of actual vs ideal splits.
type RaceAnalysis struct {
	Stroke    string
	DistanceM int
	TotalSec  float64

	// DetectedStrategy is inferred from the swum halves.
	DetectedStrategy RaceStrategy

	Splits []RaceSplit

	// Macro is the overall pacing observation.
	Macro string
}
