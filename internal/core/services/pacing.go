package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// Competitive pacing: pre-race split planning and post-race analysis
// over 50m splits.

var shortTimePartRe = regexp.MustCompile(`^\d{1,2}$`)

// ParseRaceTime parses "ss", "ss.xx", "mm:ss", "mm:ss.xx", "mm:ss:cc"
// (cc = centiseconds) and "hh:mm:ss[.xx]" into seconds.
func ParseRaceTime(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return 0, &domain.ParameterError{Field: "time", Reason: "time is required"}
	}

	parts := strings.Split(s, ":")
	invalid := func() error {
		return &domain.ParameterError{Field: "time", Value: s, Reason: "could not parse time"}
	}

	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, invalid()
		}
		return v, nil
	case 2:
		mm, err1 := strconv.ParseFloat(parts[0], 64)
		ss, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0, invalid()
		}
		return mm*60 + ss, nil
	case 3:
		// Two-digit triples read as mm:ss:cc, otherwise hh:mm:ss.
		if shortTimePartRe.MatchString(parts[0]) && shortTimePartRe.MatchString(parts[1]) && shortTimePartRe.MatchString(parts[2]) {
			a, _ := strconv.Atoi(parts[0])
			b, _ := strconv.Atoi(parts[1])
			c, _ := strconv.Atoi(parts[2])
			return float64(a*60+b) + float64(c)/100, nil
		}
		hh, err1 := strconv.ParseFloat(parts[0], 64)
		mm, err2 := strconv.ParseFloat(parts[1], 64)
		ss, err3 := strconv.ParseFloat(parts[2], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, invalid()
		}
		return hh*3600 + mm*60 + ss, nil
	default:
		return 0, invalid()
	}
}

// FormatRaceTime renders seconds as "ss.xx" or "m:ss.xx".
func FormatRaceTime(sec float64) string {
	if sec < 60 {
		return fmt.Sprintf("%.2fs", sec)
	}
	m := int(sec / 60)
	return fmt.Sprintf("%d:%05.2f", m, sec-float64(60*m))
}

// idealFractions distributes a race across n 50m splits for a strategy.
// The curve tilts the distribution: negative splits finish faster,
// positive splits start faster.
func idealFractions(n int, strategy domain.RaceStrategy) []float64 {
	fracs := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		curve := 0.04 * (x - 0.5)
		switch strategy {
		case domain.StrategyNegative:
			curve *= 1.5
		case domain.StrategyPositive:
			curve *= -1.5
		}
		fracs[i] = math.Max(1e-6, 1.0/float64(n)+curve)
		total += fracs[i]
	}
	for i := range fracs {
		fracs[i] /= total
	}
	return fracs
}

// project50Split estimates a sustainable 50m split from the PB, with a
// fatigue factor growing with event length.
func project50Split(pb50 float64, distanceM int) float64 {
	n := distanceM / 50
	if n < 1 {
		n = 1
	}
	fatigue := 1.0 + 0.03*math.Max(0, float64(n-2))
	return pb50 * fatigue
}

// PlanRace produces a pre-race 50m split plan.
func PlanRace(stroke string, distanceM int, pb50, targetSec float64, strategy domain.RaceStrategy) (*domain.RacePlan, error) {
	if distanceM < 50 {
		return nil, &domain.ParameterError{
			Field:  "distance",
			Value:  strconv.Itoa(distanceM),
			Reason: "event distance must be at least 50m",
		}
	}
	if !strategy.IsValid() {
		strategy = domain.StrategyEven
	}

	n := distanceM / 50
	fracs := idealFractions(n, strategy)
	base50 := project50Split(pb50, distanceM)

	splits := make([]domain.RaceSplit, n)
	cumulative := 0.0
	for i, f := range fracs {
		ideal := targetSec * f
		cumulative += ideal
		splits[i] = domain.RaceSplit{
			Number:        i + 1,
			IdealSec:      ideal,
			CumulativeSec: cumulative,
		}
	}

	return &domain.RacePlan{
		Stroke:    stroke,
		DistanceM: distanceM,
		TargetSec: targetSec,
		Strategy:  strategy,
		BasePB50:  base50,
		Splits:    splits,
	}, nil
}

// AnalyzeRace compares swum splits against the ideal distribution.
// Splits may be per-50 or per-100; per-100 splits are halved into
// estimated 50s.
func AnalyzeRace(stroke string, distanceM int, pb50 float64, splits []float64, per100 bool) (*domain.RaceAnalysis, error) {
	if distanceM < 50 {
		return nil, &domain.ParameterError{
			Field:  "distance",
			Value:  strconv.Itoa(distanceM),
			Reason: "event distance must be at least 50m",
		}
	}
	if len(splits) == 0 {
		return nil, &domain.ParameterError{Field: "splits", Reason: "at least one split is required"}
	}

	n := distanceM / 50
	if n < 1 {
		n = 1
	}
	total := sum(splits)

	splits50 := splits
	if per100 {
		splits50 = make([]float64, 0, len(splits)*2)
		for _, s := range splits {
			splits50 = append(splits50, s/2, s/2)
		}
	}
	if len(splits50) > n {
		splits50 = splits50[:n]
	}

	strategy := detectStrategy(splits50, total)
	fracs := idealFractions(n, strategy)
	base50 := project50Split(pb50, distanceM)

	analysed := make([]domain.RaceSplit, n)
	for i := 0; i < n; i++ {
		ideal := total * fracs[i]
		split := domain.RaceSplit{Number: i + 1, IdealSec: ideal}
		if i < len(splits50) {
			actual := splits50[i]
			diff := actual - ideal
			split.ActualSec = actual
			split.DeltaSec = diff
			split.Suggestions = splitSuggestions(i, n, actual, diff, base50)
		}
		analysed[i] = split
	}

	var macro string
	switch strategy {
	case domain.StrategyNegative:
		macro = "Negative split tendency. Push penultimate 50 a bit more."
	case domain.StrategyPositive:
		macro = "Fast start. Hold more for the back half."
	default:
		macro = "Even pacing detected (~1%). Good control."
	}

	return &domain.RaceAnalysis{
		Stroke:           stroke,
		DistanceM:        distanceM,
		TotalSec:         total,
		DetectedStrategy: strategy,
		Splits:           analysed,
		Macro:            macro,
	}, nil
}

// detectStrategy infers pacing from the halves of the swum splits.
func detectStrategy(splits []float64, total float64) domain.RaceStrategy {
	if len(splits) < 2 {
		return domain.StrategyEven
	}
	half := len(splits) / 2
	first, second := sum(splits[:half]), sum(splits[half:])
	switch {
	case second < first-0.01*total:
		return domain.StrategyNegative
	case first < second-0.01*total:
		return domain.StrategyPositive
	default:
		return domain.StrategyEven
	}
}

func splitSuggestions(i, n int, actual, diff, base50 float64) []string {
	var suggestions []string
	switch {
	case diff > 0.40:
		suggestions = append(suggestions, "Large loss: turns/streamline/breakout.")
	case diff > 0.20:
		suggestions = append(suggestions, "Moderate: hold SR & SL, reduce breaths.")
	case diff < -0.20:
		suggestions = append(suggestions, "Overcooked: ease early to avoid lactate.")
	}
	if actual > base50+1.0 {
		suggestions = append(suggestions, "Boost mid-pool tempo / stronger kick.")
	}
	if i == 0 && actual > base50+0.5 {
		suggestions = append(suggestions, "Start: faster reaction, tighter streamline.")
	}
	if i == n-1 && diff > 0.15 {
		suggestions = append(suggestions, "Finish: last 12.5m kick burst, no breath final 5m.")
	}
	return suggestions
}
