package services

import (
	"fmt"
	"math"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// AnalyzePace summarises a set of lap times with optional rest intervals
// and heart rates. Requires at least one lap time.
func AnalyzePace(params domain.PaceAnalysisParams) (*domain.PaceReport, error) {
	laps := params.Laps
	if len(laps) == 0 {
		return nil, &domain.ParameterError{Field: "laps", Reason: "no lap times provided"}
	}

	mean := sum(laps) / float64(len(laps))
	stdev := 0.0
	if len(laps) > 1 {
		var variance float64
		for _, t := range laps {
			variance += (t - mean) * (t - mean)
		}
		stdev = math.Sqrt(variance / float64(len(laps)))
	}
	cv := 0.0
	if mean > 0 {
		cv = stdev / mean * 100
	}

	var insights []string
	switch {
	case cv <= 2.0:
		insights = append(insights, "Excellent pacing consistency (CV <= 2%).")
	case cv <= 4.0:
		insights = append(insights, "Good pacing consistency (CV <= 4%). Aim for tighter control on mid reps.")
	default:
		insights = append(insights, "Pacing variability is high; consider shorter reps or stricter send-offs.")
	}

	if len(params.Rest) > 0 {
		avgRest := sum(params.Rest) / float64(len(params.Rest))
		insights = append(insights, fmt.Sprintf("Average rest: %.1fs.", avgRest))
		if avgRest < 10 {
			insights = append(insights, "Rest may be too short - risk of form breakdown.")
		} else if avgRest > 45 {
			insights = append(insights, "Rest may be too long - consider reducing to maintain stimulus.")
		}
	}

	if len(params.HeartRates) > 0 {
		avgHR := sum(params.HeartRates) / float64(len(params.HeartRates))
		insights = append(insights, fmt.Sprintf("Average HR: %.0f bpm.", avgHR))
		if avgHR < 120 {
			insights = append(insights, "Intensity may be too low for aerobic adaptation; increase pace or reduce rest.")
		} else if avgHR > 180 {
			insights = append(insights, "HR very high - ensure proper recovery and technique quality.")
		}
	}

	return &domain.PaceReport{
		MeanPaceSec: round2(mean),
		StdevSec:    round2(stdev),
		CVPercent:   round2(cv),
		Insights:    insights,
	}, nil
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
