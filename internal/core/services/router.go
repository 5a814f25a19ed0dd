package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/ports/driving"
	"github.com/swimforge-labs/swimforge-cli/internal/logger"
)

// Ensure RouterService implements the interface.
var _ driving.Router = (*RouterService)(nil)

// RouterService classifies queries into intents. Structured intents are
// matched by an ordered rule table; the first matching rule wins and
// extracts its parameters. Queries matching no rule fall through to
// open_knowledge and run the retrieval pipeline.
type RouterService struct {
	retriever driving.Retriever
	rules     []rule
}

// rule pairs a predicate with a parameter extractor for one intent.
// Rules are evaluated in declaration order against the normalised query.
type rule struct {
	intent  domain.Intent
	matches func(q string) bool
	extract func(q string) (*domain.RouterDecision, error)
}

// NewRouterService creates the router over the given retriever.
func NewRouterService(retriever driving.Retriever) *RouterService {
	r := &RouterService{retriever: retriever}
	r.rules = []rule{
		{
			intent:  domain.IntentSwimWorkout,
			matches: containsAny("swim workout", "swim set", "generate swim", "session plan"),
			extract: extractSwimWorkout,
		},
		{
			intent:  domain.IntentDrylandWorkout,
			matches: containsAny("dryland", "strength", "core", "mobility workout"),
			extract: extractDrylandWorkout,
		},
		{
			intent:  domain.IntentPaceAnalysis,
			matches: containsAny("analyze", "analysis", "pace"),
			extract: extractPaceAnalysis,
		},
		{
			intent:  domain.IntentInjuryAdvice,
			matches: containsAny("injury", "pain"),
			extract: extractInjuryAdvice,
		},
		{
			intent:  domain.IntentNutritionAdvice,
			matches: containsAny("nutrition", "diet", "meal"),
			extract: extractNutritionAdvice,
		},
	}
	return r
}

// Route produces the terminal decision for one query.
// Empty or whitespace-only queries fail with domain.ErrEmptyQuery before
// any rule matching. A matched rule with malformed parameters reports a
// ParameterError rather than falling through to the next rule.
func (r *RouterService) Route(ctx context.Context, query string) (*domain.RouterDecision, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, domain.ErrEmptyQuery
	}
	normalised := strings.ToLower(trimmed)

	logger.Section("Routing")
	logger.Debug("Query: %q", normalised)

	for _, rl := range r.rules {
		if !rl.matches(normalised) {
			continue
		}
		logger.Info("Matched intent: %s", rl.intent)
		return rl.extract(normalised)
	}

	logger.Info("No structured rule matched, retrieving context")
	chunks, err := r.retriever.Retrieve(ctx, trimmed)
	if err != nil {
		return nil, fmt.Errorf("retrieve context: %w", err)
	}

	return &domain.RouterDecision{
		Intent:        domain.IntentOpenKnowledge,
		ContextChunks: chunks,
	}, nil
}

// containsAny builds a predicate matching any of the given phrases.
func containsAny(phrases ...string) func(string) bool {
	return func(q string) bool {
		for _, p := range phrases {
			if strings.Contains(q, p) {
				return true
			}
		}
		return false
	}
}

var (
	strokeRe    = regexp.MustCompile(`\b(free|fly|back|breast|im)\b`)
	intensityRe = regexp.MustCompile(`\b(easy|aerobic|threshold|vo2|sprint)\b`)
	distanceRe  = regexp.MustCompile(`\b([0-9][0-9.,]*)\s*m\b`)
	focusRe     = regexp.MustCompile(`\b(strength|core|mobility)\b`)
	areaRe      = regexp.MustCompile(`\b(shoulder|knee|lower back|back)\b`)
	categoryRe  = regexp.MustCompile(`\b(non-veg|non veg|nonveg|vegan|veg)\b`)
	seriesRe    = regexp.MustCompile(`(laps|rest|hr)\s*=\s*\[([^\]]*)\]`)
)

func extractSwimWorkout(q string) (*domain.RouterDecision, error) {
	params := &domain.SwimWorkoutParams{
		Distance:  4000,
		Intensity: "aerobic",
		Stroke:    "free",
	}

	if m := strokeRe.FindStringSubmatch(q); m != nil {
		params.Stroke = m[1]
	}
	if m := intensityRe.FindStringSubmatch(q); m != nil {
		params.Intensity = m[1]
	}
	if m := distanceRe.FindStringSubmatch(q); m != nil {
		distance, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, &domain.ParameterError{
				Field:  "distance",
				Value:  m[1],
				Reason: "must be a whole number of metres",
			}
		}
		params.Distance = distance
	}

	return &domain.RouterDecision{Intent: domain.IntentSwimWorkout, Swim: params}, nil
}

func extractDrylandWorkout(q string) (*domain.RouterDecision, error) {
	params := &domain.DrylandWorkoutParams{Focus: "strength"}
	if m := focusRe.FindStringSubmatch(q); m != nil {
		params.Focus = m[1]
	}
	return &domain.RouterDecision{Intent: domain.IntentDrylandWorkout, Dryland: params}, nil
}

func extractPaceAnalysis(q string) (*domain.RouterDecision, error) {
	series := map[string][]float64{}
	for _, m := range seriesRe.FindAllStringSubmatch(q, -1) {
		key, raw := m[1], m[2]
		values, err := parseSeries(key, raw)
		if err != nil {
			return nil, err
		}
		series[key] = values
	}

	laps, ok := series["laps"]
	if !ok || len(laps) == 0 {
		return nil, &domain.ParameterError{
			Field:  "laps",
			Reason: "lap times are required, e.g. laps=[85,86,87]",
		}
	}

	return &domain.RouterDecision{
		Intent: domain.IntentPaceAnalysis,
		Pace: &domain.PaceAnalysisParams{
			Laps:       laps,
			Rest:       series["rest"],
			HeartRates: series["hr"],
		},
	}, nil
}

// parseSeries parses a comma-separated numeric list. Malformed tokens are
// an error, never skipped silently.
func parseSeries(field, raw string) ([]float64, error) {
	var values []float64
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &domain.ParameterError{
				Field:  field,
				Value:  tok,
				Reason: "must be numeric",
			}
		}
		values = append(values, v)
	}
	return values, nil
}

func extractInjuryAdvice(q string) (*domain.RouterDecision, error) {
	params := &domain.InjuryAdviceParams{Area: "shoulder"}
	if m := areaRe.FindStringSubmatch(q); m != nil {
		area := strings.ReplaceAll(m[1], " ", "_")
		if area == "back" {
			area = "lower_back"
		}
		params.Area = area
	}
	return &domain.RouterDecision{Intent: domain.IntentInjuryAdvice, Injury: params}, nil
}

func extractNutritionAdvice(q string) (*domain.RouterDecision, error) {
	params := &domain.NutritionAdviceParams{Category: "veg"}
	if m := categoryRe.FindStringSubmatch(q); m != nil {
		category := strings.ReplaceAll(m[1], " ", "-")
		if category == "nonveg" {
			category = "non-veg"
		}
		params.Category = category
	}
	return &domain.RouterDecision{Intent: domain.IntentNutritionAdvice, Nutrition: params}, nil
}
