package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/services"
)

var (
	pacingStroke   string
	pacingDistance int
	pacingPB50     string
	pacingTarget   string
	pacingStrategy string
	pacingSplits   string
	pacingPer100   bool
)

var pacingCmd = &cobra.Command{
	Use:   "pacing",
	Short: "Competitive race pacing tools",
}

var pacingPreCmd = &cobra.Command{
	Use:   "pre",
	Short: "Plan 50m splits for a target time",
	Args:  cobra.NoArgs,
	RunE:  runPacingPre,
}

var pacingPostCmd = &cobra.Command{
	Use:   "post",
	Short: "Analyse swum splits against an ideal distribution",
	Args:  cobra.NoArgs,
	RunE:  runPacingPost,
}

func init() {
	for _, cmd := range []*cobra.Command{pacingPreCmd, pacingPostCmd} {
		cmd.Flags().StringVar(&pacingStroke, "stroke", "free", "stroke (free/fly/back/breast/im)")
		cmd.Flags().IntVar(&pacingDistance, "distance", 100, "event distance in metres")
		cmd.Flags().StringVar(&pacingPB50, "pb50", "", "50m personal best (e.g. 31.5)")
	}
	pacingPreCmd.Flags().StringVar(&pacingTarget, "target", "", "target time (e.g. 1:05.50)")
	pacingPreCmd.Flags().StringVar(&pacingStrategy, "strategy", "even", "pacing strategy (even/negative/positive)")
	pacingPostCmd.Flags().StringVar(&pacingSplits, "splits", "", "comma-separated swum splits (e.g. 31.2,33.8)")
	pacingPostCmd.Flags().BoolVar(&pacingPer100, "per100", false, "splits are per 100m instead of per 50m")

	pacingCmd.AddCommand(pacingPreCmd)
	pacingCmd.AddCommand(pacingPostCmd)
	rootCmd.AddCommand(pacingCmd)
}

func runPacingPre(cmd *cobra.Command, _ []string) error {
	pb50, err := services.ParseRaceTime(pacingPB50)
	if err != nil {
		return err
	}
	target, err := services.ParseRaceTime(pacingTarget)
	if err != nil {
		return err
	}

	plan, err := services.PlanRace(pacingStroke, pacingDistance,
		pb50, target, domain.RaceStrategy(pacingStrategy))
	if err != nil {
		return err
	}

	cmd.Printf("Race plan: %dm %s, target %s (%s split)\n\n",
		plan.DistanceM, plan.Stroke, services.FormatRaceTime(plan.TargetSec), plan.Strategy)
	cmd.Printf("  Projected sustainable 50: %s\n\n", services.FormatRaceTime(plan.BasePB50))
	for _, split := range plan.Splits {
		cmd.Printf("  50 #%d: %6.2fs  (cumulative %s)\n",
			split.Number, split.IdealSec, services.FormatRaceTime(split.CumulativeSec))
	}
	return nil
}

func runPacingPost(cmd *cobra.Command, _ []string) error {
	pb50, err := services.ParseRaceTime(pacingPB50)
	if err != nil {
		return err
	}
	splits, err := parseSplits(pacingSplits)
	if err != nil {
		return err
	}

	analysis, err := services.AnalyzeRace(pacingStroke, pacingDistance, pb50, splits, pacingPer100)
	if err != nil {
		return err
	}

	cmd.Printf("Race analysis: %dm %s, total %s (%s split detected)\n\n",
		analysis.DistanceM, analysis.Stroke,
		services.FormatRaceTime(analysis.TotalSec), analysis.DetectedStrategy)
	for _, split := range analysis.Splits {
		if split.ActualSec == 0 {
			cmd.Printf("  50 #%d: ideal %6.2fs\n", split.Number, split.IdealSec)
			continue
		}
		cmd.Printf("  50 #%d: %6.2fs vs ideal %6.2fs (%+.2fs)\n",
			split.Number, split.ActualSec, split.IdealSec, split.DeltaSec)
		for _, suggestion := range split.Suggestions {
			cmd.Printf("         %s\n", suggestion)
		}
	}
	cmd.Printf("\n%s\n", analysis.Macro)
	return nil
}

// parseSplits parses a comma-separated list of seconds.
func parseSplits(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, &domain.ParameterError{Field: "splits", Reason: "at least one split is required"}
	}
	parts := strings.Split(s, ",")
	splits := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, &domain.ParameterError{
				Field:  "splits",
				Value:  part,
				Reason: fmt.Sprintf("could not parse split: %v", err),
			}
		}
		splits = append(splits, v)
	}
	return splits, nil
}
