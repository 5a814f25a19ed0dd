package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

func TestSwimWorkout(t *testing.T) {
	t.Run("honours valid parameters", func(t *testing.T) {
		plan := SwimWorkout(domain.SwimWorkoutParams{Distance: 3000, Intensity: "threshold", Stroke: "back"})

		assert.Equal(t, "threshold", plan.Goal)
		assert.Equal(t, "back", plan.Stroke)
		assert.Equal(t, 3000, plan.TotalM)
		assert.NotEmpty(t, plan.Warmup)
		assert.NotEmpty(t, plan.Main)
		assert.NotEmpty(t, plan.Cooldown)
	})

	t.Run("falls back on unknown stroke and goal", func(t *testing.T) {
		plan := SwimWorkout(domain.SwimWorkoutParams{Distance: 2000, Intensity: "ultra", Stroke: "sidestroke"})

		assert.Equal(t, "aerobic", plan.Goal)
		assert.Equal(t, "free", plan.Stroke)
	})

	t.Run("defaults distance to 4000", func(t *testing.T) {
		plan := SwimWorkout(domain.SwimWorkoutParams{Intensity: "aerobic", Stroke: "free"})

		assert.Equal(t, 4000, plan.TotalM)
	})

	t.Run("main set matches the goal", func(t *testing.T) {
		aerobic := SwimWorkout(domain.SwimWorkoutParams{Distance: 4000, Intensity: "aerobic", Stroke: "free"})
		threshold := SwimWorkout(domain.SwimWorkoutParams{Distance: 4000, Intensity: "threshold", Stroke: "free"})
		sprint := SwimWorkout(domain.SwimWorkoutParams{Distance: 4000, Intensity: "sprint", Stroke: "fly"})

		assert.Contains(t, strings.Join(aerobic.Main, "\n"), "moderate pace")
		assert.Contains(t, strings.Join(threshold.Main, "\n"), "threshold")
		assert.Contains(t, strings.Join(sprint.Main, "\n"), "sprint")
	})

	t.Run("stroke appears in the sets", func(t *testing.T) {
		plan := SwimWorkout(domain.SwimWorkoutParams{Distance: 4000, Intensity: "aerobic", Stroke: "breast"})

		assert.Contains(t, plan.Warmup[0], "breast")
		assert.Contains(t, plan.Main[0], "breast")
	})
}

func TestDrylandWorkout(t *testing.T) {
	t.Run("known focus areas get dedicated blocks", func(t *testing.T) {
		for _, focus := range []string{"strength", "core", "mobility"} {
			plan := DrylandWorkout(domain.DrylandWorkoutParams{Focus: focus})
			assert.Equal(t, focus, plan.Focus)
			assert.Equal(t, 45, plan.DurationMin)
			assert.NotEmpty(t, plan.Blocks)
		}
	})

	t.Run("unknown focus gets the general circuit", func(t *testing.T) {
		plan := DrylandWorkout(domain.DrylandWorkoutParams{Focus: "flexibility"})

		assert.Len(t, plan.Blocks, 1)
		assert.Contains(t, plan.Blocks[0], "Circuit")
	})

	t.Run("focuses produce distinct plans", func(t *testing.T) {
		core := DrylandWorkout(domain.DrylandWorkoutParams{Focus: "core"})
		mobility := DrylandWorkout(domain.DrylandWorkoutParams{Focus: "mobility"})

		assert.NotEqual(t, core.Blocks, mobility.Blocks)
	})
}
