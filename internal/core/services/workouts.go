package services

import (
	"fmt"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
)

// Templated workout generation. Tables are deliberately simple and
// deterministic; evidence-backed guidance comes from the knowledge
// corpus instead.

var strokeOptions = map[string]bool{
	"free": true, "fly": true, "back": true, "breast": true, "im": true,
}

var intensityZones = map[string]bool{
	"easy": true, "aerobic": true, "threshold": true, "vo2": true, "sprint": true,
}

// SwimWorkout generates a swim plan for the goal, stroke and total
// distance. Unknown strokes fall back to free, unknown goals to aerobic.
func SwimWorkout(params domain.SwimWorkoutParams) domain.SwimPlan {
	stroke := params.Stroke
	if !strokeOptions[stroke] {
		stroke = "free"
	}
	goal := params.Intensity
	if !intensityZones[goal] {
		goal = "aerobic"
	}
	total := params.Distance
	if total <= 0 {
		total = 4000
	}

	warmup := []string{
		fmt.Sprintf("400 %s easy", stroke),
		fmt.Sprintf("4x100 %s drills @20\" rest", stroke),
		"4x50 kick @15\" rest",
	}

	var main []string
	switch goal {
	case "aerobic", "easy":
		main = []string{
			fmt.Sprintf("5x%d %s @ moderate pace (Z2/Z3), 30\" rest", total*12/100, stroke),
			fmt.Sprintf("4x%d IM as 25 each stroke, smooth, 30\" rest", total*10/100),
			fmt.Sprintf("8x50 %s build 1-4, 5-8, 20\" rest", stroke),
		}
	case "threshold":
		main = []string{
			fmt.Sprintf("3x%d %s @ threshold (T-pace), 1' rest", total*20/100, stroke),
			fmt.Sprintf("8x50 %s descend 1-4 twice to T-pace, 20\" rest", stroke),
		}
	case "vo2", "sprint":
		main = []string{
			fmt.Sprintf("16x50 %s @ VO2 (hard), 30\" rest", stroke),
			fmt.Sprintf("8x25 %s sprint from a push, 30\" rest", stroke),
			"4x50 easy choice recovery",
		}
	}

	return domain.SwimPlan{
		Goal:     goal,
		Stroke:   stroke,
		TotalM:   total,
		Warmup:   warmup,
		Main:     main,
		Cooldown: []string{"200 easy choice", "4x50 choice drills"},
	}
}

// DrylandWorkout generates a dryland plan for the focus area.
// Unknown focuses get a general circuit.
func DrylandWorkout(params domain.DrylandWorkoutParams) domain.DrylandPlan {
	var blocks []string
	switch params.Focus {
	case "strength":
		blocks = []string{
			"3x10 Goblet Squats",
			"3x8 Push-ups (tempo 3-1-1)",
			"3x10 Bent-Over Rows",
			"3x12 Hip Bridges",
			"Core: 3x30s Plank + 3x12 Dead Bugs",
		}
	case "core":
		blocks = []string{
			"4x30s Plank (front/side/side)",
			"3x12 Hollow Body Rocks",
			"3x12 Superman Holds (2s pause)",
			"3x15 Russian Twists",
		}
	case "mobility":
		blocks = []string{
			"10min Dynamic Flow (hips, T-spine, shoulders)",
			"3x10 World's Greatest Stretch (each side)",
			"3x10 Shoulder CARs + 3x10 Hip CARs",
			"Band work: 3x12 External Rotations",
		}
	default:
		blocks = []string{
			"Circuit x3: 12 Air Squats, 8 Push-ups, 12 Lunges, 10 Band Rows, 15s Side Planks",
		}
	}

	return domain.DrylandPlan{
		Focus:       params.Focus,
		DurationMin: 45,
		Blocks:      blocks,
	}
}
