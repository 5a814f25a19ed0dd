package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/swimforge-labs/swimforge-cli/internal/core/domain"
	"github.com/swimforge-labs/swimforge-cli/internal/core/services"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a swimming question",
	Long: `Routes the question to the right handler: workout generation, pace
analysis, injury or nutrition advice, or open-ended retrieval over the
indexed corpus.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	router, err := app.newRouter(ctx)
	if err != nil {
		return err
	}

	decision, err := router.Route(ctx, query)
	if err != nil {
		return err
	}

	switch decision.Intent {
	case domain.IntentSwimWorkout:
		renderSwimPlan(cmd, services.SwimWorkout(*decision.Swim))
	case domain.IntentDrylandWorkout:
		renderDrylandPlan(cmd, services.DrylandWorkout(*decision.Dryland))
	case domain.IntentPaceAnalysis:
		report, err := services.AnalyzePace(*decision.Pace)
		if err != nil {
			return err
		}
		renderPaceReport(cmd, report)
	case domain.IntentInjuryAdvice:
		renderTips(cmd, "Injury advice", services.InjuryTips(*decision.Injury).Tips)
	case domain.IntentNutritionAdvice:
		renderTips(cmd, "Nutrition plan", services.NutritionAdvice(*decision.Nutrition).Plan)
	case domain.IntentOpenKnowledge:
		return renderOpenKnowledge(cmd, app, query, decision.ContextChunks)
	}
	return nil
}

func renderSwimPlan(cmd *cobra.Command, plan domain.SwimPlan) {
	cmd.Printf("Swim workout: %dm %s (%s)\n\n", plan.TotalM, plan.Stroke, plan.Goal)
	renderTips(cmd, "Warmup", plan.Warmup)
	renderTips(cmd, "Main set", plan.Main)
	renderTips(cmd, "Cooldown", plan.Cooldown)
}

func renderDrylandPlan(cmd *cobra.Command, plan domain.DrylandPlan) {
	cmd.Printf("Dryland workout: %s (%d min)\n\n", plan.Focus, plan.DurationMin)
	renderTips(cmd, "Blocks", plan.Blocks)
}

func renderPaceReport(cmd *cobra.Command, report *domain.PaceReport) {
	cmd.Printf("Pace analysis\n\n")
	cmd.Printf("  Mean lap:  %.2fs\n", report.MeanPaceSec)
	cmd.Printf("  Stdev:     %.2fs\n", report.StdevSec)
	cmd.Printf("  CV:        %.1f%%\n\n", report.CVPercent)
	renderTips(cmd, "Insights", report.Insights)
}

func renderTips(cmd *cobra.Command, heading string, lines []string) {
	if len(lines) == 0 {
		return
	}
	cmd.Printf("%s:\n", heading)
	for _, line := range lines {
		cmd.Printf("  - %s\n", line)
	}
	cmd.Println()
}

// renderOpenKnowledge prints the composed answer when an LLM is
// configured, and the supporting context either way.
func renderOpenKnowledge(cmd *cobra.Command, app *app, query string, chunks []domain.RetrievedChunk) error {
	if len(chunks) == 0 {
		cmd.Println("Nothing relevant found in the corpus.")
		return nil
	}

	llm, err := app.newLLM()
	if err != nil {
		return err
	}
	if llm != nil {
		defer llm.Close()
		snippets := make([]string, len(chunks))
		for i, chunk := range chunks {
			snippets[i] = chunk.Content
		}
		answer, err := llm.Compose(cmd.Context(), query, snippets)
		if err != nil {
			return fmt.Errorf("composing answer: %w", err)
		}
		cmd.Println(answer)
		cmd.Println()
	}

	cmd.Println("Context:")
	cmd.Println()
	for i, chunk := range chunks {
		cmd.Printf("  [%d] %s (%.4f)\n", i+1, chunk.DocumentID, chunk.Score)
		cmd.Printf("      %s\n", snippet(chunk.Content, 160))
		cmd.Println()
	}
	return nil
}
