package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathlens/internal/hmm"
	"github.com/abhisek/mathlens/internal/store"
	"github.com/abhisek/mathlens/internal/ui/theme"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <question>",
	Short: "Classify a math question into curriculum concepts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		graph, err := loadGraph(cmd)
		if err != nil {
			return err
		}
		analyzer, err := hmm.NewAnalyzer(graph, hmm.WithLogger(logger))
		if err != nil {
			return err
		}

		result, err := analyzer.Analyze(question)
		if errors.Is(err, hmm.ErrNoObservations) {
			fmt.Println(theme.Warn.Render("No relevant patterns found in question."))
			return nil
		}
		if err != nil {
			return err
		}

		printResult(result)
		recordAnalysis(cmd, question, result)
		return nil
	},
}

func printResult(result *hmm.Result) {
	fmt.Println(theme.Title.Render("Main concept:"), theme.Concept.Render(result.MainConcept))
	fmt.Println(theme.Dim.Render(fmt.Sprintf("confidence %.3g", result.Confidence)))

	if len(result.Prerequisites) > 0 {
		fmt.Println(theme.Heading.Render("Prerequisites:"), strings.Join(result.Prerequisites, " → "))
	}

	fmt.Println(theme.Heading.Render("Related concepts:"))
	for _, rc := range result.RelatedConcepts {
		fmt.Printf("  %s %s %s\n",
			theme.Bar(rc.Probability, 20),
			theme.Value.Render(fmt.Sprintf("%5.1f%%", rc.Probability*100)),
			rc.Concept)
	}

	fmt.Println(theme.Dim.Render("observations: " + strings.Join(result.Observations, ", ")))
}

// recordAnalysis appends the result to the event store. Recording is
// best-effort: a missing or broken store never fails the analyze command.
func recordAnalysis(cmd *cobra.Command, question string, result *hmm.Result) {
	s, err := openStore(cmd)
	if err != nil {
		logger.Warn("event store unavailable", zap.Error(err))
		return
	}
	defer s.Close()

	err = s.AnalysisRepo().Append(context.Background(), store.AnalysisEventData{
		Question:     question,
		MainConcept:  result.MainConcept,
		Confidence:   result.Confidence,
		Observations: result.Observations,
	})
	if err != nil {
		logger.Warn("record analysis event", zap.Error(err))
	}
}
