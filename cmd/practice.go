package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathlens/internal/practice"
	"github.com/abhisek/mathlens/internal/store"
	"github.com/abhisek/mathlens/internal/ui/theme"
)

var practiceCmd = &cobra.Command{
	Use:   "practice <concept>",
	Short: "Generate a practice test for a concept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conceptID := args[0]
		numQuestions, _ := cmd.Flags().GetInt("questions")
		includePrereqs, _ := cmd.Flags().GetBool("include-prereqs")
		showAnswers, _ := cmd.Flags().GetBool("answers")

		graph, err := loadGraph(cmd)
		if err != nil {
			return err
		}

		gen := practice.NewGenerator(graph)
		test, err := gen.Generate(conceptID, numQuestions, includePrereqs)
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Practice test:"), theme.Concept.Render(test.Concept))
		if len(test.ConceptsCovered) > 1 {
			fmt.Println(theme.Dim.Render(fmt.Sprintf("covers: %v", test.ConceptsCovered)))
		}
		for i, q := range test.Questions {
			fmt.Printf("%s %s\n", theme.Heading.Render(fmt.Sprintf("%2d.", i+1)), q.Text)
			if showAnswers {
				fmt.Println("    " + theme.Value.Render("answer: "+q.ExpectedAnswer))
			}
		}

		recordPractice(cmd, test)
		return nil
	},
}

func init() {
	practiceCmd.Flags().IntP("questions", "n", 10, "Number of questions to generate")
	practiceCmd.Flags().Bool("include-prereqs", false, "Also cover the concept's prerequisite chain")
	practiceCmd.Flags().Bool("answers", false, "Print expected answers")
}

// recordPractice appends the generated test to the event store, best-effort.
func recordPractice(cmd *cobra.Command, test *practice.Test) {
	s, err := openStore(cmd)
	if err != nil {
		logger.Warn("event store unavailable", zap.Error(err))
		return
	}
	defer s.Close()

	err = s.PracticeRepo().Append(context.Background(), store.PracticeEventData{
		Concept:         test.Concept,
		NumQuestions:    len(test.Questions),
		ConceptsCovered: test.ConceptsCovered,
	})
	if err != nil {
		logger.Warn("record practice event", zap.Error(err))
	}
}
