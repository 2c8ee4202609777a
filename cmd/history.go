package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathlens/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent question analyses",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open event store: %w", err)
		}
		defer s.Close()

		records, err := s.AnalysisRepo().Recent(context.Background(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println(theme.Dim.Render("No analyses recorded yet."))
			return nil
		}

		for _, r := range records {
			fmt.Printf("%s  %s  %s\n",
				theme.Dim.Render(r.Timestamp.Format("2006-01-02 15:04")),
				theme.Concept.Render(fmt.Sprintf("%-20s", r.Data.MainConcept)),
				r.Data.Question)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum number of entries to show")
}
