package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathlens/internal/ui/theme"
)

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "List the curriculum concepts and their prerequisites",
	RunE: func(cmd *cobra.Command, args []string) error {
		graph, err := loadGraph(cmd)
		if err != nil {
			return err
		}

		for _, id := range graph.IDs() {
			c, _ := graph.Get(id)
			fmt.Printf("%s  %s\n",
				theme.Concept.Render(fmt.Sprintf("%-20s", c.ID)),
				theme.Dim.Render(fmt.Sprintf("difficulty %.1f  prior %.3f", c.Difficulty, c.Prior())))
			if len(c.Prerequisites) > 0 {
				fmt.Println("    " + theme.Dim.Render("requires: "+strings.Join(c.Prerequisites, ", ")))
			}
		}
		return nil
	},
}
