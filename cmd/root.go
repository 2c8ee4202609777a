package cmd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathlens/internal/concept"
	"github.com/abhisek/mathlens/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathlens",
	Short: "Classify math questions into curriculum concepts",
	Long: "Mathlens classifies a free-text math question into the most likely curriculum\n" +
		"concept using an HMM derived from the concept graph, ranks all concepts by\n" +
		"relevance, and generates practice tests.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogger(cmd)
	},
}

// logger is the process-wide logger, configured in PersistentPreRunE.
var logger = zap.NewNop()

func Execute() error {
	defer logger.Sync()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHLENS_DB env var)")
	rootCmd.PersistentFlags().String("curriculum", "", "Path to a curriculum JSON file (defaults to the built-in curriculum)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(conceptsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// initLogger builds the process logger; --verbose lowers the level to debug.
func initLogger(cmd *cobra.Command) error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	l, err := config.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// loadGraph builds the concept graph from --curriculum, or from the built-in
// curriculum when the flag is unset.
func loadGraph(cmd *cobra.Command) (*concept.Graph, error) {
	concepts := concept.Seed()
	if path, _ := cmd.Flags().GetString("curriculum"); path != "" {
		loaded, err := concept.LoadFile(path)
		if err != nil {
			return nil, err
		}
		concepts = loaded
	}
	return concept.New(concepts)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHLENS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the event store at the resolved path. Commands treat event
// recording as best-effort and only warn when the store is unavailable.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}
