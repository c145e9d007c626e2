package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	journalPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ltlcheck",
	Short: "ltlcheck - randomized verification of temporal properties over action-driven state machines",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}

	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", "", "path to a SQLite counterexample journal")

	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(replayCmd)
}
