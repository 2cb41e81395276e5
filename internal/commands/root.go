package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parththirwani/tally/internal/config"
	"github.com/parththirwani/tally/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "A CLI for tracking daily work hours",
	Long: `tally tracks blocks of work time from the terminal.
Start, pause, resume and stop sessions, then report on where the hours went.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tally %s (commit %s, built %s)\n", version, commit, date)
	},
}

// openStore loads the config and opens the session store for the duration
// of one command. The caller owns the returned handle and must Close it.
func openStore() (*db.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	store, err := db.Open(cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}

	return store, cfg, nil
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}
