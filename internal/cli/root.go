package cli

import (
	"os"

	"github.com/spf13/cobra"

	"remember/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "remember",
	Short: "A garden for your relationships",
	Long:  "Remember keeps track of the people you care about: who you've talked to, who's overdue, and which contacts are probably duplicates. Single Go binary, local sqlite.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(gardenCmd)
	rootCmd.AddCommand(dedupCmd)
	rootCmd.AddCommand(remindCmd)
}

// openDB is a helper that opens the database for CLI commands.
func openDB() (*store.DB, error) {
	dbPath := os.Getenv("REMEMBER_DB")
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	return store.Open(dbPath)
}
