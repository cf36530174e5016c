package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"remember/internal/config"
	"remember/internal/reminders"
)

var remindOutput string

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Export reach-out reminders as an ICS calendar",
	RunE:  runRemind,
}

func init() {
	remindCmd.Flags().StringVarP(&remindOutput, "output", "o", "", "Write the calendar to a file instead of stdout")
}

func runRemind(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	contacts, err := db.ListContacts()
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	ics, err := reminders.Calendar(contacts, time.Now(), cfg.Reminders.Trigger)
	if err != nil {
		return fmt.Errorf("build calendar: %w", err)
	}

	if remindOutput == "" {
		os.Stdout.Write(ics)
		return nil
	}
	if err := os.WriteFile(remindOutput, ics, 0644); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", remindOutput)
	return nil
}
