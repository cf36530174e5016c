package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"remember/internal/garden"
)

var (
	gardenSVG    bool
	gardenRadius float64
)

var gardenCmd = &cobra.Command{
	Use:   "garden",
	Short: "Print the garden layout",
	Long:  "Compute leaf positions for every contact and print them as JSON, or as a rendered SVG with --svg.",
	RunE:  runGarden,
}

func init() {
	gardenCmd.Flags().BoolVar(&gardenSVG, "svg", false, "Emit a rendered SVG instead of JSON")
	gardenCmd.Flags().Float64Var(&gardenRadius, "radius", 400, "Canvas radius in pixels")
}

func runGarden(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	contacts, err := db.ListContacts()
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	positions := garden.Layout(contacts, gardenRadius, time.Now())

	if gardenSVG {
		fmt.Print(garden.SVG(positions, gardenRadius))
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(positions)
}
