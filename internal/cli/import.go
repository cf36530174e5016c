package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"remember/internal/vcardio"
)

var importCmd = &cobra.Command{
	Use:   "import <file.vcf>",
	Short: "Import contacts from a vCard file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open vcard file: %w", err)
	}
	defer f.Close()

	db, err := openDB()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	added, skipped, err := vcardio.Import(db, f)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("imported %d contacts", added)
	if skipped > 0 {
		fmt.Printf(" (%d cards skipped)", skipped)
	}
	fmt.Println()
	return nil
}
