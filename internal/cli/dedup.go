package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"remember/internal/dedup"
)

var dedupApply struct {
	keeperID    string
	duplicateID string
}

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Find likely-duplicate contacts",
	Long:  "Scan all contacts for likely duplicates and print the groups for review. Use --keeper and --duplicate together to execute one merge.",
	RunE:  runDedup,
}

func init() {
	dedupCmd.Flags().StringVar(&dedupApply.keeperID, "keeper", "", "Contact id that survives the merge")
	dedupCmd.Flags().StringVar(&dedupApply.duplicateID, "duplicate", "", "Contact id folded into the keeper and deleted")
	dedupCmd.MarkFlagsRequiredTogether("keeper", "duplicate")
}

func runDedup(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	// Explicit merge mode
	if dedupApply.keeperID != "" {
		keeper, err := db.GetContact(dedupApply.keeperID)
		if err != nil {
			return err
		}
		duplicate, err := db.GetContact(dedupApply.duplicateID)
		if err != nil {
			return err
		}
		if keeper == nil || duplicate == nil {
			return fmt.Errorf("contact not found")
		}

		plan := dedup.PlanMerge(*keeper, *duplicate)
		if err := db.ApplyMerge(plan); err != nil {
			return fmt.Errorf("merge: %w", err)
		}
		fmt.Printf("merged %s into %s\n", duplicate.Name, keeper.Name)
		return nil
	}

	contacts, err := db.ListContacts()
	if err != nil {
		return fmt.Errorf("list contacts: %w", err)
	}

	groups := dedup.FindDuplicates(contacts)
	if len(groups) == 0 {
		fmt.Println("No likely duplicates found.")
		return nil
	}

	for i, g := range groups {
		fmt.Printf("%d. [%.0f%% %s]\n", i+1, g.Score*100, strings.Join(g.Reasons, ", "))
		fmt.Printf("   keep: %s  %s\n", g.Keeper.Name, g.Keeper.ID)
		for _, d := range g.Duplicates {
			fmt.Printf("   dupe: %s  %s\n", d.Name, d.ID)
		}
		fmt.Println()
	}
	fmt.Println("Review and merge with: remember dedup --keeper <id> --duplicate <id>")
	return nil
}
