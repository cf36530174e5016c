package store

import (
	"fmt"
	"time"

	"remember/internal/dedup"
)

// ApplyMerge executes a merge plan in one transaction: the keeper takes the
// plan's merged fields, the duplicate's interactions move to the keeper, and
// the duplicate row is deleted. The plan is computed by dedup.PlanMerge and
// confirmed by the user before this runs.
func (db *DB) ApplyMerge(plan dedup.Plan) error {
	if plan.KeeperID == "" || plan.DuplicateID == "" {
		return fmt.Errorf("apply merge: keeper and duplicate ids required")
	}
	if plan.KeeperID == plan.DuplicateID {
		return fmt.Errorf("apply merge: keeper and duplicate are the same contact")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("apply merge: begin: %w", err)
	}
	defer tx.Rollback()

	r := plan.Result
	res, err := tx.Exec(`
		UPDATE contacts SET name = ?, email = ?, phone = ?, company = ?, notes = ?,
			importance = ?, target_frequency_days = ?, updated_at = ?
		WHERE id = ?
	`, r.Name, r.Email, r.Phone, r.Company, r.Notes, string(r.Importance),
		r.TargetFrequencyDays, time.Now().UnixMilli(), plan.KeeperID)
	if err != nil {
		return fmt.Errorf("apply merge: update keeper: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("apply merge: keeper %s not found", plan.KeeperID)
	}

	if _, err := tx.Exec(
		`UPDATE interactions SET contact_id = ? WHERE contact_id = ?`,
		plan.KeeperID, plan.DuplicateID,
	); err != nil {
		return fmt.Errorf("apply merge: move interactions: %w", err)
	}

	res, err = tx.Exec(`DELETE FROM contacts WHERE id = ?`, plan.DuplicateID)
	if err != nil {
		return fmt.Errorf("apply merge: delete duplicate: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("apply merge: duplicate %s not found", plan.DuplicateID)
	}

	return tx.Commit()
}
