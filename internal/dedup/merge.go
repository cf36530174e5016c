package dedup

import (
	"fmt"

	"remember/internal/contact"
)

// Action says what happens to one keeper field during a merge.
type Action string

const (
	ActionKeep   Action = "keep"   // keeper's value survives untouched
	ActionAdopt  Action = "adopt"  // keeper's field was empty, duplicate's value fills it
	ActionAppend Action = "append" // free text, duplicate's value appended below keeper's
)

// FieldPlan is the per-field audit trail of a merge plan.
type FieldPlan struct {
	Field  string `json:"field"`
	Action Action `json:"action"`
	Value  string `json:"value,omitempty"`
}

// Plan is the field-level policy for folding a duplicate into a keeper.
// Result is the keeper as it will look after the merge. Executing the plan
// (writing Result, reassigning interactions, deleting the duplicate row) is
// the store's job, and only after the user confirms.
type Plan struct {
	KeeperID    string          `json:"keeper_id"`
	DuplicateID string          `json:"duplicate_id"`
	Result      contact.Contact `json:"result"`
	Fields      []FieldPlan     `json:"fields"`
}

// PlanMerge computes a non-destructive merge of duplicate into keeper: a
// populated keeper field is never overwritten, empty keeper fields adopt the
// duplicate's value, and notes are appended under a delimiter. The caller
// picks which record plays keeper; call with the arguments swapped to merge
// the other way.
func PlanMerge(keeper, duplicate contact.Contact) Plan {
	plan := Plan{
		KeeperID:    keeper.ID,
		DuplicateID: duplicate.ID,
		Result:      keeper,
	}

	text := func(field, keeperVal, dupVal string) string {
		if keeperVal == "" && dupVal != "" {
			plan.Fields = append(plan.Fields, FieldPlan{field, ActionAdopt, dupVal})
			return dupVal
		}
		plan.Fields = append(plan.Fields, FieldPlan{Field: field, Action: ActionKeep})
		return keeperVal
	}

	plan.Result.Name = text("name", keeper.Name, duplicate.Name)
	plan.Result.Email = text("email", keeper.Email, duplicate.Email)
	plan.Result.Phone = text("phone", keeper.Phone, duplicate.Phone)
	plan.Result.Company = text("company", keeper.Company, duplicate.Company)
	plan.Result.Importance = contact.Importance(text("importance", string(keeper.Importance), string(duplicate.Importance)))

	switch {
	case duplicate.Notes == "":
		plan.Fields = append(plan.Fields, FieldPlan{Field: "notes", Action: ActionKeep})
	case keeper.Notes == "":
		plan.Result.Notes = duplicate.Notes
		plan.Fields = append(plan.Fields, FieldPlan{"notes", ActionAdopt, duplicate.Notes})
	default:
		from := duplicate.Name
		if from == "" {
			from = duplicate.ID
		}
		plan.Result.Notes = fmt.Sprintf("%s\n\n--- merged from %s ---\n%s", keeper.Notes, from, duplicate.Notes)
		plan.Fields = append(plan.Fields, FieldPlan{"notes", ActionAppend, plan.Result.Notes})
	}

	if keeper.TargetFrequencyDays <= 0 && duplicate.TargetFrequencyDays > 0 {
		plan.Result.TargetFrequencyDays = duplicate.TargetFrequencyDays
		plan.Fields = append(plan.Fields, FieldPlan{"target_frequency_days", ActionAdopt,
			fmt.Sprintf("%d", duplicate.TargetFrequencyDays)})
	} else {
		plan.Fields = append(plan.Fields, FieldPlan{Field: "target_frequency_days", Action: ActionKeep})
	}

	return plan
}
