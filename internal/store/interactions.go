package store

import (
	"fmt"
	"time"
)

// Interaction is one logged touch with a contact: a call, a coffee, a note.
type Interaction struct {
	ID         int64
	ContactID  string
	Kind       string
	Note       string
	OccurredAt time.Time
	CreatedAt  time.Time
}

// AddInteraction logs a touch with a contact. Kind defaults to "note".
func (db *DB) AddInteraction(contactID, kind, note string, occurredAt time.Time) (*Interaction, error) {
	if kind == "" {
		kind = "note"
	}
	now := time.Now()

	res, err := db.Exec(`
		INSERT INTO interactions (contact_id, kind, note, occurred_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, contactID, kind, note, occurredAt.UnixMilli(), now.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("add interaction: %w", err)
	}

	id, _ := res.LastInsertId()
	return &Interaction{
		ID:         id,
		ContactID:  contactID,
		Kind:       kind,
		Note:       note,
		OccurredAt: occurredAt,
		CreatedAt:  now,
	}, nil
}

// ListInteractions returns a contact's interactions, most recent first.
func (db *DB) ListInteractions(contactID string) ([]Interaction, error) {
	rows, err := db.Query(`
		SELECT id, contact_id, kind, note, occurred_at, created_at
		FROM interactions WHERE contact_id = ?
		ORDER BY occurred_at DESC, id DESC
	`, contactID)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	var out []Interaction
	for rows.Next() {
		var it Interaction
		var occurredAt, createdAt int64
		if err := rows.Scan(&it.ID, &it.ContactID, &it.Kind, &it.Note, &occurredAt, &createdAt); err != nil {
			return nil, fmt.Errorf("list interactions: %w", err)
		}
		it.OccurredAt = time.UnixMilli(occurredAt)
		it.CreatedAt = time.UnixMilli(createdAt)
		out = append(out, it)
	}
	return out, rows.Err()
}
