package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"remember/internal/contact"
)

const contactColumns = `c.id, c.name, c.email, c.phone, c.company, c.notes, c.importance,
	c.target_frequency_days, c.created_at, c.updated_at,
	(SELECT MAX(occurred_at) FROM interactions WHERE contact_id = c.id)`

// CreateContact inserts a new contact, assigning an id and timestamps.
func (db *DB) CreateContact(c *contact.Contact) error {
	if c.Name == "" {
		return fmt.Errorf("create contact: name required")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()

	_, err := db.Exec(`
		INSERT INTO contacts (id, name, email, phone, company, notes, importance,
			target_frequency_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Email, c.Phone, c.Company, c.Notes, string(c.Importance),
		c.TargetFrequencyDays, now.UnixMilli(), now.UnixMilli())
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}

	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

// GetContact returns a contact by id, or nil if not found. The contact's
// LastInteractionAt reflects its most recent interaction.
func (db *DB) GetContact(id string) (*contact.Contact, error) {
	row := db.QueryRow(`SELECT `+contactColumns+` FROM contacts c WHERE c.id = ?`, id)
	c, err := scanContact(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return c, nil
}

// UpdateContact writes a contact's mutable fields and bumps updated_at.
func (db *DB) UpdateContact(c *contact.Contact) error {
	now := time.Now()
	res, err := db.Exec(`
		UPDATE contacts SET name = ?, email = ?, phone = ?, company = ?, notes = ?,
			importance = ?, target_frequency_days = ?, updated_at = ?
		WHERE id = ?
	`, c.Name, c.Email, c.Phone, c.Company, c.Notes, string(c.Importance),
		c.TargetFrequencyDays, now.UnixMilli(), c.ID)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update contact: %s not found", c.ID)
	}
	c.UpdatedAt = now
	return nil
}

// DeleteContact removes a contact; its interactions go with it via cascade.
func (db *DB) DeleteContact(id string) error {
	res, err := db.Exec(`DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete contact: %s not found", id)
	}
	return nil
}

// ListContacts returns every contact ordered by name, last interaction
// included. This is the snapshot the garden and dedup passes work from.
func (db *DB) ListContacts() ([]contact.Contact, error) {
	rows, err := db.Query(`SELECT ` + contactColumns + ` FROM contacts c ORDER BY c.name, c.id`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var out []contact.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("list contacts: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(s scanner) (*contact.Contact, error) {
	var c contact.Contact
	var importance string
	var createdAt, updatedAt int64
	var lastInteraction sql.NullInt64

	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Notes, &importance,
		&c.TargetFrequencyDays, &createdAt, &updatedAt, &lastInteraction)
	if err != nil {
		return nil, err
	}

	c.Importance = contact.Importance(importance)
	c.CreatedAt = time.UnixMilli(createdAt)
	c.UpdatedAt = time.UnixMilli(updatedAt)
	if lastInteraction.Valid {
		t := time.UnixMilli(lastInteraction.Int64)
		c.LastInteractionAt = &t
	}
	return &c, nil
}
