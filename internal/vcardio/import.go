// Package vcardio maps vCard streams onto contacts. A malformed or nameless
// card is skipped, never fatal.
package vcardio

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/emersion/go-vcard"

	"remember/internal/contact"
	"remember/internal/store"
)

// ParseContacts decodes every card in r. Returns the parsed contacts and the
// number of cards skipped (unparseable or missing any name).
func ParseContacts(r io.Reader) ([]contact.Contact, int, error) {
	dec := vcard.NewDecoder(r)

	var out []contact.Contact
	skipped := 0
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Printf("vcard import: skipping card: %v", err)
			skipped++
			continue
		}

		// Name strategy: FN (formatted) over N (structured).
		name := card.PreferredValue(vcard.FieldFormattedName)
		if name == "" {
			name = card.PreferredValue(vcard.FieldName)
		}
		if name == "" {
			skipped++
			continue
		}

		out = append(out, contact.Contact{
			Name:    name,
			Email:   card.PreferredValue(vcard.FieldEmail),
			Phone:   card.PreferredValue(vcard.FieldTelephone),
			Company: card.PreferredValue(vcard.FieldOrganization),
			Notes:   card.PreferredValue(vcard.FieldNote),
		})
	}
	return out, skipped, nil
}

// Import parses r and stores every parsed contact. Returns how many were
// added and how many cards were skipped.
func Import(db *store.DB, r io.Reader) (added, skipped int, err error) {
	contacts, skipped, err := ParseContacts(r)
	if err != nil {
		return 0, skipped, err
	}

	for i := range contacts {
		if err := db.CreateContact(&contacts[i]); err != nil {
			return added, skipped, fmt.Errorf("import %q: %w", contacts[i].Name, err)
		}
		added++
	}
	return added, skipped, nil
}
