package vcardio

import (
	"strings"
	"testing"

	"remember/internal/store"
)

const sampleVCF = "BEGIN:VCARD\r\n" +
	"VERSION:3.0\r\n" +
	"FN:Maya Chen\r\n" +
	"EMAIL:maya@example.com\r\n" +
	"TEL:+1 (555) 123-4567\r\n" +
	"ORG:Acme\r\n" +
	"NOTE:Met at the conference\r\n" +
	"END:VCARD\r\n" +
	"BEGIN:VCARD\r\n" +
	"VERSION:3.0\r\n" +
	"FN:Ravi Patel\r\n" +
	"EMAIL:ravi@example.com\r\n" +
	"END:VCARD\r\n" +
	"BEGIN:VCARD\r\n" +
	"VERSION:3.0\r\n" +
	"EMAIL:nameless@example.com\r\n" +
	"END:VCARD\r\n"

func TestParseContacts(t *testing.T) {
	contacts, skipped, err := ParseContacts(strings.NewReader(sampleVCF))
	if err != nil {
		t.Fatalf("ParseContacts: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("got %d contacts, want 2", len(contacts))
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1 nameless card", skipped)
	}

	maya := contacts[0]
	if maya.Name != "Maya Chen" {
		t.Errorf("name = %q, want Maya Chen", maya.Name)
	}
	if maya.Email != "maya@example.com" {
		t.Errorf("email = %q", maya.Email)
	}
	if maya.Phone != "+1 (555) 123-4567" {
		t.Errorf("phone = %q", maya.Phone)
	}
	if maya.Company != "Acme" {
		t.Errorf("company = %q", maya.Company)
	}
	if maya.Notes != "Met at the conference" {
		t.Errorf("notes = %q", maya.Notes)
	}
}

func TestParseContactsEmpty(t *testing.T) {
	contacts, skipped, err := ParseContacts(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseContacts: %v", err)
	}
	if len(contacts) != 0 || skipped != 0 {
		t.Errorf("empty stream: contacts=%d skipped=%d, want 0/0", len(contacts), skipped)
	}
}

func TestImport(t *testing.T) {
	db, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	added, skipped, err := Import(db, strings.NewReader(sampleVCF))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if added != 2 || skipped != 1 {
		t.Errorf("added=%d skipped=%d, want 2/1", added, skipped)
	}

	contacts, err := db.ListContacts()
	if err != nil {
		t.Fatal(err)
	}
	if len(contacts) != 2 {
		t.Fatalf("stored %d contacts, want 2", len(contacts))
	}
	for _, c := range contacts {
		if c.ID == "" {
			t.Errorf("imported contact %q missing id", c.Name)
		}
	}
}
