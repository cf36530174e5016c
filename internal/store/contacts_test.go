package store

import (
	"testing"
	"time"

	"remember/internal/contact"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaVersion(t *testing.T) {
	db := testDB(t)
	v, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if v != len(migrations) {
		t.Errorf("schema version = %d, want %d", v, len(migrations))
	}
}

func TestContactCRUD(t *testing.T) {
	db := testDB(t)

	c := &contact.Contact{
		Name: "Maya Chen", Email: "maya@x.com", Phone: "5551234567",
		Company: "Acme", Importance: contact.ImportanceHigh, TargetFrequencyDays: 14,
	}
	if err := db.CreateContact(c); err != nil {
		t.Fatalf("CreateContact: %v", err)
	}
	if c.ID == "" {
		t.Fatal("CreateContact did not assign an id")
	}

	got, err := db.GetContact(c.ID)
	if err != nil {
		t.Fatalf("GetContact: %v", err)
	}
	if got == nil {
		t.Fatal("contact not found after create")
	}
	if got.Name != "Maya Chen" || got.Email != "maya@x.com" || got.Importance != contact.ImportanceHigh {
		t.Errorf("roundtrip mismatch: %+v", got)
	}
	if got.LastInteractionAt != nil {
		t.Error("new contact should have no last interaction")
	}

	got.Company = "Initech"
	got.TargetFrequencyDays = 30
	if err := db.UpdateContact(got); err != nil {
		t.Fatalf("UpdateContact: %v", err)
	}
	updated, _ := db.GetContact(c.ID)
	if updated.Company != "Initech" || updated.TargetFrequencyDays != 30 {
		t.Errorf("update did not stick: %+v", updated)
	}

	if err := db.DeleteContact(c.ID); err != nil {
		t.Fatalf("DeleteContact: %v", err)
	}
	gone, _ := db.GetContact(c.ID)
	if gone != nil {
		t.Error("contact still present after delete")
	}

	if err := db.DeleteContact("no-such-id"); err == nil {
		t.Error("deleting a missing contact should error")
	}
}

func TestCreateContactRequiresName(t *testing.T) {
	db := testDB(t)
	if err := db.CreateContact(&contact.Contact{}); err == nil {
		t.Error("expected error for nameless contact")
	}
}

func TestInteractionsSurfaceLastContact(t *testing.T) {
	db := testDB(t)

	c := &contact.Contact{Name: "Ravi Patel"}
	if err := db.CreateContact(c); err != nil {
		t.Fatal(err)
	}

	older := time.Now().AddDate(0, 0, -40)
	newer := time.Now().AddDate(0, 0, -3)

	if _, err := db.AddInteraction(c.ID, "call", "caught up", older); err != nil {
		t.Fatalf("AddInteraction: %v", err)
	}
	if _, err := db.AddInteraction(c.ID, "", "coffee", newer); err != nil {
		t.Fatalf("AddInteraction: %v", err)
	}

	got, err := db.GetContact(c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.LastInteractionAt == nil {
		t.Fatal("expected a last interaction")
	}
	if got.LastInteractionAt.Unix() != newer.Unix() {
		t.Errorf("last interaction = %v, want the newer one %v", got.LastInteractionAt, newer)
	}

	interactions, err := db.ListInteractions(c.ID)
	if err != nil {
		t.Fatalf("ListInteractions: %v", err)
	}
	if len(interactions) != 2 {
		t.Fatalf("got %d interactions, want 2", len(interactions))
	}
	if interactions[0].Note != "coffee" {
		t.Errorf("most recent first: got %q", interactions[0].Note)
	}
	if interactions[1].Kind != "call" {
		t.Errorf("kind = %q, want call", interactions[1].Kind)
	}
	// Empty kind defaults
	if interactions[0].Kind != "note" {
		t.Errorf("default kind = %q, want note", interactions[0].Kind)
	}
}

func TestDeleteCascadesInteractions(t *testing.T) {
	db := testDB(t)

	c := &contact.Contact{Name: "Casey"}
	if err := db.CreateContact(c); err != nil {
		t.Fatal(err)
	}
	if _, err := db.AddInteraction(c.ID, "note", "hello", time.Now()); err != nil {
		t.Fatal(err)
	}

	if err := db.DeleteContact(c.ID); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM interactions").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("interactions remaining = %d, want 0 after cascade", count)
	}
}

func TestListContactsOrdered(t *testing.T) {
	db := testDB(t)
	for _, name := range []string{"Zoe", "Ada", "Mel"} {
		if err := db.CreateContact(&contact.Contact{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	contacts, err := db.ListContacts()
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(contacts) != 3 {
		t.Fatalf("got %d contacts, want 3", len(contacts))
	}
	if contacts[0].Name != "Ada" || contacts[2].Name != "Zoe" {
		t.Errorf("order = %s, %s, %s; want name ascending",
			contacts[0].Name, contacts[1].Name, contacts[2].Name)
	}
}
