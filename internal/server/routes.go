package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"remember/internal/contact"
	"remember/internal/garden"
	"remember/internal/vcardio"
)

type contactRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Company             string `json:"company"`
	Notes               string `json:"notes"`
	Importance          string `json:"importance"`
	TargetFrequencyDays int    `json:"target_frequency_days"`
}

type contactJSON struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email,omitempty"`
	Phone               string     `json:"phone,omitempty"`
	Company             string     `json:"company,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	Importance          string     `json:"importance,omitempty"`
	TargetFrequencyDays int        `json:"target_frequency_days,omitempty"`
	LastInteractionAt   *time.Time `json:"last_interaction_at,omitempty"`
	Health              string     `json:"health"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func toContactJSON(c contact.Contact, now time.Time) contactJSON {
	return contactJSON{
		ID:                  c.ID,
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		Company:             c.Company,
		Notes:               c.Notes,
		Importance:          string(c.Importance),
		TargetFrequencyDays: c.TargetFrequencyDays,
		LastInteractionAt:   c.LastInteractionAt,
		Health:              string(garden.Health(c.DaysSinceContact(now))),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (req *contactRequest) apply(c *contact.Contact) {
	c.Name = req.Name
	c.Email = req.Email
	c.Phone = req.Phone
	c.Company = req.Company
	c.Notes = req.Notes
	c.Importance = contact.Importance(req.Importance)
	c.TargetFrequencyDays = req.TargetFrequencyDays
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	now := time.Now()
	out := make([]contactJSON, len(contacts))
	for i, c := range contacts {
		out[i] = toContactJSON(c, now)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":    len(out),
		"contacts": out,
	})
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	var c contact.Contact
	req.apply(&c)
	if err := s.db.CreateContact(&c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, toContactJSON(c, time.Now()))
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	c, err := s.db.GetContact(chi.URLParam(r, "contactID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}
	writeJSON(w, http.StatusOK, toContactJSON(*c, time.Now()))
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	c, err := s.db.GetContact(chi.URLParam(r, "contactID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name required")
		return
	}

	req.apply(c)
	if err := s.db.UpdateContact(c); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toContactJSON(*c, time.Now()))
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteContact(chi.URLParam(r, "contactID")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleListInteractions(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")

	interactions, err := s.db.ListInteractions(contactID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	type interactionJSON struct {
		ID         int64     `json:"id"`
		Kind       string    `json:"kind"`
		Note       string    `json:"note,omitempty"`
		OccurredAt time.Time `json:"occurred_at"`
	}
	out := make([]interactionJSON, len(interactions))
	for i, it := range interactions {
		out[i] = interactionJSON{it.ID, it.Kind, it.Note, it.OccurredAt}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":        len(out),
		"interactions": out,
	})
}

func (s *Server) handleAddInteraction(w http.ResponseWriter, r *http.Request) {
	contactID := chi.URLParam(r, "contactID")

	c, err := s.db.GetContact(contactID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return
	}

	var req struct {
		Kind       string     `json:"kind"`
		Note       string     `json:"note"`
		OccurredAt *time.Time `json:"occurred_at"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	it, err := s.db.AddInteraction(contactID, req.Kind, req.Note, occurredAt)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":          it.ID,
		"kind":        it.Kind,
		"occurred_at": it.OccurredAt,
	})
}

func (s *Server) handleImportVCard(w http.ResponseWriter, r *http.Request) {
	added, skipped, err := vcardio.Import(s.db, r.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"added":   added,
		"skipped": skipped,
	})
}
