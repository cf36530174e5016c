package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"remember/internal/dedup"
	"remember/internal/garden"
	"remember/internal/reminders"
)

// canvasRadius resolves the garden canvas size: query param wins, then config.
func (s *Server) canvasRadius(r *http.Request) float64 {
	if q := r.URL.Query().Get("radius"); q != "" {
		if f, err := strconv.ParseFloat(q, 64); err == nil && f > 0 {
			return f
		}
	}
	return s.cfg.Garden.CanvasRadius
}

func (s *Server) handleGarden(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	radius := s.canvasRadius(r)
	positions := garden.Layout(contacts, radius, time.Now())

	writeJSON(w, http.StatusOK, map[string]any{
		"canvas_radius": radius,
		"count":         len(positions),
		"leaves":        positions,
	})
}

func (s *Server) handleGardenSVG(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	radius := s.canvasRadius(r)
	svg := garden.SVG(garden.Layout(contacts, radius, time.Now()), radius)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

func (s *Server) handleDuplicates(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	groups := dedup.FindDuplicates(contacts)
	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(groups),
		"groups": groups,
	})
}

type mergeRequest struct {
	KeeperID    string `json:"keeper_id"`
	DuplicateID string `json:"duplicate_id"`
}

// planFromRequest loads both contacts and computes the merge plan. The caller
// decides the direction: whichever id is keeper_id plays keeper.
func (s *Server) planFromRequest(w http.ResponseWriter, r *http.Request) (dedup.Plan, bool) {
	var req mergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return dedup.Plan{}, false
	}
	if req.KeeperID == "" || req.DuplicateID == "" {
		writeError(w, http.StatusBadRequest, "keeper_id and duplicate_id required")
		return dedup.Plan{}, false
	}
	if req.KeeperID == req.DuplicateID {
		writeError(w, http.StatusBadRequest, "keeper_id and duplicate_id must differ")
		return dedup.Plan{}, false
	}

	keeper, err := s.db.GetContact(req.KeeperID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return dedup.Plan{}, false
	}
	duplicate, derr := s.db.GetContact(req.DuplicateID)
	if derr != nil {
		writeError(w, http.StatusInternalServerError, derr.Error())
		return dedup.Plan{}, false
	}
	if keeper == nil || duplicate == nil {
		writeError(w, http.StatusNotFound, "contact not found")
		return dedup.Plan{}, false
	}

	return dedup.PlanMerge(*keeper, *duplicate), true
}

func (s *Server) handleMergePlan(w http.ResponseWriter, r *http.Request) {
	plan, ok := s.planFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	plan, ok := s.planFromRequest(w, r)
	if !ok {
		return
	}

	if err := s.db.ApplyMerge(plan); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "merged",
		"plan":   plan,
	})
}

func (s *Server) handleReminderExport(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.db.ListContacts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ics, err := reminders.Calendar(contacts, time.Now(), s.cfg.Reminders.Trigger)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Write(ics)
}
