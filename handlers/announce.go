// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/hmac"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/hivemind-vote/hivemind/cliparse"
	"github.com/hivemind-vote/hivemind/middleware"
	"github.com/hivemind-vote/hivemind/models"
	"github.com/hivemind-vote/hivemind/store"
	"github.com/hivemind-vote/hivemind/ws"
)

type AnnouncementsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	hub *ws.Hub
}

func NewAnnouncementsHandler(db *sql.DB, cfg cliparse.Config, hub *ws.Hub) *AnnouncementsHandler {
	return &AnnouncementsHandler{db: db, cfg: cfg, hub: hub}
}

// Post handles POST /announcements
// Guarded by the shared admin secret; persists the entry and pushes it to
// connected websocket clients.
func (h *AnnouncementsHandler) Post(w http.ResponseWriter, r *http.Request) {
	secret := r.Header.Get("X-Admin-Secret")
	if !hmac.Equal([]byte(secret), []byte(h.cfg.AdminSecret)) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin secret")
		return
	}

	var req models.PostAnnouncementRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" || req.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title and content are required")
		return
	}

	a := models.Announcement{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}

	if err := store.InsertAnnouncement(r.Context(), h.db, a); err != nil {
		slog.Error("failed to insert announcement", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save announcement")
		return
	}

	a.Posted = humanize.Time(a.CreatedAt)
	h.hub.Broadcast(a)

	slog.Info("announcement posted", "id", a.ID, "title", a.Title, "clients", h.hub.ClientCount())
	middleware.JSONResponse(w, http.StatusCreated, a)
}

// List handles GET /announcements
// Returns entries newer than the optional "since" RFC 3339 timestamp,
// oldest first.
func (h *AnnouncementsHandler) List(w http.ResponseWriter, r *http.Request) {
	var since time.Time
	if param := r.URL.Query().Get("since"); param != "" {
		parsed, err := time.Parse(time.RFC3339, param)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "since must be an RFC 3339 timestamp")
			return
		}
		since = parsed
	}

	list, err := store.ListAnnouncementsSince(r.Context(), h.db, since)
	if err != nil {
		slog.Error("failed to list announcements", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for i := range list {
		list[i].Posted = humanize.Time(list[i].CreatedAt)
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}
