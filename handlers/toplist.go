// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/hivemind-vote/hivemind/middleware"
	"github.com/hivemind-vote/hivemind/store"
)

type ToplistHandler struct {
	db *sql.DB
}

func NewToplistHandler(db *sql.DB) *ToplistHandler {
	return &ToplistHandler{db: db}
}

// GetToplist handles GET /topapi
// Returns every user's name and cumulative vote count, descending.
func (h *ToplistHandler) GetToplist(w http.ResponseWriter, r *http.Request) {
	ranks, err := store.ListUsersByVotes(r.Context(), h.db)
	if err != nil {
		slog.Error("failed to load leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ranks)
}
