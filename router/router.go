// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hivemind-vote/hivemind/cliparse"
	"github.com/hivemind-vote/hivemind/consensus"
	"github.com/hivemind-vote/hivemind/handlers"
	"github.com/hivemind-vote/hivemind/middleware"
	"github.com/hivemind-vote/hivemind/models"
	"github.com/hivemind-vote/hivemind/ws"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, engine *consensus.Engine, hub *ws.Hub) *http.ServeMux {
	mux := http.NewServeMux()
	started := time.Now()

	// Initialize handlers
	solutionHandler := handlers.NewSolutionHandler(engine)
	toplistHandler := handlers.NewToplistHandler(db)
	announcementsHandler := handlers.NewAnnouncementsHandler(db, cfg, hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
			Status:  "ok",
			Started: humanize.Time(started),
		})
	})

	// Consensus operations
	mux.HandleFunc("GET /solution", middleware.WithLogging(solutionHandler.GetSolution))
	mux.HandleFunc("POST /solution", middleware.WithLogging(solutionHandler.PostSolution))

	// Leaderboard
	mux.HandleFunc("GET /topapi", middleware.WithLogging(toplistHandler.GetToplist))

	// Announcements (admin broadcast + public feed)
	mux.HandleFunc("POST /announcements", middleware.WithLogging(announcementsHandler.Post))
	mux.HandleFunc("GET /announcements", middleware.WithLogging(announcementsHandler.List))
	mux.HandleFunc("GET /ws", hub.HandleWebsocket)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hivemind API v1"))
	})

	return mux
}
