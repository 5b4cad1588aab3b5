// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hivemind-vote/hivemind/consensus"
	"github.com/hivemind-vote/hivemind/middleware"
	"github.com/hivemind-vote/hivemind/models"
)

type SolutionHandler struct {
	engine *consensus.Engine
}

func NewSolutionHandler(engine *consensus.Engine) *SolutionHandler {
	return &SolutionHandler{engine: engine}
}

// GetSolution handles GET /solution
// The task rides in the "task" query parameter as a JSON object; the
// response is the current consensus, an array of them for batched tasks,
// or null when nobody has answered yet.
func (h *SolutionHandler) GetSolution(w http.ResponseWriter, r *http.Request) {
	taskParam := r.URL.Query().Get("task")
	if taskParam == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "task query parameter is required")
		return
	}

	var task models.TaskRequest
	if err := json.Unmarshal([]byte(taskParam), &task); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid task JSON")
		return
	}

	results, batched, err := h.engine.Resolve(r.Context(), task)
	if err != nil {
		if consensus.IsValidation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to resolve task", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if batched {
		middleware.JSONResponse(w, http.StatusOK, results)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results[0])
}

// PostSolution handles POST /solution
// Records the user's vote for the submitted solution.
func (h *SolutionHandler) PostSolution(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.engine.Submit(r.Context(), req.Task, req.User); err != nil {
		if consensus.IsValidation(err) {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to record submission", "error", err, "azonosito", req.User.Azonosito)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record submission")
		return
	}

	slog.Info("submission recorded", "azonosito", req.User.Azonosito)
	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{Status: "ok"})
}
