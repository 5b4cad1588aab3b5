// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hivemind-vote/hivemind/cache"
	"github.com/hivemind-vote/hivemind/consensus"
	"github.com/hivemind-vote/hivemind/models"
	"github.com/hivemind-vote/hivemind/testutil"
)

func newSolutionHandler(t *testing.T) *SolutionHandler {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return NewSolutionHandler(consensus.New(conn, cache.New()))
}

func submitBody(taskID, solution, azonosito, name string) models.SubmitRequest {
	return models.SubmitRequest{
		Task: models.TaskRequest{ID: taskID, Solution: json.RawMessage(solution)},
		User: models.UserRequest{Azonosito: azonosito, Name: name},
	}
}

func TestPostSolution(t *testing.T) {
	h := newSolutionHandler(t)

	req := testutil.MakeRequest("POST", "/solution", submitBody("t1", `"A"`, "u1", "Anna"), nil)
	w := httptest.NewRecorder()
	h.PostSolution(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.SubmitResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
}

func TestPostSolution_Validation(t *testing.T) {
	h := newSolutionHandler(t)

	tests := []struct {
		name string
		body models.SubmitRequest
	}{
		{"missing task id", submitBody("", `"A"`, "u1", "")},
		{"missing solution", models.SubmitRequest{
			Task: models.TaskRequest{ID: "t1"},
			User: models.UserRequest{Azonosito: "u1"},
		}},
		{"missing azonosito", submitBody("t1", `"A"`, "", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/solution", tt.body, nil)
			w := httptest.NewRecorder()
			h.PostSolution(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestPostSolution_InvalidJSON(t *testing.T) {
	h := newSolutionHandler(t)

	req := httptest.NewRequest("POST", "/solution", nil)
	w := httptest.NewRecorder()
	h.PostSolution(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func getSolution(t *testing.T, h *SolutionHandler, task models.TaskRequest) *httptest.ResponseRecorder {
	t.Helper()
	taskJSON, _ := json.Marshal(task)
	req := testutil.MakeRequest("GET", "/solution?task="+url.QueryEscape(string(taskJSON)), nil, nil)
	w := httptest.NewRecorder()
	h.GetSolution(w, req)
	return w
}

func TestGetSolution(t *testing.T) {
	h := newSolutionHandler(t)

	// Submit then read back
	req := testutil.MakeRequest("POST", "/solution", submitBody("t1", `"A"`, "u1", ""), nil)
	h.PostSolution(httptest.NewRecorder(), req)

	w := getSolution(t, h, models.TaskRequest{ID: "t1"})
	testutil.AssertStatus(t, w, http.StatusOK)

	var c models.Consensus
	testutil.AssertJSON(t, w, &c)
	if c.Answer != "A" || c.Votes != 1 || c.TotalVotes != 1 {
		t.Errorf("expected {A 1 1}, got %+v", c)
	}
}

func TestGetSolution_UnknownTaskIsNull(t *testing.T) {
	h := newSolutionHandler(t)

	w := getSolution(t, h, models.TaskRequest{ID: "never-seen"})
	testutil.AssertStatus(t, w, http.StatusOK)

	var c *models.Consensus
	testutil.AssertJSON(t, w, &c)
	if c != nil {
		t.Errorf("expected null body, got %+v", c)
	}
}

func TestGetSolution_Batched(t *testing.T) {
	h := newSolutionHandler(t)

	req := testutil.MakeRequest("POST", "/solution", submitBody("multi", `["A","B"]`, "u1", ""), nil)
	h.PostSolution(httptest.NewRecorder(), req)

	w := getSolution(t, h, models.TaskRequest{ID: "multi", Solution: json.RawMessage(`["x","y"]`)})
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []*models.Consensus
	testutil.AssertJSON(t, w, &results)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Answer != "A" || results[1].Answer != "B" {
		t.Errorf("expected [A B], got %+v", results)
	}
}

func TestGetSolution_MissingTaskParam(t *testing.T) {
	h := newSolutionHandler(t)

	req := testutil.MakeRequest("GET", "/solution", nil, nil)
	w := httptest.NewRecorder()
	h.GetSolution(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestGetSolution_BadTaskJSON(t *testing.T) {
	h := newSolutionHandler(t)

	req := testutil.MakeRequest("GET", "/solution?task="+url.QueryEscape("{not json"), nil, nil)
	w := httptest.NewRecorder()
	h.GetSolution(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
