package models

import (
	"encoding/json"
	"time"
)

// Request types

// TaskRequest is the client-visible task: an opaque identifier plus the
// submitted solution. The solution is raw JSON because clients may send a
// single scalar or a list of sub-answers.
type TaskRequest struct {
	ID       string          `json:"id"`
	Solution json.RawMessage `json:"solution,omitempty"`
}

type UserRequest struct {
	Azonosito string `json:"azonosito"`
	Name      string `json:"name"`
}

type SubmitRequest struct {
	Task TaskRequest `json:"task"`
	User UserRequest `json:"user"`
}

type PostAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Response types

// Consensus is the current best answer for one task: the top-voted answer
// text, its tally, and the sum of all tallies for the task.
type Consensus struct {
	Answer     string `json:"answer"`
	Votes      int    `json:"votes"`
	TotalVotes int    `json:"totalVotes"`
}

type SubmitResponse struct {
	Status string `json:"status"`
}

type UserRank struct {
	Name  string `json:"name"`
	Votes int    `json:"votes"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Started string `json:"started"`
}

// Domain types

type Task struct {
	ID   int64
	Hash string
}

type Answer struct {
	ID     int64
	TaskID int64
	Answer string
	Votes  int
}

type User struct {
	ID        int64
	Azonosito string
	Name      string
	Votes     int
}

type Vote struct {
	ID       int64
	UserID   int64
	TaskID   int64
	AnswerID int64
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Posted    string    `json:"posted,omitempty"` // human-readable, filled at the edge
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
