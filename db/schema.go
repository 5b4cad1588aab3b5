// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// dbType must be "sqlite" or "postgres"; the two differ only in how
// auto-incrementing primary keys are declared.
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case "postgres":
		ddl = schemaPostgres
	case "sqlite":
		ddl = schemaSQLite
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schemaPostgres = `
-- Tasks: identity is the content fingerprint, nothing else is stored
CREATE TABLE IF NOT EXISTS tasks (
    id BIGSERIAL PRIMARY KEY,
    task_hash TEXT NOT NULL UNIQUE
);

-- Answers: one row per distinct answer text per task
CREATE TABLE IF NOT EXISTS answers (
    id BIGSERIAL PRIMARY KEY,
    task_id BIGINT NOT NULL REFERENCES tasks(id),
    answer TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    UNIQUE (task_id, answer)
);

CREATE INDEX IF NOT EXISTS idx_answers_task_id ON answers(task_id);

-- Users: azonosito is the opaque client-supplied identifier
CREATE TABLE IF NOT EXISTS users (
    id BIGSERIAL PRIMARY KEY,
    azonosito TEXT NOT NULL UNIQUE,
    name TEXT,
    votes INTEGER NOT NULL DEFAULT 0
);

-- Votes: at most one per (user, task)
CREATE TABLE IF NOT EXISTS votes (
    id BIGSERIAL PRIMARY KEY,
    user_id BIGINT NOT NULL REFERENCES users(id),
    task_id BIGINT NOT NULL REFERENCES tasks(id),
    answer_id BIGINT NOT NULL REFERENCES answers(id),
    UNIQUE (user_id, task_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_answer_id ON votes(answer_id);

-- Announcements
CREATE TABLE IF NOT EXISTS announcements (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_announcements_created_at ON announcements(created_at);
`

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    task_hash TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS answers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    task_id INTEGER NOT NULL REFERENCES tasks(id),
    answer TEXT NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0,
    UNIQUE (task_id, answer)
);

CREATE INDEX IF NOT EXISTS idx_answers_task_id ON answers(task_id);

CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    azonosito TEXT NOT NULL UNIQUE,
    name TEXT,
    votes INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id),
    task_id INTEGER NOT NULL REFERENCES tasks(id),
    answer_id INTEGER NOT NULL REFERENCES answers(id),
    UNIQUE (user_id, task_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_answer_id ON votes(answer_id);

CREATE TABLE IF NOT EXISTS announcements (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_announcements_created_at ON announcements(created_at);
`
