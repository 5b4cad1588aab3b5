// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Supports postgres and sqlite; the rest of the codebase sticks to the SQL
subset both engines accept ($N placeholders, ON CONFLICT, RETURNING).

# Tables

  - tasks: one row per content fingerprint
  - answers: distinct answer texts per task, with the live vote tally
  - users: lazily created voters, keyed by the opaque azonosito
  - votes: the current endorsement of one answer per (user, task)
  - announcements: admin broadcast entries

# Relationships

	tasks 1──* answers
	tasks 1──* votes
	users 1──* votes
	answers 1──* votes

# Unique constraints

The engine leans on these to convert concurrent check-then-act races into
detectable conflicts:

  - tasks.task_hash
  - answers.(task_id, answer)
  - users.azonosito
  - votes.(user_id, task_id)
*/
package db
