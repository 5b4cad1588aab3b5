// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Hivemind API server.

Hivemind is a crowdsourced answer-aggregation service: clients submit
proposed solutions to named tasks, the server deduplicates identical
answers, tallies votes, and serves the current consensus answer. A
leaderboard ranks users by tasks voted on, and admins can broadcast
announcements to connected clients.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=hivemind.db ADMIN_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): postgres DSN or sqlite file path
  - ADMIN_SECRET (--admin-secret): shared secret for posting announcements

Optional settings:

  - PORT (-p): server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - CACHE_FLUSH_MINUTES (--cache-flush): consensus cache flush period
    (default: 5)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - consensus: the vote-consolidation and consensus-resolution engine
  - store: the access layer for tasks, answers, users, votes
  - cache: in-process high-confidence result cache
  - taskid: task fingerprinting and solution parsing
  - ws: websocket announcement broadcast hub
  - handlers: HTTP request handlers (solution, toplist, announcements)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
