// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

Handlers are thin transport adapters: they parse and validate the wire
format, call into the consensus engine or store, and render JSON. All
business invariants live in the consensus package.

  - SolutionHandler: GET/POST /solution (resolve and submit)
  - ToplistHandler: GET /topapi (leaderboard)
  - AnnouncementsHandler: POST/GET /announcements (admin broadcast)

Each handler is constructed with its dependencies and registered by the
router package.
*/
package handlers
