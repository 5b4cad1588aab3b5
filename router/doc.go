// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method and
path patterns.

# Routes

	GET  /health        - liveness probe
	GET  /solution      - resolve a task's consensus
	POST /solution      - submit a solution (vote)
	GET  /topapi        - leaderboard, descending by votes
	POST /announcements - admin broadcast (X-Admin-Secret)
	GET  /announcements - announcement feed since a timestamp
	GET  /ws            - websocket announcement push feed

All routes except the websocket upgrade are wrapped with request logging.
*/
package router
