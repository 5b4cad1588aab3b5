// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared across
the server.

Request and response types carry JSON tags and mirror the wire format the
web clients use. Domain types (Task, Answer, User, Vote) mirror the
database rows and never leave the process as-is.
*/
package models
