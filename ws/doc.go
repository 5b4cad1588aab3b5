// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package ws pushes announcement events to connected websocket clients.
// The feed is one-way: clients subscribe by connecting and receive each
// broadcast as a JSON text frame.
package ws
