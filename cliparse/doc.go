// Copyright (c) 2026 the Hivemind authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and
environment variables.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Flags take precedence over environment variables:

  - -p / PORT: server port (default: 3000)
  - -d / DATABASE_URL: postgres DSN or sqlite file path (required)
  - -t / DATABASE_TYPE: "sqlite" or "postgres" (default: sqlite)
  - -cache-flush / CACHE_FLUSH_MINUTES: consensus cache flush period
    in minutes (default: 5)
  - -admin-secret / ADMIN_SECRET: shared secret guarding announcement
    posting (required; prefer the environment variable)

ParseFlags returns an error for a missing database URL, a missing admin
secret, or malformed numeric values.
*/
package cliparse
