// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - RedisAddr: Redis address for session storage; empty selects the
    in-process memory store
  - SessionSecret: Cookie signing secret (required)
  - AdminKey: Shared admin key; empty disables the admin surface entirely
  - Title: Experiment title used when bootstrapping the configuration row

# CLI Flags

	-p              port
	-d              database URL
	-t              database type
	-redis          redis address
	-session-secret session secret
	-admin-key      admin key

Every flag falls back to its environment variable (PORT, DATABASE_URL,
DATABASE_TYPE, REDIS_ADDR, SESSION_SECRET, ADMIN_KEY, EXPERIMENT_TITLE).
*/
package cliparse
