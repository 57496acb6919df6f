package store

import _ "embed"

// Schema is the roster DDL, applied by migrations tooling and by the
// integration tests when they provision a fresh database.
//
//go:embed schema.sql
var Schema string
