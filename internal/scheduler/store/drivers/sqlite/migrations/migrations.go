package migrations

import "embed"

// Migrations holds the embedded SQL migration files applied at startup.
//
//go:embed *.sql
var Migrations embed.FS
