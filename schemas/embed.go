// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// MigrationsDir is the directory inside Migrations holding the ordered *.sql files.
const MigrationsDir = "migrations"

// Migrations contains all SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
