// Package db ships the postgres schema migrations with the binary
package db

import "embed"

// Migrations holds the golang-migrate up and down files under migrations/
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations holding the files
const MigrationsDir = "migrations"
