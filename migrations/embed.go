// Package migrations embeds SQL migration files into the binary, so the
// service can migrate its schema without the SQL files present on disk.
package migrations

import (
	"embed"

	"todocore/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "." // Files are at root of embedded FS
}
