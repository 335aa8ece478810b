// Package migrations embeds the SQL schema migrations and applies them with
// goose at server startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schemaFS embed.FS

// Migrate brings the connected database up to the latest schema version.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(schemaFS)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("error setting migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	return nil
}
