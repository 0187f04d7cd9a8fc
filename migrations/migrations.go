// Package migrations embeds the bootstrap schema for each supported driver.
package migrations

import (
	"embed"
	"fmt"
)

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS

// InitialSchema returns the idempotent bootstrap DDL for driver.
func InitialSchema(driver string) (string, error) {
	data, err := FS.ReadFile(driver + "/001_initial_schema.up.sql")
	if err != nil {
		return "", fmt.Errorf("read %s schema: %w", driver, err)
	}
	return string(data), nil
}
