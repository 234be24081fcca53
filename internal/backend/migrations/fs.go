// Package migrations embeds the backend schema migrations applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
