// Package migrations embeds the local cache box migrations applied by goose.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
