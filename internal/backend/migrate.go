package backend

import (
	"context"

	"github.com/pressly/goose/v3"

	"github.com/Engineerbabu777/blog-app/internal/backend/migrations"
)

// RunMigrations applies the embedded backend schema (profiles, blogs).
// Meant for development and provisioning; a hosted deployment normally owns
// its schema.
func (c *Client) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, c.db, ".")
}
