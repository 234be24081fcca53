// Package blogs is the orchestration layer for the blog feature: it chooses
// the remote or the local path based on connectivity and normalizes every
// data-source error into a common.Failure. Nothing else crosses its boundary.
package blogs

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/client/remote"
	"github.com/Engineerbabu777/blog-app/internal/common"
	"github.com/Engineerbabu777/blog-app/internal/logging"
	"github.com/Engineerbabu777/blog-app/internal/netx"
)

// Cache is the slice of the local data source this repository needs.
type Cache interface {
	SaveAll(ctx context.Context, blogs []models.Blog) error
	LoadAll(ctx context.Context) ([]models.Blog, error)
}

// UploadParams carries the creation form's fields.
type UploadParams struct {
	PosterID string
	Title    string
	Content  string
	Topics   []string
	Image    []byte
}

// Repository exposes the two blog operations. Every non-nil error returned
// by either method is a *common.Failure.
type Repository interface {
	// Upload creates a blog record: a fresh time-ordered id is minted
	// client-side, the image is stored under that id, the returned public
	// URL is attached, and the row is inserted. The two remote steps are
	// sequential and not transactional: if the insert fails after the image
	// upload succeeded, the stored object stays behind with no cleanup.
	Upload(ctx context.Context, params UploadParams) (*models.Blog, error)

	// GetAll returns every blog record. Offline it serves the cached
	// snapshot, even an empty one, as a success; online it fetches from the
	// backend and overwrites the cache with the result.
	GetAll(ctx context.Context) ([]models.Blog, error)
}

type repository struct {
	remote  remote.BlogSource
	cache   Cache
	checker netx.Checker
	logger  logging.Logger
}

func NewRepository(remoteSource remote.BlogSource, cache Cache, checker netx.Checker, logger logging.Logger) Repository {
	return &repository{remote: remoteSource, cache: cache, checker: checker, logger: logger}
}

func (r *repository) Upload(ctx context.Context, p UploadParams) (*models.Blog, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, common.FailureFrom(err)
	}

	blog := &models.Blog{
		ID:        id.String(),
		PosterID:  p.PosterID,
		Title:     p.Title,
		Content:   p.Content,
		ImageURL:  "",
		Topics:    p.Topics,
		UpdatedAt: time.Now(),
	}

	url, err := r.remote.UploadImage(ctx, p.Image, blog.ID)
	if err != nil {
		return nil, common.FailureFrom(err)
	}
	blog.ImageURL = url

	stored, err := r.remote.Create(ctx, blog)
	if err != nil {
		// The image object uploaded above stays behind; there is no
		// compensating delete.
		return nil, common.FailureFrom(err)
	}

	return stored, nil
}

func (r *repository) GetAll(ctx context.Context) ([]models.Blog, error) {
	if !r.checker.IsConnected(ctx) {
		cached, err := r.cache.LoadAll(ctx)
		if err != nil {
			return nil, common.FailureFrom(err)
		}
		return cached, nil
	}

	fetched, err := r.remote.FetchAll(ctx)
	if err != nil {
		return nil, common.FailureFrom(err)
	}

	if err := r.cache.SaveAll(ctx, fetched); err != nil {
		// The fetch itself succeeded; a stale cache only degrades the next
		// offline read.
		r.logger.Warn(ctx, "failed to refresh blog cache", "error", err)
	}

	return fetched, nil
}
