package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/common"
)

// blogSnapshotKey is the single slot the whole blog list lives in. The
// snapshot is overwritten wholesale on every successful remote fetch; there
// is no per-record entry, no TTL and no incremental invalidation.
const blogSnapshotKey = "blogs"

// BlogCache is the local data source for blog records.
type BlogCache struct {
	box *Box
}

func NewBlogCache(box *Box) *BlogCache {
	return &BlogCache{box: box}
}

// SaveAll serializes and overwrites the cached snapshot.
func (c *BlogCache) SaveAll(ctx context.Context, blogs []models.Blog) error {
	data, err := json.Marshal(blogs)
	if err != nil {
		return fmt.Errorf("failed to serialize blogs: %w", err)
	}
	return c.box.Swap(ctx, blogSnapshotKey, data)
}

// LoadAll deserializes and returns the cached snapshot, or an empty list if
// none exists yet.
func (c *BlogCache) LoadAll(ctx context.Context) ([]models.Blog, error) {
	data, err := c.box.Get(ctx, blogSnapshotKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return []models.Blog{}, nil
		}
		return nil, err
	}

	var blogs []models.Blog
	if err := json.Unmarshal(data, &blogs); err != nil {
		return nil, fmt.Errorf("failed to deserialize blogs: %w", err)
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	return blogs, nil
}
