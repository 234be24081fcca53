package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Engineerbabu777/blog-app/internal/backend"
	"github.com/Engineerbabu777/blog-app/internal/client/models"
)

// imagePrefix is the key prefix all blog images are stored under; the object
// name is the blog's id, which is why the id must exist before the upload.
const imagePrefix = "blog_images"

// BlogSource is the remote data source for blog records.
type BlogSource interface {
	// UploadImage stores the image bytes keyed by the blog's id and returns
	// the publicly resolvable URL of the stored object.
	UploadImage(ctx context.Context, data []byte, blogID string) (string, error)

	// Create inserts one row built from the record and returns the row as
	// stored, which may differ from the input (server-assigned defaults).
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)

	// FetchAll selects all rows joined with the author's display name,
	// newest first.
	FetchAll(ctx context.Context) ([]models.Blog, error)
}

// putObject is a seam so tests can intercept the storage call.
var putObject = func(ctx context.Context, client *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
	return client.PutObject(ctx, in)
}

// BackendBlogSource implements BlogSource on the backend platform handle.
type BackendBlogSource struct {
	backend *backend.Client
}

func NewBackendBlogSource(b *backend.Client) *BackendBlogSource {
	return &BackendBlogSource{backend: b}
}

func (s *BackendBlogSource) UploadImage(ctx context.Context, data []byte, blogID string) (string, error) {
	key := path.Join(imagePrefix, blogID)

	_, err := putObject(ctx, s.backend.Storage(), &s3.PutObjectInput{
		Bucket: aws.String(s.backend.Bucket()),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", flatten(err)
	}

	return s.backend.PublicObjectURL(key), nil
}

func (s *BackendBlogSource) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	topics, err := json.Marshal(blog.Topics)
	if err != nil {
		return nil, flatten(err)
	}

	query := `INSERT INTO blogs (id, poster_id, title, content, image_url, topics, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, poster_id, title, content, image_url, topics, updated_at`

	stored := &models.Blog{}
	var storedTopics []byte

	row := s.backend.DB().QueryRowContext(ctx, query,
		blog.ID, blog.PosterID, blog.Title, blog.Content, blog.ImageURL, topics, blog.UpdatedAt)

	if err := row.Scan(&stored.ID, &stored.PosterID, &stored.Title, &stored.Content,
		&stored.ImageURL, &storedTopics, &stored.UpdatedAt); err != nil {
		return nil, flatten(fmt.Errorf("db error: %w", err))
	}

	if err := json.Unmarshal(storedTopics, &stored.Topics); err != nil {
		return nil, flatten(err)
	}

	return stored, nil
}

func (s *BackendBlogSource) FetchAll(ctx context.Context) ([]models.Blog, error) {
	query := `SELECT b.id, b.poster_id, b.title, b.content, b.image_url, b.topics, b.updated_at, p.name
		FROM blogs b
		JOIN profiles p ON p.id = b.poster_id
		ORDER BY b.updated_at DESC`

	rows, err := s.backend.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, flatten(fmt.Errorf("db error: %w", err))
	}
	defer rows.Close()

	var result []models.Blog
	for rows.Next() {
		var item models.Blog
		var topics []byte
		if err := rows.Scan(&item.ID, &item.PosterID, &item.Title, &item.Content,
			&item.ImageURL, &topics, &item.UpdatedAt, &item.PosterName); err != nil {
			return nil, flatten(err)
		}
		if err := json.Unmarshal(topics, &item.Topics); err != nil {
			return nil, flatten(err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, flatten(err)
	}

	return result, nil
}
