package usecases

import (
	"context"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/client/repositories/blogs"
)

// UploadBlog creates a new blog record with its image.
type UploadBlog struct {
	repository blogs.Repository
}

func NewUploadBlog(r blogs.Repository) *UploadBlog {
	return &UploadBlog{repository: r}
}

func (u *UploadBlog) Call(ctx context.Context, params blogs.UploadParams) (*models.Blog, error) {
	return u.repository.Upload(ctx, params)
}

// GetAllBlogs returns every blog record, from the backend or from the local
// cache depending on connectivity.
type GetAllBlogs struct {
	repository blogs.Repository
}

func NewGetAllBlogs(r blogs.Repository) *GetAllBlogs {
	return &GetAllBlogs{repository: r}
}

func (u *GetAllBlogs) Call(ctx context.Context, _ NoParams) ([]models.Blog, error) {
	return u.repository.GetAll(ctx)
}
