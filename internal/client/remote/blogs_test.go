package remote

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"github.com/Engineerbabu777/blog-app/internal/backend"
	"github.com/Engineerbabu777/blog-app/internal/client/models"

	_ "modernc.org/sqlite"
)

func testBackend(t *testing.T, db *sql.DB) *backend.Client {
	t.Helper()
	return backend.NewWithHandles(db, s3.New(s3.Options{}), backend.Config{
		S3Bucket:       "blog-images",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
		SecretKey:      "test-secret",
	})
}

func closedDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:remote?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.Close())
	return db
}

func swapPutObject(t *testing.T, fn func(ctx context.Context, client *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error)) {
	t.Helper()
	orig := putObject
	putObject = fn
	t.Cleanup(func() { putObject = orig })
}

func TestUploadImage_ReturnsPublicURL(t *testing.T) {
	var gotBucket, gotKey string
	var gotBody []byte

	swapPutObject(t, func(ctx context.Context, client *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		gotBucket = *in.Bucket
		gotKey = *in.Key
		b, err := io.ReadAll(in.Body)
		require.NoError(t, err)
		gotBody = b
		return &s3.PutObjectOutput{}, nil
	})

	src := NewBackendBlogSource(testBackend(t, nil))

	url, err := src.UploadImage(context.Background(), []byte{1, 2, 3}, "blog-1")
	require.NoError(t, err)
	require.Equal(t, "blog-images", gotBucket)
	require.Equal(t, "blog_images/blog-1", gotKey)
	require.Equal(t, []byte{1, 2, 3}, gotBody)
	require.Equal(t, "http://127.0.0.1:9000/blog-images/blog_images/blog-1", url)
}

func TestUploadImage_FlattensStorageError(t *testing.T) {
	swapPutObject(t, func(ctx context.Context, client *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return nil, errors.New("AccessDenied: quota exceeded")
	})

	src := NewBackendBlogSource(testBackend(t, nil))

	_, err := src.UploadImage(context.Background(), nil, "blog-1")
	require.Error(t, err)

	var remoteErr *Error
	require.ErrorAs(t, err, &remoteErr)
	require.Equal(t, "AccessDenied: quota exceeded", remoteErr.Error())
}

func TestCreate_FlattensDBError(t *testing.T) {
	src := NewBackendBlogSource(testBackend(t, closedDB(t)))

	_, err := src.Create(context.Background(), &models.Blog{ID: "x"})
	require.Error(t, err)

	var remoteErr *Error
	require.ErrorAs(t, err, &remoteErr)
	require.Contains(t, remoteErr.Error(), "database is closed")
}

func TestFetchAll_FlattensDBError(t *testing.T) {
	src := NewBackendBlogSource(testBackend(t, closedDB(t)))

	_, err := src.FetchAll(context.Background())
	require.Error(t, err)

	var remoteErr *Error
	require.ErrorAs(t, err, &remoteErr)
}
