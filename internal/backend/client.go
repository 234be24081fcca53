// Package backend holds the single handle through which the hosted platform
// is reached: Postgres row storage, S3-compatible object storage, and HS256
// session issuance. The handle is built once in the composition root and
// shared by every data source; the underlying drivers are safe for
// concurrent use by their own contracts.
package backend

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Config carries the subset of client configuration the backend handle needs.
type Config struct {
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	S3RootUser              string
	S3RootPassword          string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
}

type Client struct {
	db       *sql.DB
	storage  *s3.Client
	bucket   string
	baseURL  string
	secret   []byte
	validity time.Duration
}

// New opens the Postgres handle and builds the S3 client. The database
// connection is verified with a ping so a bad DSN fails at startup, not on
// the first user action.
func New(ctx context.Context, cfg Config) (*Client, error) {
	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3RootUser,
			cfg.S3RootPassword,
			"",
		)))
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("s3 config error: %w", err)
	}

	storage := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return &Client{
		db:       db,
		storage:  storage,
		bucket:   cfg.S3Bucket,
		baseURL:  strings.TrimRight(cfg.S3BaseEndpoint, "/"),
		secret:   []byte(cfg.SecretKey),
		validity: cfg.SessionValidityDuration,
	}, nil
}

// NewWithHandles wires an already-constructed set of handles. Used by tests
// and by callers that manage connection lifecycles themselves.
func NewWithHandles(db *sql.DB, storage *s3.Client, cfg Config) *Client {
	return &Client{
		db:       db,
		storage:  storage,
		bucket:   cfg.S3Bucket,
		baseURL:  strings.TrimRight(cfg.S3BaseEndpoint, "/"),
		secret:   []byte(cfg.SecretKey),
		validity: cfg.SessionValidityDuration,
	}
}

// DB exposes the row-storage handle for data sources.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Storage exposes the object-storage client.
func (c *Client) Storage() *s3.Client {
	return c.storage
}

// Bucket is the fixed bucket all blog images live in.
func (c *Client) Bucket() string {
	return c.bucket
}

// PublicObjectURL resolves the publicly readable URL of a stored object.
func (c *Client) PublicObjectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.bucket, key)
}

// Ping checks row-storage reachability.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// Close releases the database handle.
func (c *Client) Close() error {
	return c.db.Close()
}
