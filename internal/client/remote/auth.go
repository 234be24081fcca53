package remote

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/Engineerbabu777/blog-app/internal/backend"
	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/common"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint breach.
const uniqueViolation = "23505"

// AuthSource is the remote data source for email/password sessions.
type AuthSource interface {
	SignUp(ctx context.Context, name, email string, password []byte) (*models.Session, error)
	SignIn(ctx context.Context, email string, password []byte) (*models.Session, error)
}

// BackendAuthSource implements AuthSource on the backend platform handle.
type BackendAuthSource struct {
	backend *backend.Client
}

func NewBackendAuthSource(b *backend.Client) *BackendAuthSource {
	return &BackendAuthSource{backend: b}
}

func (s *BackendAuthSource) SignUp(ctx context.Context, name, email string, password []byte) (*models.Session, error) {
	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, flatten(err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, flatten(err)
	}

	query := `INSERT INTO profiles (id, name, email, password_hash, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email`

	user := models.User{}
	row := s.backend.DB().QueryRowContext(ctx, query, id.String(), name, email, string(hash), time.Now())
	if err := row.Scan(&user.ID, &user.Name, &user.Email); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, flatten(common.ErrEmailAlreadyInUse)
		}
		return nil, flatten(err)
	}

	return s.issueSession(user)
}

func (s *BackendAuthSource) SignIn(ctx context.Context, email string, password []byte) (*models.Session, error) {
	query := `SELECT id, name, email, password_hash FROM profiles WHERE email = $1`

	user := models.User{}
	var hash string
	row := s.backend.DB().QueryRowContext(ctx, query, email)
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, flatten(common.ErrInvalidCredentials)
		}
		return nil, flatten(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), password); err != nil {
		return nil, flatten(common.ErrInvalidCredentials)
	}

	return s.issueSession(user)
}

func (s *BackendAuthSource) issueSession(user models.User) (*models.Session, error) {
	token, expiresAt, err := s.backend.CreateToken(user.ID)
	if err != nil {
		return nil, flatten(err)
	}
	return &models.Session{Token: token, User: user, ExpiresAt: expiresAt}, nil
}
