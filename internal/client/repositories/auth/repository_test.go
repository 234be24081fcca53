package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/common"
	"github.com/Engineerbabu777/blog-app/internal/logging"
	"github.com/Engineerbabu777/blog-app/internal/client/remote"
)

type fakeAuthSource struct {
	session *models.Session
	err     error

	signUpCalls int
	signInCalls int
}

func (f *fakeAuthSource) SignUp(ctx context.Context, name, email string, password []byte) (*models.Session, error) {
	f.signUpCalls++
	return f.session, f.err
}

func (f *fakeAuthSource) SignIn(ctx context.Context, email string, password []byte) (*models.Session, error) {
	f.signInCalls++
	return f.session, f.err
}

type fakeSessionCache struct {
	session *models.Session

	saveErr  error
	loadErr  error
	clearErr error

	clearCalls int
}

func (f *fakeSessionCache) Save(ctx context.Context, session *models.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.session = session
	return nil
}

func (f *fakeSessionCache) Load(ctx context.Context) (*models.Session, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.session, nil
}

func (f *fakeSessionCache) Clear(ctx context.Context) error {
	f.clearCalls++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = nil
	return nil
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testSession(expiresAt time.Time) *models.Session {
	return &models.Session{
		Token:     "tok-1",
		User:      models.User{ID: "u1", Name: "Alice", Email: "alice@example.com"},
		ExpiresAt: expiresAt,
	}
}

func TestRepositorySignUp(t *testing.T) {
	ctx := context.Background()
	session := testSession(time.Now().Add(time.Hour))

	t.Run("success caches the session", func(t *testing.T) {
		source := &fakeAuthSource{session: session}
		cache := &fakeSessionCache{}
		repo := NewRepository(source, cache, testLogger())

		got, err := repo.SignUp(ctx, "Alice", "alice@example.com", []byte("secret"))
		require.NoError(t, err)
		require.Equal(t, session, got)
		require.Equal(t, session, cache.session)
		require.Equal(t, 1, source.signUpCalls)
	})

	t.Run("remote error becomes a failure", func(t *testing.T) {
		source := &fakeAuthSource{err: remote.NewError("email already in use")}
		repo := NewRepository(source, &fakeSessionCache{}, testLogger())

		_, err := repo.SignUp(ctx, "Alice", "alice@example.com", []byte("secret"))
		var failure *common.Failure
		require.ErrorAs(t, err, &failure)
		require.Equal(t, "email already in use", failure.Message)
	})

	t.Run("cache write failure does not fail the sign up", func(t *testing.T) {
		source := &fakeAuthSource{session: session}
		cache := &fakeSessionCache{saveErr: remote.NewError("disk full")}
		repo := NewRepository(source, cache, testLogger())

		got, err := repo.SignUp(ctx, "Alice", "alice@example.com", []byte("secret"))
		require.NoError(t, err)
		require.Equal(t, session, got)
	})
}

func TestRepositorySignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("success caches the session", func(t *testing.T) {
		session := testSession(time.Now().Add(time.Hour))
		source := &fakeAuthSource{session: session}
		cache := &fakeSessionCache{}
		repo := NewRepository(source, cache, testLogger())

		got, err := repo.SignIn(ctx, "alice@example.com", []byte("secret"))
		require.NoError(t, err)
		require.Equal(t, session, got)
		require.Equal(t, session, cache.session)
		require.Equal(t, 1, source.signInCalls)
	})

	t.Run("invalid credentials message is preserved", func(t *testing.T) {
		source := &fakeAuthSource{err: remote.NewError(common.ErrInvalidCredentials.Error())}
		repo := NewRepository(source, &fakeSessionCache{}, testLogger())

		_, err := repo.SignIn(ctx, "alice@example.com", []byte("wrong"))
		var failure *common.Failure
		require.ErrorAs(t, err, &failure)
		require.Equal(t, common.ErrInvalidCredentials.Error(), failure.Message)
	})

	t.Run("empty remote message falls back to the default", func(t *testing.T) {
		source := &fakeAuthSource{err: remote.NewError("")}
		repo := NewRepository(source, &fakeSessionCache{}, testLogger())

		_, err := repo.SignIn(ctx, "alice@example.com", []byte("secret"))
		var failure *common.Failure
		require.ErrorAs(t, err, &failure)
		require.Equal(t, common.DefaultFailureMessage, failure.Message)
	})
}

func TestRepositoryCurrentSession(t *testing.T) {
	ctx := context.Background()

	t.Run("returns an unexpired cached session", func(t *testing.T) {
		session := testSession(time.Now().Add(time.Hour))
		cache := &fakeSessionCache{session: session}
		repo := NewRepository(&fakeAuthSource{}, cache, testLogger())

		got, err := repo.CurrentSession(ctx)
		require.NoError(t, err)
		require.Equal(t, session, got)
	})

	t.Run("missing session is a failure", func(t *testing.T) {
		cache := &fakeSessionCache{loadErr: common.ErrSessionNotFound}
		repo := NewRepository(&fakeAuthSource{}, cache, testLogger())

		_, err := repo.CurrentSession(ctx)
		var failure *common.Failure
		require.ErrorAs(t, err, &failure)
		require.Equal(t, common.ErrSessionNotFound.Error(), failure.Message)
	})

	t.Run("expired session is cleared and reported as a failure", func(t *testing.T) {
		cache := &fakeSessionCache{session: testSession(time.Now().Add(-time.Minute))}
		repo := NewRepository(&fakeAuthSource{}, cache, testLogger())

		_, err := repo.CurrentSession(ctx)
		var failure *common.Failure
		require.ErrorAs(t, err, &failure)
		require.Equal(t, common.ErrSessionNotFound.Error(), failure.Message)
		require.Equal(t, 1, cache.clearCalls)
		require.Nil(t, cache.session)
	})
}

func TestRepositorySignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the cached session", func(t *testing.T) {
		cache := &fakeSessionCache{session: testSession(time.Now().Add(time.Hour))}
		repo := NewRepository(&fakeAuthSource{}, cache, testLogger())

		require.NoError(t, repo.SignOut(ctx))
		require.Nil(t, cache.session)
	})

	t.Run("clear failure is a failure", func(t *testing.T) {
		cache := &fakeSessionCache{clearErr: common.ErrNotFound}
		repo := NewRepository(&fakeAuthSource{}, cache, testLogger())

		err := repo.SignOut(ctx)
		var failure *common.Failure
		require.ErrorAs(t, err, &failure)
	})
}
