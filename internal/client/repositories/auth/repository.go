// Package auth is the orchestration layer for the auth feature, shaped like
// the blog repository: remote sign-up/sign-in, locally cached session for
// offline continuity, every error normalized to a common.Failure.
package auth

import (
	"context"
	"time"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/client/remote"
	"github.com/Engineerbabu777/blog-app/internal/common"
	"github.com/Engineerbabu777/blog-app/internal/logging"
)

// SessionCache is the slice of the local data source this repository needs.
type SessionCache interface {
	Save(ctx context.Context, session *models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

// Repository exposes the auth operations. Every non-nil error returned is a
// *common.Failure.
type Repository interface {
	SignUp(ctx context.Context, name, email string, password []byte) (*models.Session, error)
	SignIn(ctx context.Context, email string, password []byte) (*models.Session, error)

	// CurrentSession returns the cached, unexpired session. An absent or
	// expired session is a Failure; the caller re-authenticates.
	CurrentSession(ctx context.Context) (*models.Session, error)

	SignOut(ctx context.Context) error
}

type repository struct {
	remote remote.AuthSource
	cache  SessionCache
	logger logging.Logger
	now    func() time.Time
}

func NewRepository(remoteSource remote.AuthSource, cache SessionCache, logger logging.Logger) Repository {
	return &repository{remote: remoteSource, cache: cache, logger: logger, now: time.Now}
}

func (r *repository) SignUp(ctx context.Context, name, email string, password []byte) (*models.Session, error) {
	session, err := r.remote.SignUp(ctx, name, email, password)
	if err != nil {
		return nil, common.FailureFrom(err)
	}
	r.cacheSession(ctx, session)
	return session, nil
}

func (r *repository) SignIn(ctx context.Context, email string, password []byte) (*models.Session, error) {
	session, err := r.remote.SignIn(ctx, email, password)
	if err != nil {
		return nil, common.FailureFrom(err)
	}
	r.cacheSession(ctx, session)
	return session, nil
}

func (r *repository) CurrentSession(ctx context.Context) (*models.Session, error) {
	session, err := r.cache.Load(ctx)
	if err != nil {
		return nil, common.FailureFrom(err)
	}
	if session.Expired(r.now()) {
		if err := r.cache.Clear(ctx); err != nil {
			r.logger.Warn(ctx, "failed to clear expired session", "error", err)
		}
		return nil, common.FailureFrom(common.ErrSessionNotFound)
	}
	return session, nil
}

func (r *repository) SignOut(ctx context.Context) error {
	if err := r.cache.Clear(ctx); err != nil {
		return common.FailureFrom(err)
	}
	return nil
}

// cacheSession persists the session for offline continuity. Failing to cache
// does not fail the sign-in itself.
func (r *repository) cacheSession(ctx context.Context, session *models.Session) {
	if err := r.cache.Save(ctx, session); err != nil {
		r.logger.Warn(ctx, "failed to cache session", "error", err)
	}
}
