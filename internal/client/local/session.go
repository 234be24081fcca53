package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/common"
)

const sessionKey = "session"

// SessionCache keeps the current auth session so the user stays signed in
// across restarts and while offline.
type SessionCache struct {
	box *Box
}

func NewSessionCache(box *Box) *SessionCache {
	return &SessionCache{box: box}
}

func (c *SessionCache) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	return c.box.Set(ctx, sessionKey, data)
}

// Load returns the cached session or common.ErrSessionNotFound.
func (c *SessionCache) Load(ctx context.Context) (*models.Session, error) {
	data, err := c.box.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrSessionNotFound
		}
		return nil, err
	}

	session := &models.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("failed to deserialize session: %w", err)
	}
	return session, nil
}

func (c *SessionCache) Clear(ctx context.Context) error {
	return c.box.Clear(ctx, sessionKey)
}
