// Package models defines the domain records the client works with.
package models

import "time"

// Blog is one user-authored post.
//
// ID is assigned exactly once, client-side, before any network call: the
// image object stored for the post is keyed by it, so it must exist before
// the upload. ImageURL stays empty until that upload completes.
//
// PosterName is denormalized from the author's profile and populated only by
// the fetch-all path; freshly created records never carry it.
type Blog struct {
	ID         string    `json:"id"`
	PosterID   string    `json:"poster_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ImageURL   string    `json:"image_url"`
	Topics     []string  `json:"topics"`
	UpdatedAt  time.Time `json:"updated_at"`
	PosterName string    `json:"poster_name,omitempty"`
}

// User identifies an author. Owned by the auth subsystem; the blog feature
// only consumes it for attribution.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is an authenticated user plus the token the backend issued for it.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session token's lifetime has passed.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
