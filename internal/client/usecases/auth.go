package usecases

import (
	"context"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/client/repositories/auth"
)

// SignUpParams carries the registration form's fields.
type SignUpParams struct {
	Name     string
	Email    string
	Password []byte
}

// SignInParams carries the login form's fields.
type SignInParams struct {
	Email    string
	Password []byte
}

// UserSignUp registers a new account and returns its session.
type UserSignUp struct {
	repository auth.Repository
}

func NewUserSignUp(r auth.Repository) *UserSignUp {
	return &UserSignUp{repository: r}
}

func (u *UserSignUp) Call(ctx context.Context, params SignUpParams) (*models.Session, error) {
	return u.repository.SignUp(ctx, params.Name, params.Email, params.Password)
}

// UserSignIn authenticates an existing account and returns its session.
type UserSignIn struct {
	repository auth.Repository
}

func NewUserSignIn(r auth.Repository) *UserSignIn {
	return &UserSignIn{repository: r}
}

func (u *UserSignIn) Call(ctx context.Context, params SignInParams) (*models.Session, error) {
	return u.repository.SignIn(ctx, params.Email, params.Password)
}

// CurrentUser returns the cached, unexpired session if one exists.
type CurrentUser struct {
	repository auth.Repository
}

func NewCurrentUser(r auth.Repository) *CurrentUser {
	return &CurrentUser{repository: r}
}

func (u *CurrentUser) Call(ctx context.Context, _ NoParams) (*models.Session, error) {
	return u.repository.CurrentSession(ctx)
}

// UserSignOut drops the cached session.
type UserSignOut struct {
	repository auth.Repository
}

func NewUserSignOut(r auth.Repository) *UserSignOut {
	return &UserSignOut{repository: r}
}

func (u *UserSignOut) Call(ctx context.Context, _ NoParams) (struct{}, error) {
	return struct{}{}, u.repository.SignOut(ctx)
}
