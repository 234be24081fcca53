package cli

import (
	"context"
	"os"

	"github.com/Engineerbabu777/blog-app/internal/client/bloc"
	"github.com/Engineerbabu777/blog-app/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and attempts to create a
// new account. On success the returned session becomes the active one.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	state, err := a.authResult(ctx, bloc.AuthSignUp{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}
	a.applyAuthState(state)
	return nil
}

// Login prompts for an email and password and tries to authenticate.
// On success the returned session becomes the active one.
//
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	state, err := a.authResult(ctx, bloc.AuthSignIn{Email: email, Password: password})
	if err != nil {
		return err
	}
	a.applyAuthState(state)
	return nil
}

// Logout drops the cached session and the in-memory one.
func (a *App) Logout(ctx context.Context) error {
	state, err := a.authResult(ctx, bloc.AuthSignOut{})
	if err != nil {
		return err
	}
	a.applyAuthState(state)
	return nil
}

func (a *App) applyAuthState(state bloc.AuthState) {
	switch s := state.(type) {
	case bloc.AuthSuccess:
		a.session = s.Session
		printlnFn("Signed in as", s.Session.User.Name)
	case bloc.AuthSignedOut:
		a.session = nil
		printlnFn("Signed out")
	case bloc.AuthFailure:
		printlnFn("Error:", s.Message)
	}
}
