package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/Engineerbabu777/blog-app/internal/client/bloc"
	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/logging"
)

// App holds the terminal UI's wiring and the little state it keeps between
// commands: the signed-in session and the most recently displayed list.
type App struct {
	authBloc *bloc.AuthBloc
	blogBloc *bloc.BlogBloc
	logger   logging.Logger
	reader   *bufio.Reader

	session  *models.Session
	lastList []models.Blog
}

func NewApp(authBloc *bloc.AuthBloc, blogBloc *bloc.BlogBloc, logger logging.Logger) *App {
	return &App{
		authBloc: authBloc,
		blogBloc: blogBloc,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

// Run starts the state container workers, restores a cached session if one is
// still valid, and enters the command loop. It returns when the user exits or
// the input stream ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.authBloc.Run(ctx)
	go a.blogBloc.Run(ctx)

	a.restoreSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// restoreSession asks the auth container for a cached session. A failure here
// just means the user has to log in.
func (a *App) restoreSession(ctx context.Context) {
	state, err := a.authResult(ctx, bloc.AuthCheckSession{})
	if err != nil {
		return
	}
	if success, ok := state.(bloc.AuthSuccess); ok {
		a.session = success.Session
		printlnFn("Welcome back,", a.session.User.Name)
	}
}

func (a *App) status() string {
	if a.session == nil {
		return ""
	}
	return "(" + a.session.User.Name + ")"
}

// authResult dispatches an auth intent and returns the first state after the
// loading one.
func (a *App) authResult(ctx context.Context, event bloc.AuthEvent) (bloc.AuthState, error) {
	if err := a.authBloc.Dispatch(ctx, event); err != nil {
		return nil, err
	}
	for {
		select {
		case state, ok := <-a.authBloc.States():
			if !ok {
				return nil, ctx.Err()
			}
			if _, loading := state.(bloc.AuthLoading); loading {
				continue
			}
			return state, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// blogResult dispatches a blog intent and returns the first state after the
// loading one.
func (a *App) blogResult(ctx context.Context, event bloc.BlogEvent) (bloc.BlogState, error) {
	if err := a.blogBloc.Dispatch(ctx, event); err != nil {
		return nil, err
	}
	for {
		select {
		case state, ok := <-a.blogBloc.States():
			if !ok {
				return nil, ctx.Err()
			}
			if _, loading := state.(bloc.BlogLoading); loading {
				continue
			}
			return state, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
