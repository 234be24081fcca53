package bloc

import (
	"context"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/client/usecases"
	"github.com/Engineerbabu777/blog-app/internal/common"
)

// AuthEvent is a user intent handled by the AuthBloc.
type AuthEvent interface{ isAuthEvent() }

// AuthSignUp requests registration of a new account.
type AuthSignUp struct {
	Name     string
	Email    string
	Password []byte
}

// AuthSignIn requests authentication of an existing account.
type AuthSignIn struct {
	Email    string
	Password []byte
}

// AuthCheckSession requests the cached session, if one is still valid.
type AuthCheckSession struct{}

// AuthSignOut requests that the cached session be dropped.
type AuthSignOut struct{}

func (AuthSignUp) isAuthEvent()       {}
func (AuthSignIn) isAuthEvent()       {}
func (AuthCheckSession) isAuthEvent() {}
func (AuthSignOut) isAuthEvent()      {}

// AuthState is a point in the auth feature's state sequence.
type AuthState interface{ isAuthState() }

// AuthInitial is the state before any intent has been dispatched.
type AuthInitial struct{}

// AuthLoading is published before every intent is handled.
type AuthLoading struct{}

// AuthFailure carries the message of the failure that ended an intent.
type AuthFailure struct {
	Message string
}

// AuthSuccess carries the session of a finished sign-up, sign-in or
// session check.
type AuthSuccess struct {
	Session *models.Session
}

// AuthSignedOut reports that the cached session was dropped.
type AuthSignedOut struct{}

func (AuthInitial) isAuthState()   {}
func (AuthLoading) isAuthState()   {}
func (AuthFailure) isAuthState()   {}
func (AuthSuccess) isAuthState()   {}
func (AuthSignedOut) isAuthState() {}

// AuthBloc turns auth intents into auth states.
type AuthBloc struct {
	signUp  usecases.UseCase[usecases.SignUpParams, *models.Session]
	signIn  usecases.UseCase[usecases.SignInParams, *models.Session]
	current usecases.UseCase[usecases.NoParams, *models.Session]
	signOut usecases.UseCase[usecases.NoParams, struct{}]
	events  chan AuthEvent
	states  chan AuthState
}

func NewAuthBloc(
	signUp usecases.UseCase[usecases.SignUpParams, *models.Session],
	signIn usecases.UseCase[usecases.SignInParams, *models.Session],
	current usecases.UseCase[usecases.NoParams, *models.Session],
	signOut usecases.UseCase[usecases.NoParams, struct{}],
) *AuthBloc {
	return &AuthBloc{
		signUp:  signUp,
		signIn:  signIn,
		current: current,
		signOut: signOut,
		events:  make(chan AuthEvent),
		states:  make(chan AuthState),
	}
}

// Dispatch hands an intent to the worker. It blocks until the worker accepts
// it or the context is done.
func (b *AuthBloc) Dispatch(ctx context.Context, event AuthEvent) error {
	select {
	case b.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// States returns the channel the worker publishes on.
func (b *AuthBloc) States() <-chan AuthState {
	return b.states
}

// Run consumes intents until the context is done. It closes the state channel
// on exit.
func (b *AuthBloc) Run(ctx context.Context) {
	defer close(b.states)
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-b.events:
			if !b.emit(ctx, AuthLoading{}) {
				return
			}
			if !b.emit(ctx, b.handle(ctx, event)) {
				return
			}
		}
	}
}

func (b *AuthBloc) handle(ctx context.Context, event AuthEvent) AuthState {
	switch e := event.(type) {
	case AuthSignUp:
		session, err := b.signUp.Call(ctx, usecases.SignUpParams{Name: e.Name, Email: e.Email, Password: e.Password})
		if err != nil {
			return AuthFailure{Message: failureMessage(err)}
		}
		return AuthSuccess{Session: session}
	case AuthSignIn:
		session, err := b.signIn.Call(ctx, usecases.SignInParams{Email: e.Email, Password: e.Password})
		if err != nil {
			return AuthFailure{Message: failureMessage(err)}
		}
		return AuthSuccess{Session: session}
	case AuthCheckSession:
		session, err := b.current.Call(ctx, usecases.NoParams{})
		if err != nil {
			return AuthFailure{Message: failureMessage(err)}
		}
		return AuthSuccess{Session: session}
	case AuthSignOut:
		if _, err := b.signOut.Call(ctx, usecases.NoParams{}); err != nil {
			return AuthFailure{Message: failureMessage(err)}
		}
		return AuthSignedOut{}
	default:
		return AuthFailure{Message: common.DefaultFailureMessage}
	}
}

func (b *AuthBloc) emit(ctx context.Context, state AuthState) bool {
	select {
	case b.states <- state:
		return true
	case <-ctx.Done():
		return false
	}
}
