package bloc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Engineerbabu777/blog-app/internal/client/models"
	"github.com/Engineerbabu777/blog-app/internal/client/usecases"
	"github.com/Engineerbabu777/blog-app/internal/common"
)

type fakeSessionUseCase[P any] struct {
	session *models.Session
	err     error

	got P
}

func (f *fakeSessionUseCase[P]) Call(ctx context.Context, params P) (*models.Session, error) {
	f.got = params
	return f.session, f.err
}

type fakeSignOutUseCase struct {
	err   error
	calls int
}

func (f *fakeSignOutUseCase) Call(ctx context.Context, _ usecases.NoParams) (struct{}, error) {
	f.calls++
	return struct{}{}, f.err
}

type authFakes struct {
	signUp  *fakeSessionUseCase[usecases.SignUpParams]
	signIn  *fakeSessionUseCase[usecases.SignInParams]
	current *fakeSessionUseCase[usecases.NoParams]
	signOut *fakeSignOutUseCase
}

func startAuthBloc(t *testing.T, f authFakes) *AuthBloc {
	t.Helper()
	if f.signUp == nil {
		f.signUp = &fakeSessionUseCase[usecases.SignUpParams]{}
	}
	if f.signIn == nil {
		f.signIn = &fakeSessionUseCase[usecases.SignInParams]{}
	}
	if f.current == nil {
		f.current = &fakeSessionUseCase[usecases.NoParams]{}
	}
	if f.signOut == nil {
		f.signOut = &fakeSignOutUseCase{}
	}
	b := NewAuthBloc(f.signUp, f.signIn, f.current, f.signOut)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go b.Run(ctx)
	return b
}

func TestAuthBlocSignUp(t *testing.T) {
	ctx := context.Background()
	session := &models.Session{Token: "tok", User: models.User{ID: "u1", Name: "Alice"}}

	t.Run("loading then success", func(t *testing.T) {
		signUp := &fakeSessionUseCase[usecases.SignUpParams]{session: session}
		b := startAuthBloc(t, authFakes{signUp: signUp})

		require.NoError(t, b.Dispatch(ctx, AuthSignUp{Name: "Alice", Email: "a@b.c", Password: []byte("pw")}))

		require.IsType(t, AuthLoading{}, nextState(t, b.States()))
		state := nextState(t, b.States())
		success, ok := state.(AuthSuccess)
		require.True(t, ok, "got %T", state)
		require.Equal(t, session, success.Session)
		require.Equal(t, "Alice", signUp.got.Name)
	})

	t.Run("duplicate email surfaces as a failure message", func(t *testing.T) {
		signUp := &fakeSessionUseCase[usecases.SignUpParams]{err: common.NewFailure(common.ErrEmailAlreadyInUse.Error())}
		b := startAuthBloc(t, authFakes{signUp: signUp})

		require.NoError(t, b.Dispatch(ctx, AuthSignUp{Email: "a@b.c"}))

		require.IsType(t, AuthLoading{}, nextState(t, b.States()))
		state := nextState(t, b.States())
		failure, ok := state.(AuthFailure)
		require.True(t, ok, "got %T", state)
		require.Equal(t, common.ErrEmailAlreadyInUse.Error(), failure.Message)
	})
}

func TestAuthBlocSignIn(t *testing.T) {
	ctx := context.Background()
	session := &models.Session{Token: "tok", User: models.User{ID: "u1"}}

	signIn := &fakeSessionUseCase[usecases.SignInParams]{session: session}
	b := startAuthBloc(t, authFakes{signIn: signIn})

	require.NoError(t, b.Dispatch(ctx, AuthSignIn{Email: "a@b.c", Password: []byte("pw")}))

	require.IsType(t, AuthLoading{}, nextState(t, b.States()))
	state := nextState(t, b.States())
	success, ok := state.(AuthSuccess)
	require.True(t, ok, "got %T", state)
	require.Equal(t, session, success.Session)
	require.Equal(t, "a@b.c", signIn.got.Email)
}

func TestAuthBlocCheckSession(t *testing.T) {
	ctx := context.Background()

	t.Run("cached session is a success", func(t *testing.T) {
		session := &models.Session{Token: "tok"}
		current := &fakeSessionUseCase[usecases.NoParams]{session: session}
		b := startAuthBloc(t, authFakes{current: current})

		require.NoError(t, b.Dispatch(ctx, AuthCheckSession{}))

		require.IsType(t, AuthLoading{}, nextState(t, b.States()))
		state := nextState(t, b.States())
		success, ok := state.(AuthSuccess)
		require.True(t, ok, "got %T", state)
		require.Equal(t, session, success.Session)
	})

	t.Run("missing session is a failure", func(t *testing.T) {
		current := &fakeSessionUseCase[usecases.NoParams]{err: common.NewFailure(common.ErrSessionNotFound.Error())}
		b := startAuthBloc(t, authFakes{current: current})

		require.NoError(t, b.Dispatch(ctx, AuthCheckSession{}))

		require.IsType(t, AuthLoading{}, nextState(t, b.States()))
		require.IsType(t, AuthFailure{}, nextState(t, b.States()))
	})
}

func TestAuthBlocSignOut(t *testing.T) {
	ctx := context.Background()

	signOut := &fakeSignOutUseCase{}
	b := startAuthBloc(t, authFakes{signOut: signOut})

	require.NoError(t, b.Dispatch(ctx, AuthSignOut{}))

	require.IsType(t, AuthLoading{}, nextState(t, b.States()))
	require.IsType(t, AuthSignedOut{}, nextState(t, b.States()))
	require.Equal(t, 1, signOut.calls)
}
