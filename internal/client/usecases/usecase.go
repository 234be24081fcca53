// Package usecases holds one type per user intent. Each use case is a thin,
// independently testable wrapper over a repository method, so the state
// containers above depend on intents rather than on repository surfaces.
package usecases

import "context"

// UseCase is a single application intent. P is the parameter type, R the
// success payload. Errors returned by Call are *common.Failure values
// produced by the repository layer.
type UseCase[P any, R any] interface {
	Call(ctx context.Context, params P) (R, error)
}

// NoParams marks use cases that take no input.
type NoParams struct{}
