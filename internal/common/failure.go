package common

// DefaultFailureMessage is used when a flattened error carries no text of its
// own, so the presentation layer never surfaces an empty notification.
const DefaultFailureMessage = "an unexpected error occurred"

// Failure is the only error value that crosses a repository boundary.
// It carries a human-readable message and deliberately nothing else:
// layers above the repository never inspect a failure's origin.
type Failure struct {
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// NewFailure wraps a message into a Failure, substituting
// DefaultFailureMessage when the message is empty.
func NewFailure(msg string) *Failure {
	if msg == "" {
		msg = DefaultFailureMessage
	}
	return &Failure{Message: msg}
}

// FailureFrom flattens any error into a Failure.
func FailureFrom(err error) *Failure {
	if err == nil {
		return nil
	}
	return NewFailure(err.Error())
}
