package remote

// Error is the one error kind raised by remote data sources. The specific
// cause (network, auth, quota) is flattened to its string message.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// NewError builds a remote Error carrying msg. Exposed for tests.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func flatten(err error) error {
	if err == nil {
		return nil
	}
	return &Error{msg: err.Error()}
}
