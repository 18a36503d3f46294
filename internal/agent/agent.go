package agent

import "context"

// Invoker sends a prompt to the reasoning service under a session id and
// returns the concatenated streamed completion text.
type Invoker interface {
	Invoke(ctx context.Context, sessionID, inputText string) (string, error)
}

// Unavailable returns an Invoker that fails every call with the given
// configuration error. It lets the service boot with incomplete configuration
// and surface the problem at first use.
func Unavailable(err error) Invoker {
	return unavailable{err: err}
}

type unavailable struct {
	err error
}

func (u unavailable) Invoke(ctx context.Context, sessionID, inputText string) (string, error) {
	return "", u.err
}
