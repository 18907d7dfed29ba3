package momentoredis

import (
	"errors"

	"github.com/unkn0wn-root/momentoredis/remote"
)

// translateErr maps a remote failure onto the caller-facing error taxonomy.
// The mapping is by underlying cause, not by operation, and is shared by
// every command: timeout -> ErrTimeout, authentication -> ErrAuthentication
// (a connection error), unavailable -> ErrConnection, anything else ->
// ErrRemote. Nothing is retried here.
func translateErr(err error) error {
	var rerr *remote.Error
	if !errors.As(err, &rerr) {
		return &RemoteError{Kind: ErrRemote, Cause: err}
	}
	switch rerr.Code {
	case remote.CodeTimeout:
		return &RemoteError{Kind: ErrTimeout, Cause: err}
	case remote.CodeAuthentication:
		return &RemoteError{Kind: ErrAuthentication, Cause: err}
	case remote.CodeUnavailable:
		return &RemoteError{Kind: ErrConnection, Cause: err}
	default:
		return &RemoteError{Kind: ErrRemote, Cause: err}
	}
}

// unknownResponse is the default branch of every outcome type switch.
func unknownResponse(op string, rsp any) error {
	return &UnknownResponseError{Op: op, Response: rsp}
}
