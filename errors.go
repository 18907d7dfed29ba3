package momentoredis

import (
	"errors"
	"fmt"
)

// Kind sentinels for remote failures. ErrAuthentication matches
// ErrConnection under errors.Is, mirroring the redis exception hierarchy
// where an authentication failure is a kind of connection error. All kinds
// match ErrRemote.
var (
	ErrRemote         = errors.New("momentoredis: remote cache error")
	ErrTimeout        = fmt.Errorf("momentoredis: remote timeout: %w", ErrRemote)
	ErrConnection     = fmt.Errorf("momentoredis: connection error: %w", ErrRemote)
	ErrAuthentication = fmt.Errorf("momentoredis: authentication failed: %w", ErrConnection)
)

// NotImplementedError reports a command or option combination that has no
// remote equivalent. It always carries the command name and is never
// retried or degraded into a no-op.
type NotImplementedError struct {
	Command string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("momentoredis: %s is not implemented; the backing cache has no equivalent", e.Command)
}

// UnknownResponseError signals a remote outcome variant the command layer
// does not recognize. It is a defect, not an operational condition.
type UnknownResponseError struct {
	Op       string
	Response any
}

func (e *UnknownResponseError) Error() string {
	return fmt.Sprintf("momentoredis: unknown response variant %T for %s", e.Response, e.Op)
}

// RemoteError is a remote failure mapped into the caller-facing taxonomy.
// errors.Is matches the Kind chain (ErrTimeout, ErrAuthentication,
// ErrConnection, ErrRemote); Unwrap reaches the underlying cause.
type RemoteError struct {
	Kind  error
	Cause error
}

func (e *RemoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %v", e.Kind, e.Cause)
	}
	return e.Kind.Error()
}

func (e *RemoteError) Is(target error) bool { return errors.Is(e.Kind, target) }

func (e *RemoteError) Unwrap() error { return e.Cause }
