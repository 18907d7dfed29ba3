package momentoredis

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the client calls them synchronously on
// command paths.
type Hooks interface {
	// A caller invoked a command or option with no remote equivalent.
	UnsupportedCommand(command string)

	// A remote call failed; kind is one of the Err* sentinels.
	RemoteError(op string, kind error)

	// A remote outcome matched no known variant (programming defect).
	UnknownResponse(op string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) UnsupportedCommand(string) {}
func (NopHooks) RemoteError(string, error) {}
func (NopHooks) UnknownResponse(string)    {}
