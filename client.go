package momentoredis

import (
	"context"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/momentoredis/remote"
)

// Client presents the go-redis calling convention on top of a remote.Cache.
// It is immutable after construction and safe for concurrent use; every
// command is a stateless request/outcome round trip and owns its own
// ephemeral state.
type Client struct {
	remote remote.Cache
	log    Logger
	hooks  Hooks
}

var _ Cmdable = (*Client)(nil)

func newClient(opts Options) (*Client, error) {
	if opts.Remote == nil {
		return nil, fmt.Errorf("momentoredis: remote cache is required")
	}

	c := &Client{remote: opts.Remote}

	// defaults
	if opts.Logger != nil {
		c.log = opts.Logger
	} else {
		c.log = NopLogger{}
	}
	if opts.Hooks != nil {
		c.hooks = opts.Hooks
	} else {
		c.hooks = NopHooks{}
	}

	if opts.EnsureCache {
		rsp, err := c.remote.CreateCache(context.Background())
		if err != nil {
			return nil, c.remoteErr("create_cache", err)
		}
		switch rsp.(type) {
		case remote.CacheCreated:
			c.log.Info("created backing cache", nil)
		case remote.CacheExists:
			c.log.Debug("backing cache already exists", nil)
		default:
			return nil, c.badResponse("create_cache", rsp)
		}
	}

	return c, nil
}

// Close releases the remote handle. The underlying client is closed only if
// the remote handle owns it.
func (c *Client) Close(ctx context.Context) error {
	return c.remote.Close(ctx)
}

// remoteErr maps a remote failure into the caller-facing taxonomy and
// notifies hooks with the mapped kind.
func (c *Client) remoteErr(op string, err error) error {
	mapped := translateErr(err)
	var rerr *RemoteError
	if errors.As(mapped, &rerr) {
		c.hooks.RemoteError(op, rerr.Kind)
	}
	return mapped
}

// badResponse is the default branch of every outcome switch: an
// unrecognized variant is fatal, surfaced, and never swallowed.
func (c *Client) badResponse(op string, rsp any) error {
	c.hooks.UnknownResponse(op)
	c.log.Error("unknown response variant", Fields{"op": op, "type": fmt.Sprintf("%T", rsp)})
	return unknownResponse(op, rsp)
}

func (c *Client) notImplemented(command string) error {
	c.hooks.UnsupportedCommand(command)
	return &NotImplementedError{Command: command}
}
