package app

import (
	"fmt"
	"regexp"

	"github.com/mart-network/mart"
	"github.com/mart-network/mart/errors"
)

// isPath matches the routing paths the messages declare
var isPath = regexp.MustCompile(`^[a-z_]{3,10}/[a-z_]{3,20}$`).MatchString

// Router dispatches transactions to the handler registered for the
// message path.
type Router struct {
	routes map[string]mart.Handler
}

var _ mart.Registry = (*Router)(nil)
var _ mart.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]mart.Handler),
	}
}

// Handle registers the handler for the path of the given message.
// Panics on a malformed path or a duplicate registration.
func (r *Router) Handle(m mart.Msg, h mart.Handler) {
	path := m.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("path %q already registered", path))
	}
	r.routes[path] = h
}

// Handler returns the handler registered for the path, nil if none
func (r *Router) Handler(path string) mart.Handler {
	return r.routes[path]
}

// Check dispatches to the handler registered for the message path
func (r *Router) Check(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, store, tx)
}

// Deliver dispatches to the handler registered for the message path
func (r *Router) Deliver(ctx mart.Context, store mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	h, err := r.route(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, store, tx)
}

func (r *Router) route(tx mart.Tx) (mart.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	h, ok := r.routes[msg.Path()]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", msg.Path())
	}
	return h, nil
}
