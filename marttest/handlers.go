package marttest

import "github.com/mart-network/mart"

// Handler is a mock implementation of the mart.Handler interface,
// returning configured results and counting the calls.
type Handler struct {
	checkCall   int
	CheckResult mart.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult mart.DeliverResult
	DeliverErr    error
}

var _ mart.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx mart.Context, db mart.KVStore, tx mart.Tx) (*mart.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
