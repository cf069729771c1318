package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/order"
	"github.com/atmin009/tutor-admin/pkg/platform"
)

type iService interface {
	List(ctx context.Context, q platform.ListQuery) ([]*order.Order, *platform.Meta, error)
	Get(ctx context.Context, id string) (*order.Order, error)
}

type OrderHandler struct {
	service iService
}

func NewOrderHandler(s iService) *OrderHandler {
	return &OrderHandler{
		service: s,
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := platform.ListQueryFromRequest(r)
	orders, meta, err := h.service.List(r.Context(), q)
	if err != nil {
		platform.WriteError(w, err, "can't get orders")
		return
	}
	common.WriteData(w, struct {
		Data []*order.Order `json:"data"`
		Meta *platform.Meta `json:"meta"`
	}{orders, meta}, ``)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		platform.WriteError(w, err, "can't get order")
		return
	}
	common.WriteData(w, o, ``)
}
