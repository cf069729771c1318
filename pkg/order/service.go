package order

import (
	"context"
	"net/url"

	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
)

type iPlatform interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
}

type service struct {
	api iPlatform
}

func NewService(api iPlatform) *service {
	return &service{
		api: api,
	}
}

type listEnvelope struct {
	Data struct {
		Data []*Order      `json:"data"`
		Meta platform.Meta `json:"meta"`
	} `json:"data"`
	Message string `json:"message"`
}

type itemEnvelope struct {
	Data    *Order `json:"data"`
	Message string `json:"message"`
}

func (s *service) List(ctx context.Context, q platform.ListQuery) ([]*Order, *platform.Meta, error) {
	out := new(listEnvelope)
	if err := s.api.Get(ctx, "/api/orders", q.Values(), out); err != nil {
		logger.Log(ctx).Errorf("order: can't get orders list, %v", err)
		return nil, nil, err
	}
	return out.Data.Data, &out.Data.Meta, nil
}

func (s *service) Get(ctx context.Context, id string) (*Order, error) {
	out := new(itemEnvelope)
	if err := s.api.Get(ctx, "/api/orders/"+id, nil, out); err != nil {
		logger.Log(ctx).Errorf("order: can't get order `%s`, %v", id, err)
		return nil, err
	}
	return out.Data, nil
}
