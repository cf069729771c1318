package coupon

import (
	"context"
	"errors"
	"net/url"

	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
)

var ErrInvalidCode = errors.New("coupon: code is not valid")

type iPlatform interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Put(ctx context.Context, path string, body, out interface{}) error
	Delete(ctx context.Context, path string, out interface{}) error
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
		Data []*Coupon     `json:"data"`
		Meta platform.Meta `json:"meta"`
	} `json:"data"`
	Message string `json:"message"`
}

type itemEnvelope struct {
	Data    *Coupon `json:"data"`
	Message string  `json:"message"`
}

func (s *service) List(ctx context.Context, q platform.ListQuery) ([]*Coupon, *platform.Meta, error) {
	out := new(listEnvelope)
	if err := s.api.Get(ctx, "/api/coupons", q.Values(), out); err != nil {
		logger.Log(ctx).Errorf("coupon: can't get coupons list, %v", err)
		return nil, nil, err
	}
	return out.Data.Data, &out.Data.Meta, nil
}

// Create forwards the coupon upstream. An empty code gets generated, a
// caller-supplied one must pass the check digit first.
func (s *service) Create(ctx context.Context, c *Coupon) (*Coupon, error) {
	if c.Code == `` {
		c.Code = GenerateCode()
	} else if !ValidCode(c.Code) {
		return nil, ErrInvalidCode
	}

	out := new(itemEnvelope)
	if err := s.api.Post(ctx, "/api/coupons", c, out); err != nil {
		logger.Log(ctx).Errorf("coupon: can't create coupon, %v", err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Update(ctx context.Context, id string, c *Coupon) (*Coupon, error) {
	if c.Code != `` && !ValidCode(c.Code) {
		return nil, ErrInvalidCode
	}

	out := new(itemEnvelope)
	if err := s.api.Put(ctx, "/api/coupons/"+id, c, out); err != nil {
		logger.Log(ctx).Errorf("coupon: can't update coupon `%s`, %v", id, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/api/coupons/"+id, nil); err != nil {
		logger.Log(ctx).Errorf("coupon: can't delete coupon `%s`, %v", id, err)
		return err
	}
	return nil
}
