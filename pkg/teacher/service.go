package teacher

import (
	"context"
	"net/url"

	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
)

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
		Data []*Teacher    `json:"data"`
		Meta platform.Meta `json:"meta"`
	} `json:"data"`
	Message string `json:"message"`
}

type itemEnvelope struct {
	Data    *Teacher `json:"data"`
	Message string   `json:"message"`
}

func (s *service) List(ctx context.Context, q platform.ListQuery) ([]*Teacher, *platform.Meta, error) {
	out := new(listEnvelope)
	if err := s.api.Get(ctx, "/api/teachers", q.Values(), out); err != nil {
		logger.Log(ctx).Errorf("teacher: can't get teachers list, %v", err)
		return nil, nil, err
	}
	return out.Data.Data, &out.Data.Meta, nil
}

func (s *service) Get(ctx context.Context, id string) (*Teacher, error) {
	out := new(itemEnvelope)
	if err := s.api.Get(ctx, "/api/teachers/"+id, nil, out); err != nil {
		logger.Log(ctx).Errorf("teacher: can't get teacher `%s`, %v", id, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Create(ctx context.Context, t *Teacher) (*Teacher, error) {
	out := new(itemEnvelope)
	if err := s.api.Post(ctx, "/api/teachers", t, out); err != nil {
		logger.Log(ctx).Errorf("teacher: can't create teacher, %v", err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Update(ctx context.Context, id string, t *Teacher) (*Teacher, error) {
	out := new(itemEnvelope)
	if err := s.api.Put(ctx, "/api/teachers/"+id, t, out); err != nil {
		logger.Log(ctx).Errorf("teacher: can't update teacher `%s`, %v", id, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/api/teachers/"+id, nil); err != nil {
		logger.Log(ctx).Errorf("teacher: can't delete teacher `%s`, %v", id, err)
		return err
	}
	return nil
}
