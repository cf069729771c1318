package user

import (
	"context"
	"net/url"

	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
)

type iPlatform interface {
	Get(ctx context.Context, path string, query url.Values, out interface{}) error
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
		Data []*Student    `json:"data"`
		Meta platform.Meta `json:"meta"`
	} `json:"data"`
	Message string `json:"message"`
}

type itemEnvelope struct {
	Data    *Student `json:"data"`
	Message string   `json:"message"`
}

func (s *service) List(ctx context.Context, q platform.ListQuery) ([]*Student, *platform.Meta, error) {
	out := new(listEnvelope)
	if err := s.api.Get(ctx, "/api/users", q.Values(), out); err != nil {
		logger.Log(ctx).Errorf("user: can't get students list, %v", err)
		return nil, nil, err
	}
	return out.Data.Data, &out.Data.Meta, nil
}

func (s *service) Get(ctx context.Context, id string) (*Student, error) {
	out := new(itemEnvelope)
	if err := s.api.Get(ctx, "/api/users/"+id, nil, out); err != nil {
		logger.Log(ctx).Errorf("user: can't get student `%s`, %v", id, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (*Student, error) {
	body := struct {
		Status string `json:"status"`
	}{status}
	out := new(itemEnvelope)
	if err := s.api.Put(ctx, "/api/users/"+id+"/status", body, out); err != nil {
		logger.Log(ctx).Errorf("user: can't update student `%s` status, %v", id, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/api/users/"+id, nil); err != nil {
		logger.Log(ctx).Errorf("user: can't delete student `%s`, %v", id, err)
		return err
	}
	return nil
}
