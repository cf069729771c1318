package stats

import (
	"context"
	"net/url"
	"sync"

	"github.com/atmin009/tutor-admin/pkg/logger"
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

type summaryEnvelope struct {
	Data    *Summary `json:"data"`
	Message string   `json:"message"`
}

type revenueEnvelope struct {
	Data    []*RevenuePoint `json:"data"`
	Message string          `json:"message"`
}

type topCoursesEnvelope struct {
	Data    []*CourseSales `json:"data"`
	Message string         `json:"message"`
}

// Overview fetches the three dashboard blocks concurrently; each fills its
// own part of the result, so completion order doesn't matter.
func (s *service) Overview(ctx context.Context, period string) (*Overview, error) {
	ov := new(Overview)
	errs := make([]error, 3)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		ov.Summary, errs[0] = s.summary(ctx, period)
	}()
	go func() {
		defer wg.Done()
		ov.Revenue, errs[1] = s.Revenue(ctx, period)
	}()
	go func() {
		defer wg.Done()
		ov.TopCourses, errs[2] = s.topCourses(ctx, period)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return ov, nil
}

func (s *service) summary(ctx context.Context, period string) (*Summary, error) {
	out := new(summaryEnvelope)
	if err := s.api.Get(ctx, "/api/stats/summary", periodQuery(period), out); err != nil {
		logger.Log(ctx).Errorf("stats: can't get summary, %v", err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Revenue(ctx context.Context, period string) ([]*RevenuePoint, error) {
	out := new(revenueEnvelope)
	if err := s.api.Get(ctx, "/api/stats/revenue", periodQuery(period), out); err != nil {
		logger.Log(ctx).Errorf("stats: can't get revenue series, %v", err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) topCourses(ctx context.Context, period string) ([]*CourseSales, error) {
	out := new(topCoursesEnvelope)
	if err := s.api.Get(ctx, "/api/stats/top-courses", periodQuery(period), out); err != nil {
		logger.Log(ctx).Errorf("stats: can't get top courses, %v", err)
		return nil, err
	}
	return out.Data, nil
}

func periodQuery(period string) url.Values {
	if period == `` {
		return nil
	}
	v := url.Values{}
	v.Set("period", period)
	return v
}
