package course

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
		Data []*Course     `json:"data"`
		Meta platform.Meta `json:"meta"`
	} `json:"data"`
	Message string `json:"message"`
}

type itemEnvelope struct {
	Data    *Course `json:"data"`
	Message string  `json:"message"`
}

type sectionsEnvelope struct {
	Data    []*Section `json:"data"`
	Message string     `json:"message"`
}

type sectionEnvelope struct {
	Data    *Section `json:"data"`
	Message string   `json:"message"`
}

type lessonEnvelope struct {
	Data    *Lesson `json:"data"`
	Message string  `json:"message"`
}

func (s *service) List(ctx context.Context, q platform.ListQuery) ([]*Course, *platform.Meta, error) {
	out := new(listEnvelope)
	if err := s.api.Get(ctx, "/api/courses", q.Values(), out); err != nil {
		logger.Log(ctx).Errorf("course: can't get courses list, %v", err)
		return nil, nil, err
	}
	return out.Data.Data, &out.Data.Meta, nil
}

func (s *service) Get(ctx context.Context, id string) (*Course, error) {
	out := new(itemEnvelope)
	if err := s.api.Get(ctx, "/api/courses/"+id, nil, out); err != nil {
		logger.Log(ctx).Errorf("course: can't get course `%s`, %v", id, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Create(ctx context.Context, c *Course) (*Course, error) {
	out := new(itemEnvelope)
	if err := s.api.Post(ctx, "/api/courses", c, out); err != nil {
		logger.Log(ctx).Errorf("course: can't create course, %v", err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Update(ctx context.Context, id string, c *Course) (*Course, error) {
	out := new(itemEnvelope)
	if err := s.api.Put(ctx, "/api/courses/"+id, c, out); err != nil {
		logger.Log(ctx).Errorf("course: can't update course `%s`, %v", id, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/api/courses/"+id, nil); err != nil {
		logger.Log(ctx).Errorf("course: can't delete course `%s`, %v", id, err)
		return err
	}
	return nil
}

// Curriculum operations. Sections belong to a course, lessons to a section;
// the platform keeps ordering via the position field.

func (s *service) Sections(ctx context.Context, courseID string) ([]*Section, error) {
	out := new(sectionsEnvelope)
	if err := s.api.Get(ctx, "/api/courses/"+courseID+"/sections", nil, out); err != nil {
		logger.Log(ctx).Errorf("course: can't get sections of course `%s`, %v", courseID, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) CreateSection(ctx context.Context, courseID string, sec *Section) (*Section, error) {
	out := new(sectionEnvelope)
	if err := s.api.Post(ctx, "/api/courses/"+courseID+"/sections", sec, out); err != nil {
		logger.Log(ctx).Errorf("course: can't create section in course `%s`, %v", courseID, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) UpdateSection(ctx context.Context, sectionID string, sec *Section) (*Section, error) {
	out := new(sectionEnvelope)
	if err := s.api.Put(ctx, "/api/sections/"+sectionID, sec, out); err != nil {
		logger.Log(ctx).Errorf("course: can't update section `%s`, %v", sectionID, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) DeleteSection(ctx context.Context, sectionID string) error {
	if err := s.api.Delete(ctx, "/api/sections/"+sectionID, nil); err != nil {
		logger.Log(ctx).Errorf("course: can't delete section `%s`, %v", sectionID, err)
		return err
	}
	return nil
}

func (s *service) CreateLesson(ctx context.Context, sectionID string, l *Lesson) (*Lesson, error) {
	out := new(lessonEnvelope)
	if err := s.api.Post(ctx, "/api/sections/"+sectionID+"/lessons", l, out); err != nil {
		logger.Log(ctx).Errorf("course: can't create lesson in section `%s`, %v", sectionID, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) UpdateLesson(ctx context.Context, lessonID string, l *Lesson) (*Lesson, error) {
	out := new(lessonEnvelope)
	if err := s.api.Put(ctx, "/api/lessons/"+lessonID, l, out); err != nil {
		logger.Log(ctx).Errorf("course: can't update lesson `%s`, %v", lessonID, err)
		return nil, err
	}
	return out.Data, nil
}

func (s *service) DeleteLesson(ctx context.Context, lessonID string) error {
	if err := s.api.Delete(ctx, "/api/lessons/"+lessonID, nil); err != nil {
		logger.Log(ctx).Errorf("course: can't delete lesson `%s`, %v", lessonID, err)
		return err
	}
	return nil
}
