package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/course"
	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
)

type iService interface {
	List(ctx context.Context, q platform.ListQuery) ([]*course.Course, *platform.Meta, error)
	Get(ctx context.Context, id string) (*course.Course, error)
	Create(ctx context.Context, c *course.Course) (*course.Course, error)
	Update(ctx context.Context, id string, c *course.Course) (*course.Course, error)
	Delete(ctx context.Context, id string) error

	Sections(ctx context.Context, courseID string) ([]*course.Section, error)
	CreateSection(ctx context.Context, courseID string, sec *course.Section) (*course.Section, error)
	UpdateSection(ctx context.Context, sectionID string, sec *course.Section) (*course.Section, error)
	DeleteSection(ctx context.Context, sectionID string) error
	CreateLesson(ctx context.Context, sectionID string, l *course.Lesson) (*course.Lesson, error)
	UpdateLesson(ctx context.Context, lessonID string, l *course.Lesson) (*course.Lesson, error)
	DeleteLesson(ctx context.Context, lessonID string) error
}

type CourseHandler struct {
	service iService
}

func NewCourseHandler(s iService) *CourseHandler {
	return &CourseHandler{
		service: s,
	}
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := platform.ListQueryFromRequest(r)
	courses, meta, err := h.service.List(r.Context(), q)
	if err != nil {
		platform.WriteError(w, err, "can't get courses")
		return
	}
	common.WriteData(w, struct {
		Data []*course.Course `json:"data"`
		Meta *platform.Meta   `json:"meta"`
	}{courses, meta}, ``)
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		platform.WriteError(w, err, "can't get course")
		return
	}
	common.WriteData(w, c, ``)
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	c := new(course.Course)
	if err := common.ParseReqBody(r.Body, c); err != nil {
		logger.Log(r.Context()).Errorf("course/handlers: can't parse request body as course: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), c)
	if err != nil {
		platform.WriteError(w, err, "can't create course")
		return
	}
	common.WriteData(w, created, "course created")
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	c := new(course.Course)
	if err := common.ParseReqBody(r.Body, c); err != nil {
		logger.Log(r.Context()).Errorf("course/handlers: can't parse request body as course: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), mux.Vars(r)["id"], c)
	if err != nil {
		platform.WriteError(w, err, "can't update course")
		return
	}
	common.WriteData(w, updated, "course updated")
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		platform.WriteError(w, err, "can't delete course")
		return
	}
	common.WriteMsg(w, "course deleted", http.StatusOK)
}

func (h *CourseHandler) Sections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.service.Sections(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		platform.WriteError(w, err, "can't get course sections")
		return
	}
	common.WriteData(w, sections, ``)
}

func (h *CourseHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	sec := new(course.Section)
	if err := common.ParseReqBody(r.Body, sec); err != nil {
		logger.Log(r.Context()).Errorf("course/handlers: can't parse request body as section: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateSection(r.Context(), mux.Vars(r)["id"], sec)
	if err != nil {
		platform.WriteError(w, err, "can't create section")
		return
	}
	common.WriteData(w, created, "section created")
}

func (h *CourseHandler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	sec := new(course.Section)
	if err := common.ParseReqBody(r.Body, sec); err != nil {
		logger.Log(r.Context()).Errorf("course/handlers: can't parse request body as section: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateSection(r.Context(), mux.Vars(r)["sectionId"], sec)
	if err != nil {
		platform.WriteError(w, err, "can't update section")
		return
	}
	common.WriteData(w, updated, "section updated")
}

func (h *CourseHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSection(r.Context(), mux.Vars(r)["sectionId"]); err != nil {
		platform.WriteError(w, err, "can't delete section")
		return
	}
	common.WriteMsg(w, "section deleted", http.StatusOK)
}

func (h *CourseHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	l := new(course.Lesson)
	if err := common.ParseReqBody(r.Body, l); err != nil {
		logger.Log(r.Context()).Errorf("course/handlers: can't parse request body as lesson: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateLesson(r.Context(), mux.Vars(r)["sectionId"], l)
	if err != nil {
		platform.WriteError(w, err, "can't create lesson")
		return
	}
	common.WriteData(w, created, "lesson created")
}

func (h *CourseHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	l := new(course.Lesson)
	if err := common.ParseReqBody(r.Body, l); err != nil {
		logger.Log(r.Context()).Errorf("course/handlers: can't parse request body as lesson: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateLesson(r.Context(), mux.Vars(r)["lessonId"], l)
	if err != nil {
		platform.WriteError(w, err, "can't update lesson")
		return
	}
	common.WriteData(w, updated, "lesson updated")
}

func (h *CourseHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLesson(r.Context(), mux.Vars(r)["lessonId"]); err != nil {
		platform.WriteError(w, err, "can't delete lesson")
		return
	}
	common.WriteMsg(w, "lesson deleted", http.StatusOK)
}
