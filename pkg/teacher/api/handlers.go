package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
	"github.com/atmin009/tutor-admin/pkg/teacher"
)

type iService interface {
	List(ctx context.Context, q platform.ListQuery) ([]*teacher.Teacher, *platform.Meta, error)
	Get(ctx context.Context, id string) (*teacher.Teacher, error)
	Create(ctx context.Context, t *teacher.Teacher) (*teacher.Teacher, error)
	Update(ctx context.Context, id string, t *teacher.Teacher) (*teacher.Teacher, error)
	Delete(ctx context.Context, id string) error
}

type TeacherHandler struct {
	service iService
}

func NewTeacherHandler(s iService) *TeacherHandler {
	return &TeacherHandler{
		service: s,
	}
}

func (h *TeacherHandler) List(w http.ResponseWriter, r *http.Request) {
	q := platform.ListQueryFromRequest(r)
	teachers, meta, err := h.service.List(r.Context(), q)
	if err != nil {
		platform.WriteError(w, err, "can't get teachers")
		return
	}
	common.WriteData(w, struct {
		Data []*teacher.Teacher `json:"data"`
		Meta *platform.Meta     `json:"meta"`
	}{teachers, meta}, ``)
}

func (h *TeacherHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		platform.WriteError(w, err, "can't get teacher")
		return
	}
	common.WriteData(w, t, ``)
}

func (h *TeacherHandler) Create(w http.ResponseWriter, r *http.Request) {
	t := new(teacher.Teacher)
	if err := common.ParseReqBody(r.Body, t); err != nil {
		logger.Log(r.Context()).Errorf("teacher/handlers: can't parse request body as teacher: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), t)
	if err != nil {
		platform.WriteError(w, err, "can't create teacher")
		return
	}
	common.WriteData(w, created, "teacher created")
}

func (h *TeacherHandler) Update(w http.ResponseWriter, r *http.Request) {
	t := new(teacher.Teacher)
	if err := common.ParseReqBody(r.Body, t); err != nil {
		logger.Log(r.Context()).Errorf("teacher/handlers: can't parse request body as teacher: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), mux.Vars(r)["id"], t)
	if err != nil {
		platform.WriteError(w, err, "can't update teacher")
		return
	}
	common.WriteData(w, updated, "teacher updated")
}

func (h *TeacherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		platform.WriteError(w, err, "can't delete teacher")
		return
	}
	common.WriteMsg(w, "teacher deleted", http.StatusOK)
}
