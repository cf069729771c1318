package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
	"github.com/atmin009/tutor-admin/pkg/user"
)

type iService interface {
	List(ctx context.Context, q platform.ListQuery) ([]*user.Student, *platform.Meta, error)
	Get(ctx context.Context, id string) (*user.Student, error)
	UpdateStatus(ctx context.Context, id, status string) (*user.Student, error)
	Delete(ctx context.Context, id string) error
}

type UserHandler struct {
	service iService
}

func NewUserHandler(s iService) *UserHandler {
	return &UserHandler{
		service: s,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := platform.ListQueryFromRequest(r)
	students, meta, err := h.service.List(r.Context(), q)
	if err != nil {
		platform.WriteError(w, err, "can't get students")
		return
	}
	common.WriteData(w, struct {
		Data []*user.Student `json:"data"`
		Meta *platform.Meta  `json:"meta"`
	}{students, meta}, ``)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	student, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		platform.WriteError(w, err, "can't get student")
		return
	}
	common.WriteData(w, student, ``)
}

func (h *UserHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	body := &struct {
		Status string `json:"status"`
	}{}
	if err := common.ParseReqBody(r.Body, body); err != nil {
		logger.Log(r.Context()).Errorf("user/handlers: can't parse request body: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}
	if body.Status != user.StatusActive && body.Status != user.StatusBanned {
		common.WriteMsg(w, "unknown student status", http.StatusUnprocessableEntity)
		return
	}

	student, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], body.Status)
	if err != nil {
		platform.WriteError(w, err, "can't update student status")
		return
	}
	common.WriteData(w, student, "student status updated")
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		platform.WriteError(w, err, "can't delete student")
		return
	}
	common.WriteMsg(w, "student deleted", http.StatusOK)
}
