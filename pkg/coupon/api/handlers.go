package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/coupon"
	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
)

type iService interface {
	List(ctx context.Context, q platform.ListQuery) ([]*coupon.Coupon, *platform.Meta, error)
	Create(ctx context.Context, c *coupon.Coupon) (*coupon.Coupon, error)
	Update(ctx context.Context, id string, c *coupon.Coupon) (*coupon.Coupon, error)
	Delete(ctx context.Context, id string) error
}

type CouponHandler struct {
	service iService
}

func NewCouponHandler(s iService) *CouponHandler {
	return &CouponHandler{
		service: s,
	}
}

func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	q := platform.ListQueryFromRequest(r)
	coupons, meta, err := h.service.List(r.Context(), q)
	if err != nil {
		platform.WriteError(w, err, "can't get coupons")
		return
	}
	common.WriteData(w, struct {
		Data []*coupon.Coupon `json:"data"`
		Meta *platform.Meta   `json:"meta"`
	}{coupons, meta}, ``)
}

func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	c := new(coupon.Coupon)
	if err := common.ParseReqBody(r.Body, c); err != nil {
		logger.Log(r.Context()).Errorf("coupon/handlers: can't parse request body as coupon: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), c)
	if errors.Is(err, coupon.ErrInvalidCode) {
		common.WriteMsg(w, "coupon code is not valid", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		platform.WriteError(w, err, "can't create coupon")
		return
	}
	common.WriteData(w, created, "coupon created")
}

func (h *CouponHandler) Update(w http.ResponseWriter, r *http.Request) {
	c := new(coupon.Coupon)
	if err := common.ParseReqBody(r.Body, c); err != nil {
		logger.Log(r.Context()).Errorf("coupon/handlers: can't parse request body as coupon: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), mux.Vars(r)["id"], c)
	if errors.Is(err, coupon.ErrInvalidCode) {
		common.WriteMsg(w, "coupon code is not valid", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		platform.WriteError(w, err, "can't update coupon")
		return
	}
	common.WriteData(w, updated, "coupon updated")
}

func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		platform.WriteError(w, err, "can't delete coupon")
		return
	}
	common.WriteMsg(w, "coupon deleted", http.StatusOK)
}

// GenerateCode hands the dashboard a ready-to-use code for the coupon form.
func (h *CouponHandler) GenerateCode(w http.ResponseWriter, r *http.Request) {
	common.WriteData(w, struct {
		Code string `json:"code"`
	}{coupon.GenerateCode()}, ``)
}
