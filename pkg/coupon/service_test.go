package coupon

import (
	"context"
	"net/url"
	"testing"

	"github.com/atmin009/tutor-admin/pkg/platform"
)

type fakePlatform struct {
	posted *Coupon
}

func (f *fakePlatform) Get(_ context.Context, path string, _ url.Values, out interface{}) error {
	env := out.(*listEnvelope)
	env.Data.Data = []*Coupon{{ID: "cp-1", Code: GenerateCode()}}
	env.Data.Meta = platform.Meta{Page: 1, Limit: 10, TotalItems: 1, TotalPages: 1}
	return nil
}

func (f *fakePlatform) Post(_ context.Context, _ string, body, out interface{}) error {
	f.posted = body.(*Coupon)
	out.(*itemEnvelope).Data = f.posted
	return nil
}

func (f *fakePlatform) Put(_ context.Context, _ string, body, out interface{}) error {
	f.posted = body.(*Coupon)
	out.(*itemEnvelope).Data = f.posted
	return nil
}

func (f *fakePlatform) Delete(_ context.Context, _ string, _ interface{}) error {
	return nil
}

func TestCreateGeneratesMissingCode(t *testing.T) {
	api := new(fakePlatform)
	s := NewService(api)

	created, err := s.Create(context.Background(), &Coupon{Type: TypePercent, Value: 20})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Code == `` {
		t.Fatal("create must fill in a code")
	}
	if !ValidCode(created.Code) {
		t.Errorf("generated code %q is not valid", created.Code)
	}
}

func TestCreateRejectsBadCodeBeforeUpstream(t *testing.T) {
	api := new(fakePlatform)
	s := NewService(api)

	_, err := s.Create(context.Background(), &Coupon{Code: "123456789012"})
	if err != ErrInvalidCode {
		t.Fatalf("err = %v, want ErrInvalidCode", err)
	}
	if api.posted != nil {
		t.Error("an invalid code must never be sent upstream")
	}
}

func TestUpdateKeepsValidCode(t *testing.T) {
	api := new(fakePlatform)
	s := NewService(api)

	code := GenerateCode()
	updated, err := s.Update(context.Background(), "cp-1", &Coupon{Code: code, Value: 5})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Code != code {
		t.Errorf("code = %q, want %q", updated.Code, code)
	}
}

func TestListUnwrapsEnvelope(t *testing.T) {
	s := NewService(new(fakePlatform))

	coupons, meta, err := s.List(context.Background(), platform.ListQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(coupons) != 1 || coupons[0].ID != "cp-1" {
		t.Errorf("coupons = %+v", coupons)
	}
	if meta.TotalItems != 1 {
		t.Errorf("meta = %+v, want totalItems 1", meta)
	}
}
