package platform

import (
	"net/http"
	"net/url"
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ListQuery is the common query shape of every platform list endpoint.
type ListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// ListQueryFromRequest reads pagination and filter params from a dashboard
// request, applying the defaults the platform expects.
func ListQueryFromRequest(r *http.Request) ListQuery {
	q := ListQuery{
		Page:   defaultPage,
		Limit:  defaultLimit,
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}
	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		q.Limit = limit
	}
	return q
}

func (q ListQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != `` {
		v.Set("search", q.Search)
	}
	if q.Status != `` {
		v.Set("status", q.Status)
	}
	return v
}

// Meta is the pagination block of platform list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
