package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const requestTimeout = 15 * time.Second

// TokenSource yields the bearer token for an outgoing request, or an empty
// string when the call must go out unauthenticated (login, register).
type TokenSource interface {
	Token(ctx context.Context) string
}

// AuthFailureObserver is notified once per unauthorized platform response,
// before the error is returned to the caller.
type AuthFailureObserver interface {
	AuthFailure(ctx context.Context)
}

// Client is the single configured HTTP client for the course platform API.
// Every request gets the session's bearer token attached, every response is
// checked for session invalidation.
type Client struct {
	http *resty.Client
}

func NewClient(addr string, src TokenSource, obs AuthFailureObserver) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("platform: can't create cookie jar, %w", err)
	}

	c := resty.New().
		SetBaseURL(addr).
		SetCookieJar(jar).
		SetTimeout(requestTimeout)

	c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if token := src.Token(req.Context()); token != `` {
			req.SetAuthToken(token)
		}
		return nil
	})

	c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized {
			obs.AuthFailure(resp.Request.Context())
		}
		if resp.IsError() {
			return errorFromResponse(resp)
		}
		return nil
	})

	return &Client{http: c}, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Get(path)
	return err
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Post(path)
	return err
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Put(path)
	return err
}

func (c *Client) Delete(ctx context.Context, path string, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if out != nil {
		req.SetResult(out)
	}
	_, err := req.Delete(path)
	return err
}
