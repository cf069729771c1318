package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/atmin009/tutor-admin/pkg/common"
)

// Error carries a non-2xx platform response: the upstream status code and
// its structured message when the payload had one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("platform: %s (status %d)", e.Message, e.Status)
}

func errorFromResponse(resp *resty.Response) error {
	e := &Error{
		Status:  resp.StatusCode(),
		Message: "platform request failed",
	}
	payload := struct {
		Message string `json:"message"`
	}{}
	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Message != `` {
		e.Message = payload.Message
	}
	return e
}

func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsUnauthorized(err error) bool {
	e, ok := AsError(err)
	return ok && e.Status == http.StatusUnauthorized
}

// WriteError maps a failed platform call onto the dashboard response:
// upstream status and message pass through unchanged, transport failures
// become a bad gateway with the fallback message.
func WriteError(w http.ResponseWriter, err error, fallback string) {
	if e, ok := AsError(err); ok {
		common.WriteMsg(w, e.Message, e.Status)
		return
	}
	common.WriteMsg(w, fallback, http.StatusBadGateway)
}
