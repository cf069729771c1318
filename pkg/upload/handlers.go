package upload

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/logger"
)

type iStore interface {
	Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error)
	URL(key string) string
}

type Handler struct {
	store iStore
}

func NewHandler(s iStore) *Handler {
	return &Handler{
		store: s,
	}
}

// Upload takes a multipart file and responds with the stored asset's URL;
// saving that URL on a course is a separate call, made by the dashboard.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		logger.Log(r.Context()).Errorf("upload/handlers: can't parse multipart form: %v", err)
		common.WriteMsg(w, "bad request format", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		logger.Log(r.Context()).Errorf("upload/handlers: no file in request: %v", err)
		common.WriteMsg(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	key, err := h.store.Save(r.Context(), header.Filename, contentType, header.Size, file)
	if errors.Is(err, ErrTooLarge) {
		common.WriteMsg(w, "file is too large", http.StatusRequestEntityTooLarge)
		return
	}
	if err != nil {
		logger.Log(r.Context()).Errorf("upload/handlers: can't store file: %v", err)
		common.WriteMsg(w, "can't store file", http.StatusInternalServerError)
		return
	}

	common.WriteData(w, struct {
		URL string `json:"url"`
		Key string `json:"key"`
	}{h.store.URL(key), key}, "file uploaded")
}
