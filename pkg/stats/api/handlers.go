package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/atmin009/tutor-admin/pkg/common"
	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/platform"
	"github.com/atmin009/tutor-admin/pkg/stats"
)

type iService interface {
	Overview(ctx context.Context, period string) (*stats.Overview, error)
	Revenue(ctx context.Context, period string) ([]*stats.RevenuePoint, error)
}

type StatsHandler struct {
	service iService
}

func NewStatsHandler(s iService) *StatsHandler {
	return &StatsHandler{
		service: s,
	}
}

func (h *StatsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.service.Overview(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		platform.WriteError(w, err, "can't get dashboard stats")
		return
	}
	common.WriteData(w, ov, ``)
}

func (h *StatsHandler) Export(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.Revenue(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		platform.WriteError(w, err, "can't get revenue report")
		return
	}

	filename := fmt.Sprintf("revenue-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := stats.WriteReportXLSX(w, points); err != nil {
		logger.Log(r.Context()).Errorf("stats/handlers: can't write report: %v", err)
	}
}
