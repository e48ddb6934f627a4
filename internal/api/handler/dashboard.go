package handler

import (
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/usecases/dashboard"
)

func GetDashboardSummary(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary(r.Context())
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	})
}
