package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/utils"
)

// ListAuditEntries aceita resource, limit e o intervalo from/to (AAAA-MM-DD)
func ListAuditEntries(service auditing.AuditService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := domain.AuditFilter{Resource: query.Get("resource")}
		if limit, err := strconv.ParseUint(query.Get("limit"), 10, 64); err == nil {
			filter.Limit = limit
		}

		from, err := utils.ParseDate(query.Get("from"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use AAAA-MM-DD", nil)
			return
		}
		to, err := utils.ParseDate(query.Get("to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use AAAA-MM-DD", nil)
			return
		}
		filter.From, filter.To = from, to

		entries, err := service.List(r.Context(), filter)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	})
}
