package handler

import (
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/usecases/accounts"
)

// ListUsers aceita role para filtrar por papel no backend
func ListUsers(service accounts.AccountsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := service.ListUsers(r.Context(), r.URL.Query().Get("role"), parseQuery(r))
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	})
}
