package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/domain"
)

type statusRequest struct {
	Status string `json:"status"`
}

// statusHandler atende PUT /:id/status para qualquer fluxo de status
func statusHandler[T any](change func(ctx context.Context, change *domain.StatusChange) (*domain.ActionResult[T], error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var body statusRequest
		if !decodeBody(w, r, &body) {
			return
		}

		result, err := change(r.Context(), &domain.StatusChange{ID: id, Status: body.Status})
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}
