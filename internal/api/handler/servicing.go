package handler

import (
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases/servicing"
)

type assignRequest struct {
	AgentID int64 `json:"agent_id"`
}

func UpdateMaintenanceStatus(service servicing.ServicingService) http.Handler {
	return statusHandler(service.UpdateMaintenanceStatus)
}

func UpdateVisitStatus(service servicing.ServicingService) http.Handler {
	return statusHandler(service.UpdateVisitStatus)
}

// GetAssignOptions devolve a manutenção e os agentes disponíveis para o formulário de atribuição
func GetAssignOptions(service servicing.ServicingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		options, err := service.AssignOptions(r.Context(), id)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, options)
	})
}

func AssignMaintenance(service servicing.ServicingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var body assignRequest
		if !decodeBody(w, r, &body) {
			return
		}

		result, err := service.AssignMaintenance(r.Context(), &domain.MaintenanceAssignment{
			MaintenanceID: id,
			AgentID:       body.AgentID,
		})
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}
