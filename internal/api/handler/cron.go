package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/estate-admin-api/internal/scheduler"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeExpiredContracts = "expired-contracts"
	CronJobTypeAll              = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	ExpiredContractsWatchService *scheduler.ExpiredContractsWatchService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		started := false
		switch cronType {
		case CronJobTypeExpiredContracts, CronJobTypeAll:
			if services.ExpiredContractsWatchService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de contratos vencidos não disponível", nil)
				return
			}
			started = services.ExpiredContractsWatchService.TriggerManualSync(r.Context())
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: expired-contracts, all", nil)
			return
		}

		message := "Cron job iniciada com sucesso"
		status := http.StatusAccepted
		if !started {
			message = "Cron job já está em execução"
			status = http.StatusConflict
		}

		writeJSON(w, status, map[string]any{
			"message": message,
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ExpiredContractsWatchService != nil {
			status[CronJobTypeExpiredContracts] = services.ExpiredContractsWatchService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
