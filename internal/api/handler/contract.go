package handler

import (
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases/contracting"
)

func GetContract(service contracting.ContractingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		contract, err := service.GetContract(r.Context(), id)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, contract)
	})
}

type payInstallmentRequest struct {
	Amount float64 `json:"amount"`
}

// PayInstallment quita uma parcela e devolve as parcelas do contrato recarregadas
func PayInstallment(service contracting.ContractingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contractID, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		installmentID, ok := pathID(w, r, "installment_id")
		if !ok {
			return
		}

		var body payInstallmentRequest
		if !decodeBody(w, r, &body) {
			return
		}

		result, err := service.PayInstallment(r.Context(), &domain.InstallmentPayment{
			ContractID:    contractID,
			InstallmentID: installmentID,
			Amount:        body.Amount,
		})
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}
