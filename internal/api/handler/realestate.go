package handler

import (
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases/property"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
)

func GetRealEstate(service property.PropertyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		realEstate, err := service.GetRealEstate(r.Context(), id)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, realEstate)
	})
}

func ListUnits(service property.PropertyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		realEstateID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		page, err := service.ListUnits(r.Context(), realEstateID, parseQuery(r))
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	})
}

func CreateUnit(service property.PropertyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		realEstateID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var unit domain.Unit
		if !decodeBody(w, r, &unit) {
			return
		}

		result, err := service.CreateUnit(r.Context(), realEstateID, &unit)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	})
}

// DeleteUnit recebe o empreendimento em realestate_id para recarregar a lista de unidades
func DeleteUnit(service property.PropertyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		realEstateID, ok := parseID(r.URL.Query().Get("realestate_id"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "realestate_id é obrigatório", nil)
			return
		}

		result, err := service.DeleteUnit(r.Context(), id, realEstateID)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}
