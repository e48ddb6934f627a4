package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultPageSize é usado quando o painel não informa page_size
var DefaultPageSize = listing.DefaultPageSize

const filterPrefix = "filter."

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeActionError responde com o código e o aviso carregados pelo erro da ação
func writeActionError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	actionErr, ok := usecases.AsActionError(err)
	if !ok {
		logger.Error("Erro inesperado na ação")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
		return
	}

	if apiErrors.StatusFor(actionErr.Code) >= http.StatusInternalServerError {
		logger.Error(actionErr.Notice.Message)
	} else {
		logger.Warn(actionErr.Notice.Message)
	}

	apiErrors.WriteError(w, actionErr.Code, actionErr.Notice.Message, actionErr.Details)
}

// parseQuery lê os parâmetros de tabela: page, page_size, sort, order, q e filter.<campo>
func parseQuery(r *http.Request) listing.Query {
	values := r.URL.Query()

	q := listing.Query{
		Sort:   values.Get("sort"),
		Order:  values.Get("order"),
		Search: values.Get("q"),
	}
	q.Page, _ = strconv.Atoi(values.Get("page"))
	q.PageSize, _ = strconv.Atoi(values.Get("page_size"))

	for key, value := range values {
		field, found := strings.CutPrefix(key, filterPrefix)
		if !found || field == "" || len(value) == 0 {
			continue
		}
		if q.Filters == nil {
			q.Filters = make(map[string]string)
		}
		q.Filters[field] = value[0]
	}

	return q.WithDefaultPageSize(DefaultPageSize)
}

func parseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pathID lê um identificador numérico da rota; responde VAL_001 quando inválido
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, ok := parseID(httprouter.ParamsFromContext(r.Context()).ByName(name))
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Identificador inválido", map[string]string{"param": name})
	}
	return id, ok
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
		return false
	}
	return true
}

func listHandler[T any](list func(ctx context.Context, q listing.Query) (listing.Page[T], error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := list(r.Context(), parseQuery(r))
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	})
}

func createHandler[T any](create func(ctx context.Context, record *T) (*domain.FormResult[T], error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record := new(T)
		if !decodeBody(w, r, record) {
			return
		}

		result, err := create(r.Context(), record)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, result)
	})
}

func updateHandler[T any](update func(ctx context.Context, id int64, record *T) (*domain.FormResult[T], error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		record := new(T)
		if !decodeBody(w, r, record) {
			return
		}

		result, err := update(r.Context(), id, record)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}

func deleteHandler[T any](remove func(ctx context.Context, id int64) (*domain.ActionResult[T], error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		result, err := remove(r.Context(), id)
		if err != nil {
			writeActionError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	})
}
