// Package crud implementa o ciclo de vida comum das telas de cadastro: buscar a
// coleção, validar o formulário, enviar a ação e recarregar a lista.
package crud

import (
	"context"
	"strconv"

	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
)

// Backend são as chamadas ao backend imobiliário de um recurso.
// Funções nulas indicam operações que o recurso não oferece.
type Backend[T any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, record *T) (*T, error)
	Update func(ctx context.Context, record *T) (*T, error)
	Delete func(ctx context.Context, id int64) error
	SetID  func(record *T, id int64)
	IDOf   func(record *T) int64
}

// Messages são os textos dos avisos do recurso
type Messages struct {
	Empty        string
	FetchFailed  string
	Created      string
	CreateFailed string
	Updated      string
	UpdateFailed string
	Deleted      string
	DeleteFailed string
}

type Resource[T any] struct {
	name     string
	backend  Backend[T]
	messages Messages
	recorder auditing.Recorder
}

func NewResource[T any](name string, backend Backend[T], messages Messages, recorder auditing.Recorder) *Resource[T] {
	if recorder == nil {
		recorder = auditing.NopRecorder{}
	}
	return &Resource[T]{
		name:     name,
		backend:  backend,
		messages: messages,
		recorder: recorder,
	}
}

func (r *Resource[T]) Name() string {
	return r.name
}

// List busca a coleção completa e monta a página pedida.
// Em caso de falha devolve a página vazia junto com o erro.
func (r *Resource[T]) List(ctx context.Context, q listing.Query) (listing.Page[T], error) {
	rows, err := r.backend.List(ctx)
	if err != nil {
		return r.FetchFailure(ctx, q, err)
	}
	return listing.Build(rows, q, r.messages.Empty), nil
}

// FetchFailure monta a resposta de uma busca que falhou
func (r *Resource[T]) FetchFailure(ctx context.Context, q listing.Query, err error) (listing.Page[T], error) {
	actionErr := usecases.BackendFailure(err, r.messages.FetchFailed)
	log.ForContext(ctx).WithFields(log.Fields{
		"resource": r.name,
		"action":   "list",
	}).WithError(err).Warn("Erro ao buscar coleção")

	return usecases.FetchFailed[T](q, r.messages.Empty, actionErr)
}

// Rows busca a coleção inteira, sem paginação
func (r *Resource[T]) Rows(ctx context.Context) ([]T, error) {
	rows, err := r.backend.List(ctx)
	if err != nil {
		return nil, usecases.BackendFailure(err, r.messages.FetchFailed)
	}
	return rows, nil
}

func (r *Resource[T]) Create(ctx context.Context, record *T) (*domain.FormResult[T], error) {
	if err := usecases.Validate(record); err != nil {
		return nil, err
	}

	saved, err := r.backend.Create(ctx, record)
	if err != nil {
		return nil, r.Failure(ctx, auditing.ActionCreate, "", err, r.messages.CreateFailed)
	}

	r.recorder.Record(ctx, auditing.ActionCreate, r.name, r.idOf(saved))

	return &domain.FormResult[T]{
		Notice: domain.Success(r.messages.Created),
		Data:   saved,
	}, nil
}

func (r *Resource[T]) Update(ctx context.Context, id int64, record *T) (*domain.FormResult[T], error) {
	if id <= 0 {
		return nil, usecases.NewActionError(usecases.ErrInvalidID, apiErrors.ErrInvalidRequest, r.messages.UpdateFailed)
	}
	if r.backend.SetID != nil {
		r.backend.SetID(record, id)
	}

	if err := usecases.Validate(record); err != nil {
		return nil, err
	}

	resourceID := strconv.FormatInt(id, 10)
	saved, err := r.backend.Update(ctx, record)
	if err != nil {
		return nil, r.Failure(ctx, auditing.ActionUpdate, resourceID, err, r.messages.UpdateFailed)
	}

	r.recorder.Record(ctx, auditing.ActionUpdate, r.name, resourceID)

	return &domain.FormResult[T]{
		Notice: domain.Success(r.messages.Updated),
		Data:   saved,
	}, nil
}

func (r *Resource[T]) idOf(record *T) string {
	if r.backend.IDOf == nil || record == nil {
		return ""
	}
	if id := r.backend.IDOf(record); id > 0 {
		return strconv.FormatInt(id, 10)
	}
	return ""
}

// Delete remove o registro e devolve a coleção recarregada
func (r *Resource[T]) Delete(ctx context.Context, id int64) (*domain.ActionResult[T], error) {
	if id <= 0 {
		return nil, usecases.NewActionError(usecases.ErrInvalidID, apiErrors.ErrInvalidRequest, r.messages.DeleteFailed)
	}

	resourceID := strconv.FormatInt(id, 10)
	if err := r.backend.Delete(ctx, id); err != nil {
		return nil, r.Failure(ctx, auditing.ActionDelete, resourceID, err, r.messages.DeleteFailed)
	}

	return r.Completed(ctx, auditing.ActionDelete, resourceID, r.messages.Deleted), nil
}

// Completed registra a ação e recarrega a coleção. Se a recarga falhar o aviso
// de sucesso é mantido e a lista volta vazia.
func (r *Resource[T]) Completed(ctx context.Context, action, resourceID, message string) *domain.ActionResult[T] {
	r.recorder.Record(ctx, action, r.name, resourceID)

	rows, err := r.backend.List(ctx)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"resource":    r.name,
			"action":      action,
			"resource_id": resourceID,
		}).WithError(err).Warn("Ação concluída, mas a lista não pôde ser recarregada")
		rows = make([]T, 0)
	}

	return &domain.ActionResult[T]{
		Notice: domain.Success(message),
		Rows:   rows,
	}
}

// Failure converte o erro do backend para uma ação do recurso e registra no log
func (r *Resource[T]) Failure(ctx context.Context, action, resourceID string, err error, fallback string) error {
	log.ForContext(ctx).WithFields(log.Fields{
		"resource":    r.name,
		"action":      action,
		"resource_id": resourceID,
	}).WithError(err).Warn("Ação recusada")
	return usecases.BackendFailure(err, fallback)
}
