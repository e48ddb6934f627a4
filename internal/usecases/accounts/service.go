package accounts

import (
	"context"
	"strings"

	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/crud"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/validation"
)

const resourceUser = "user"

var userMessages = crud.Messages{
	Empty:        "Nenhum usuário cadastrado",
	FetchFailed:  "Erro ao buscar usuários",
	Created:      "Usuário criado com sucesso",
	CreateFailed: "Erro ao criar usuário",
	Updated:      "Usuário atualizado com sucesso",
	UpdateFailed: "Erro ao atualizar usuário",
	Deleted:      "Usuário excluído com sucesso",
	DeleteFailed: "Erro ao excluir usuário",
}

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type AccountsService interface {
	ListUsers(ctx context.Context, role string, q listing.Query) (listing.Page[domain.User], error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.FormResult[domain.User], error)
	UpdateUser(ctx context.Context, id int64, user *domain.User) (*domain.FormResult[domain.User], error)
	DeleteUser(ctx context.Context, id int64) (*domain.ActionResult[domain.User], error)
}

type Service struct {
	client   estateclient.UserClient
	recorder auditing.Recorder
}

func NewService(client estateclient.UserClient, recorder auditing.Recorder) AccountsService {
	return &Service{
		client:   client,
		recorder: recorder,
	}
}

func (s *Service) users(role string) *crud.Resource[domain.User] {
	return crud.NewResource(resourceUser, crud.Backend[domain.User]{
		List: func(ctx context.Context) ([]domain.User, error) {
			return s.client.ListUsers(ctx, role)
		},
		Create: s.client.CreateUser,
		Update: s.client.UpdateUser,
		Delete: s.client.DeleteUser,
		SetID:  (*domain.User).SetID,
		IDOf:   (*domain.User).GetID,
	}, userMessages, s.recorder)
}

// ListUsers lista as contas; role vazio traz todas
func (s *Service) ListUsers(ctx context.Context, role string, q listing.Query) (listing.Page[domain.User], error) {
	return s.users(strings.TrimSpace(role)).List(ctx, q)
}

// CreateUser exige senha na criação; na edição ela é opcional
func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.FormResult[domain.User], error) {
	if err := usecases.Validate(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(user.Password) == "" {
		return nil, &usecases.ActionError{
			Err:    usecases.ErrInvalidForm,
			Code:   apiErrors.ErrMissingRequiredData,
			Notice: domain.Failure(usecases.MessageRequiredFields),
			Details: validation.Errors{{
				Field:   "password",
				Rule:    "required",
				Message: "campo obrigatório",
			}},
		}
	}

	result, err := s.users("").Create(ctx, user)
	if err != nil {
		return nil, err
	}
	result.Data.Password = ""
	return result, nil
}

func (s *Service) UpdateUser(ctx context.Context, id int64, user *domain.User) (*domain.FormResult[domain.User], error) {
	result, err := s.users("").Update(ctx, id, user)
	if err != nil {
		return nil, err
	}
	result.Data.Password = ""
	return result, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) (*domain.ActionResult[domain.User], error) {
	return s.users("").Delete(ctx, id)
}
