package crud

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	estatedomain "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/domain"
	estatemocks "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/mocks"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	auditmocks "github.com/vfg2006/estate-admin-api/internal/usecases/auditing/mocks"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var serviceMessages = Messages{
	Empty:        "Nenhum serviço cadastrado",
	FetchFailed:  "Erro ao buscar serviços",
	Created:      "Serviço criado com sucesso",
	CreateFailed: "Erro ao criar serviço",
	Updated:      "Serviço atualizado com sucesso",
	UpdateFailed: "Erro ao atualizar serviço",
	Deleted:      "Serviço excluído com sucesso",
	DeleteFailed: "Erro ao excluir serviço",
}

func newServiceResource(client *estatemocks.MockServiceCatalogClient, recorder auditing.Recorder) *Resource[domain.Service] {
	return NewResource("service", Backend[domain.Service]{
		List:   client.ListServices,
		Create: client.CreateService,
		Update: client.UpdateService,
		Delete: client.DeleteService,
		SetID:  (*domain.Service).SetID,
		IDOf:   (*domain.Service).GetID,
	}, serviceMessages, recorder)
}

func TestResource_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := estatemocks.NewMockServiceCatalogClient(ctrl)
	resource := newServiceResource(mockClient, nil)

	t.Run("Total igual ao tamanho da coleção", func(t *testing.T) {
		services := []domain.Service{{ID: 1, Name: "Vistoria"}, {ID: 2, Name: "Avaliação"}, {ID: 3, Name: "Limpeza"}}
		mockClient.EXPECT().ListServices(gomock.Any()).Return(services, nil)

		page, err := resource.List(context.Background(), listing.Query{PageSize: 2})

		require.NoError(t, err)
		assert.Equal(t, len(services), page.Total)
		assert.Len(t, page.Items, 2)
		assert.Nil(t, page.Notice)
	})

	t.Run("Falha na busca gera um aviso de erro e a página vazia", func(t *testing.T) {
		mockClient.EXPECT().ListServices(gomock.Any()).
			Return(nil, &estatedomain.APIError{StatusCode: http.StatusInternalServerError})

		page, err := resource.List(context.Background(), listing.Query{})

		actionErr, ok := usecases.AsActionError(err)
		require.True(t, ok)
		assert.Equal(t, apiErrors.ErrExternalService, actionErr.Code)
		assert.Equal(t, serviceMessages.FetchFailed, actionErr.Notice.Message)

		require.NotNil(t, page.Notice)
		assert.Equal(t, domain.NoticeError, page.Notice.Level)
		assert.Empty(t, page.Items)
		assert.Equal(t, serviceMessages.Empty, page.EmptyMessage)
		assert.Equal(t, page, actionErr.Details)
	})
}

func TestResource_Create(t *testing.T) {
	tests := []struct {
		name        string
		record      *domain.Service
		setup       func(client *estatemocks.MockServiceCatalogClient, recorder *auditmocks.MockRecorder)
		wantErr     bool
		wantCode    string
		wantMessage string
	}{
		{
			name:   "Campo obrigatório em branco não chama o backend",
			record: &domain.Service{Name: "", Description: "Limpeza pós obra"},
			setup: func(client *estatemocks.MockServiceCatalogClient, recorder *auditmocks.MockRecorder) {
				client.EXPECT().CreateService(gomock.Any(), gomock.Any()).Times(0)
				recorder.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr:     true,
			wantCode:    apiErrors.ErrMissingRequiredData,
			wantMessage: usecases.MessageRequiredFields,
		},
		{
			name:   "Mensagem do backend é exibida",
			record: &domain.Service{Name: "Vistoria", Description: "Vistoria de entrada"},
			setup: func(client *estatemocks.MockServiceCatalogClient, recorder *auditmocks.MockRecorder) {
				client.EXPECT().CreateService(gomock.Any(), gomock.Any()).
					Return(nil, &estatedomain.APIError{StatusCode: http.StatusConflict, Message: "Serviço já existe"})
			},
			wantErr:     true,
			wantCode:    apiErrors.ErrEstateRejected,
			wantMessage: "Serviço já existe",
		},
		{
			name:   "Criação registra auditoria com o id devolvido",
			record: &domain.Service{Name: "Vistoria", Description: "Vistoria de entrada", Price: 150},
			setup: func(client *estatemocks.MockServiceCatalogClient, recorder *auditmocks.MockRecorder) {
				client.EXPECT().CreateService(gomock.Any(), gomock.Any()).
					Return(&domain.Service{ID: 12, Name: "Vistoria"}, nil)
				recorder.EXPECT().Record(gomock.Any(), auditing.ActionCreate, "service", "12")
			},
			wantMessage: serviceMessages.Created,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := estatemocks.NewMockServiceCatalogClient(ctrl)
			mockRecorder := auditmocks.NewMockRecorder(ctrl)
			tt.setup(mockClient, mockRecorder)

			result, err := newServiceResource(mockClient, mockRecorder).Create(context.Background(), tt.record)

			if tt.wantErr {
				actionErr, ok := usecases.AsActionError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, actionErr.Code)
				assert.Equal(t, tt.wantMessage, actionErr.Notice.Message)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.NoticeSuccess, result.Notice.Level)
			assert.Equal(t, tt.wantMessage, result.Notice.Message)
			assert.Equal(t, int64(12), result.Data.ID)
		})
	}
}

func TestResource_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := estatemocks.NewMockServiceCatalogClient(ctrl)
	resource := newServiceResource(mockClient, auditing.NopRecorder{})

	t.Run("Usa o id da rota", func(t *testing.T) {
		mockClient.EXPECT().UpdateService(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, service *domain.Service) (*domain.Service, error) {
				assert.Equal(t, int64(5), service.ID)
				return service, nil
			})

		result, err := resource.Update(context.Background(), 5, &domain.Service{ID: 99, Name: "Vistoria", Description: "Saída"})

		require.NoError(t, err)
		assert.Equal(t, serviceMessages.Updated, result.Notice.Message)
	})

	t.Run("Id inválido", func(t *testing.T) {
		_, err := resource.Update(context.Background(), 0, &domain.Service{Name: "Vistoria", Description: "Saída"})

		assert.ErrorIs(t, err, usecases.ErrInvalidID)
	})
}

func TestResource_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := estatemocks.NewMockServiceCatalogClient(ctrl)
	mockRecorder := auditmocks.NewMockRecorder(ctrl)
	resource := newServiceResource(mockClient, mockRecorder)

	t.Run("Exclusão recarrega a lista", func(t *testing.T) {
		remaining := []domain.Service{{ID: 2, Name: "Avaliação"}}
		gomock.InOrder(
			mockClient.EXPECT().DeleteService(gomock.Any(), int64(1)).Return(nil),
			mockClient.EXPECT().ListServices(gomock.Any()).Return(remaining, nil),
		)
		mockRecorder.EXPECT().Record(gomock.Any(), auditing.ActionDelete, "service", "1")

		result, err := resource.Delete(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, domain.Success(serviceMessages.Deleted), result.Notice)
		assert.Equal(t, remaining, result.Rows)
	})

	t.Run("Recarga falha mas o aviso de sucesso é mantido", func(t *testing.T) {
		mockClient.EXPECT().DeleteService(gomock.Any(), int64(3)).Return(nil)
		mockClient.EXPECT().ListServices(gomock.Any()).Return(nil, errors.New("timeout"))
		mockRecorder.EXPECT().Record(gomock.Any(), auditing.ActionDelete, "service", "3")

		result, err := resource.Delete(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, domain.NoticeSuccess, result.Notice.Level)
		assert.NotNil(t, result.Rows)
		assert.Empty(t, result.Rows)
	})

	t.Run("Erro do backend sem mensagem usa o texto padrão", func(t *testing.T) {
		mockClient.EXPECT().DeleteService(gomock.Any(), int64(4)).
			Return(&estatedomain.APIError{StatusCode: http.StatusNotFound})

		result, err := resource.Delete(context.Background(), 4)

		assert.Nil(t, result)
		actionErr, ok := usecases.AsActionError(err)
		require.True(t, ok)
		assert.Equal(t, apiErrors.ErrEstateNotFound, actionErr.Code)
		assert.Equal(t, serviceMessages.DeleteFailed, actionErr.Notice.Message)
	})
}
