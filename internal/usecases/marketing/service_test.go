package marketing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	estatemocks "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/mocks"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"go.uber.org/mock/gomock"
)

func TestService_UpdateRequestStatus(t *testing.T) {
	tests := []struct {
		name    string
		change  *domain.StatusChange
		setup   func(client *estatemocks.MockMarketingClient)
		wantErr error
	}{
		{
			name:   "Status desconhecido não chama o backend",
			change: &domain.StatusChange{ID: 1, Status: "approved"},
			setup: func(client *estatemocks.MockMarketingClient) {
				client.EXPECT().UpdateMarketingRequestStatus(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: usecases.ErrInvalidStatus,
		},
		{
			name:   "Status em branco não chama o backend",
			change: &domain.StatusChange{ID: 1, Status: ""},
			setup: func(client *estatemocks.MockMarketingClient) {
				client.EXPECT().UpdateMarketingRequestStatus(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: usecases.ErrInvalidForm,
		},
		{
			name:   "Pedido concluído recarrega a lista",
			change: &domain.StatusChange{ID: 1, Status: domain.MarketingStatusDone},
			setup: func(client *estatemocks.MockMarketingClient) {
				client.EXPECT().UpdateMarketingRequestStatus(gomock.Any(), gomock.Any()).Return(nil)
				client.EXPECT().ListMarketingRequests(gomock.Any()).
					Return([]domain.MarketingRequest{{ID: 1, Status: domain.MarketingStatusDone}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := estatemocks.NewMockMarketingClient(ctrl)
			tt.setup(mockClient)

			service := NewService(mockClient, auditing.NopRecorder{})
			result, err := service.UpdateRequestStatus(context.Background(), tt.change)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Success(messageStatusUpdated), result.Notice)
			assert.Len(t, result.Rows, 1)
		})
	}
}

func TestService_CreateRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := estatemocks.NewMockMarketingClient(ctrl)
	service := NewService(mockClient, auditing.NopRecorder{})

	mockClient.EXPECT().CreateMarketingRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *domain.MarketingRequest) (*domain.MarketingRequest, error) {
			assert.Equal(t, domain.MarketingStatusPending, request.Status)
			return request, nil
		})

	result, err := service.CreateRequest(context.Background(), &domain.MarketingRequest{ClientName: "Paula", Phone: "11988887777"})

	require.NoError(t, err)
	assert.Equal(t, requestMessages.Created, result.Notice.Message)
}
