package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/dashboard/mocks"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/session"
	"go.uber.org/mock/gomock"
)

func TestService_Summary(t *testing.T) {
	ctx := session.WithToken(context.Background(), "token-123")

	tests := []struct {
		name         string
		setup        func(client *mocks.MockSummaryClient)
		want         domain.DashboardSummary
		wantWarnings int
	}{
		{
			name: "Todas as fontes respondem",
			setup: func(client *mocks.MockSummaryClient) {
				client.EXPECT().ListContractedClients(gomock.Any()).Return([]domain.Client{{ID: 1}, {ID: 2}}, nil)
				client.EXPECT().ListExpiredContracts(gomock.Any()).Return([]domain.Contract{{ID: 5}}, nil)
				client.EXPECT().ListMaintenances(gomock.Any()).Return([]domain.Maintenance{
					{ID: 1, Status: domain.MaintenanceStatusPending},
					{ID: 2, Status: domain.MaintenanceStatusDone},
				}, nil)
				client.EXPECT().ListMarketingRequests(gomock.Any()).Return([]domain.MarketingRequest{
					{ID: 1},
					{ID: 2, Status: domain.MarketingStatusPending},
					{ID: 3, Status: domain.MarketingStatusCancelled},
				}, nil)
				client.EXPECT().ListTransactions(gomock.Any()).Return([]domain.Transaction{
					{ID: 1, Amount: 1200.10},
					{ID: 2, Amount: 799.95},
				}, nil)
			},
			want: domain.DashboardSummary{
				ContractedClients:   2,
				ExpiredContracts:    1,
				PendingMaintenances: 1,
				PendingMarketing:    2,
				Transactions:        2,
				TransactionsTotal:   2000.05,
			},
		},
		{
			name: "Fonte com erro fica zerada e gera aviso",
			setup: func(client *mocks.MockSummaryClient) {
				client.EXPECT().ListContractedClients(gomock.Any()).Return([]domain.Client{{ID: 1}}, nil)
				client.EXPECT().ListExpiredContracts(gomock.Any()).Return(nil, errors.New("timeout"))
				client.EXPECT().ListMaintenances(gomock.Any()).Return([]domain.Maintenance{}, nil)
				client.EXPECT().ListMarketingRequests(gomock.Any()).Return([]domain.MarketingRequest{}, nil)
				client.EXPECT().ListTransactions(gomock.Any()).Return(nil, errors.New("502"))
			},
			want: domain.DashboardSummary{
				ContractedClients: 1,
			},
			wantWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mocks.NewMockSummaryClient(ctrl)
			tt.setup(mockClient)

			summary, err := NewService(mockClient).Summary(ctx)

			require.NoError(t, err)
			assert.Len(t, summary.Notices, tt.wantWarnings)
			for _, notice := range summary.Notices {
				assert.Equal(t, domain.NoticeWarning, notice.Level)
			}
			summary.Notices = nil
			assert.Equal(t, tt.want, *summary)
		})
	}
}

func TestService_SummaryWithoutSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mocks.NewMockSummaryClient(ctrl)

	_, err := NewService(mockClient).Summary(context.Background())

	actionErr, ok := usecases.AsActionError(err)
	require.True(t, ok)
	assert.Equal(t, apiErrors.ErrMissingToken, actionErr.Code)
}
