package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	estatemocks "github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/mocks"
	"github.com/vfg2006/estate-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/estate-admin-api/internal/config"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/pkg/session"
	"go.uber.org/mock/gomock"
)

func newWatchConfig() *config.Config {
	return &config.Config{
		Estate: config.Estate{ServiceToken: "service-token"},
		ExpiredContractsWatch: config.ExpiredContractsWatch{
			CronSchedule: "0 7 * * *",
			Enabled:      true,
		},
	}
}

func TestExpiredContractsWatchService_RunOnce(t *testing.T) {
	expired := []domain.Contract{
		{ID: 1, ClientName: "Maria", EndDate: "2024-04-30"},
		{ID: 2, ClientName: "João", EndDate: "2024-04-15"},
	}

	tests := []struct {
		name     string
		ctx      context.Context
		setup    func(contracts *estatemocks.MockContractClient, alerts *mocks.MockExpiredContractAlertRepository)
		want     *WatchResult
		wantErr  bool
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Usa o token de serviço e grava os alertas",
			ctx:  context.Background(),
			setup: func(contracts *estatemocks.MockContractClient, alerts *mocks.MockExpiredContractAlertRepository) {
				contracts.EXPECT().ListExpiredContracts(gomock.Any()).
					DoAndReturn(func(ctx context.Context) ([]domain.Contract, error) {
						assert.Equal(t, "service-token", session.TokenFromContext(ctx))
						return expired, nil
					})
				alerts.EXPECT().Upsert(gomock.Any(), expired).Return(1, nil)
			},
			want: &WatchResult{Expired: 2, NewSeen: 1},
			validate: func(t *testing.T, status map[string]any) {
				assert.Equal(t, 2, status["last_run_expired_count"])
				assert.Equal(t, 1, status["last_run_new_count"])
				assert.Equal(t, "", status["last_run_error"])
				assert.Equal(t, false, status["running"])
			},
		},
		{
			name: "Token da sessão tem prioridade",
			ctx:  session.WithToken(context.Background(), "admin-token"),
			setup: func(contracts *estatemocks.MockContractClient, alerts *mocks.MockExpiredContractAlertRepository) {
				contracts.EXPECT().ListExpiredContracts(gomock.Any()).
					DoAndReturn(func(ctx context.Context) ([]domain.Contract, error) {
						assert.Equal(t, "admin-token", session.TokenFromContext(ctx))
						return []domain.Contract{}, nil
					})
				alerts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(0, nil)
			},
			want: &WatchResult{},
		},
		{
			name: "Erro do backend não grava alertas",
			ctx:  context.Background(),
			setup: func(contracts *estatemocks.MockContractClient, alerts *mocks.MockExpiredContractAlertRepository) {
				contracts.EXPECT().ListExpiredContracts(gomock.Any()).Return(nil, errors.New("timeout"))
				alerts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: true,
			validate: func(t *testing.T, status map[string]any) {
				assert.Contains(t, status["last_run_error"], "timeout")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockContracts := estatemocks.NewMockContractClient(ctrl)
			mockAlerts := mocks.NewMockExpiredContractAlertRepository(ctrl)
			tt.setup(mockContracts, mockAlerts)

			service := NewExpiredContractsWatchService(mockContracts, mockAlerts, newWatchConfig())
			result, err := service.RunOnce(tt.ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, result)
			}
			if tt.validate != nil {
				tt.validate(t, service.GetStatus())
			}
		})
	}
}

func TestExpiredContractsWatchService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewExpiredContractsWatchService(
		estatemocks.NewMockContractClient(ctrl),
		mocks.NewMockExpiredContractAlertRepository(ctrl),
		newWatchConfig(),
	)
	service.running = true

	_, err := service.RunOnce(context.Background())
	assert.ErrorIs(t, err, ErrWatchRunning)
	assert.False(t, service.TriggerManualSync(context.Background()))
}

func TestExpiredContractsWatchService_ConcurrentManualTriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	contracts := estatemocks.NewMockContractClient(ctrl)
	alerts := mocks.NewMockExpiredContractAlertRepository(ctrl)

	release := make(chan struct{})
	contracts.EXPECT().ListExpiredContracts(gomock.Any()).
		DoAndReturn(func(ctx context.Context) ([]domain.Contract, error) {
			<-release
			return []domain.Contract{}, nil
		}).Times(1)
	alerts.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(0, nil).Times(1)

	service := NewExpiredContractsWatchService(contracts, alerts, newWatchConfig())

	require.True(t, service.TriggerManualSync(context.Background()))
	assert.Equal(t, true, service.GetStatus()["running"])
	assert.False(t, service.TriggerManualSync(context.Background()))

	close(release)
	assert.Eventually(t, func() bool {
		return service.GetStatus()["running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestExpiredContractsWatchService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := newWatchConfig()
	cfg.ExpiredContractsWatch.Enabled = false

	service := NewExpiredContractsWatchService(
		estatemocks.NewMockContractClient(ctrl),
		mocks.NewMockExpiredContractAlertRepository(ctrl),
		cfg,
	)

	require.NoError(t, service.Start(context.Background()))
	assert.Equal(t, 0, service.scheduler.Len())
}
