package auditing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/estate-admin-api/infrastructure/repository/mocks"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
	"go.uber.org/mock/gomock"
)

func TestService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	service := NewService(mockRepo)

	ctx, correlationID := log.WithCorrelationID(context.Background(), "req-77")
	ctx = session.WithClaims(ctx, &session.Claims{Email: "ana@imob.com", Role: "admin"})

	t.Run("Preenche autor e correlação", func(t *testing.T) {
		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry *domain.AuditEntry) error {
				assert.Equal(t, ActionDelete, entry.Action)
				assert.Equal(t, "contract", entry.Resource)
				assert.Equal(t, "9", entry.ResourceID)
				assert.Equal(t, "ana@imob.com", entry.Actor)
				assert.Equal(t, correlationID, entry.CorrelationID)
				return nil
			})

		service.Record(ctx, ActionDelete, "contract", "9")
	})

	t.Run("Falha ao gravar não interrompe a ação", func(t *testing.T) {
		mockRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("banco indisponível"))

		assert.NotPanics(t, func() {
			service.Record(ctx, ActionCreate, "client", "1")
		})
	})
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAuditRepository(ctrl)
	service := NewService(mockRepo)
	filter := domain.AuditFilter{Resource: "contract", Limit: 10}

	t.Run("Lista os registros", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), filter).Return([]domain.AuditEntry{{ID: "a1"}}, nil)

		entries, err := service.List(context.Background(), filter)

		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("Erro do banco vira erro de ação", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any(), filter).Return(nil, errors.New("timeout"))

		_, err := service.List(context.Background(), filter)

		actionErr, ok := usecases.AsActionError(err)
		require.True(t, ok)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, actionErr.Code)
	})
}

func TestNopService(t *testing.T) {
	var service AuditService = NopService{}

	service.Record(context.Background(), ActionCreate, "client", "1")
	entries, err := service.List(context.Background(), domain.AuditFilter{})

	require.NoError(t, err)
	assert.Empty(t, entries)
}
