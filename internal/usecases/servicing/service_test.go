package servicing

import (
	"context"
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
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	maintenances *estatemocks.MockMaintenanceClient
	assessments  *estatemocks.MockAssessmentClient
	users        *estatemocks.MockUserClient
	recorder     *auditmocks.MockRecorder
	service      ServicingService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		maintenances: estatemocks.NewMockMaintenanceClient(ctrl),
		assessments:  estatemocks.NewMockAssessmentClient(ctrl),
		users:        estatemocks.NewMockUserClient(ctrl),
		recorder:     auditmocks.NewMockRecorder(ctrl),
	}
	f.service = NewService(f.maintenances, f.assessments, f.users, f.recorder)
	return f
}

func TestService_UpdateMaintenance(t *testing.T) {
	tests := []struct {
		name        string
		maintenance *domain.Maintenance
		setup       func(f *fixture)
		wantErr     bool
		wantTime    string
	}{
		{
			name: "Horário legado é enviado com zero à esquerda",
			maintenance: &domain.Maintenance{
				Category:      "Hidráulica",
				Description:   "Vazamento na pia",
				ScheduledDate: "2024-06-10",
				ScheduledTime: "9:5",
			},
			setup: func(f *fixture) {
				f.maintenances.EXPECT().UpdateMaintenance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
						return m, nil
					})
				f.recorder.EXPECT().Record(gomock.Any(), auditing.ActionUpdate, "maintenance", "4")
			},
			wantTime: "09:05",
		},
		{
			name: "Horário inválido não chama o backend",
			maintenance: &domain.Maintenance{
				Category:      "Elétrica",
				Description:   "Tomada queimada",
				ScheduledDate: "2024-06-10",
				ScheduledTime: "25:00",
			},
			setup: func(f *fixture) {
				f.maintenances.EXPECT().UpdateMaintenance(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: true,
		},
		{
			name: "Descrição em branco não chama o backend",
			maintenance: &domain.Maintenance{
				Category:      "Elétrica",
				Description:   " ",
				ScheduledDate: "2024-06-10",
				ScheduledTime: "10:00",
			},
			setup: func(f *fixture) {
				f.maintenances.EXPECT().UpdateMaintenance(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.service.UpdateMaintenance(context.Background(), 4, tt.maintenance)

			if tt.wantErr {
				assert.ErrorIs(t, err, usecases.ErrInvalidForm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTime, result.Data.ScheduledTime)
		})
	}
}

func TestService_UpdateMaintenanceStatus(t *testing.T) {
	t.Run("Status fora da lista é recusado sem chamada", func(t *testing.T) {
		f := newFixture(t)
		f.maintenances.EXPECT().UpdateMaintenanceStatus(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.UpdateMaintenanceStatus(context.Background(), &domain.StatusChange{ID: 1, Status: "archived"})

		assert.ErrorIs(t, err, usecases.ErrInvalidStatus)
	})

	t.Run("Troca de status recarrega a lista", func(t *testing.T) {
		f := newFixture(t)
		change := &domain.StatusChange{ID: 1, Status: domain.MaintenanceStatusDone}
		f.maintenances.EXPECT().UpdateMaintenanceStatus(gomock.Any(), change).Return(nil)
		f.recorder.EXPECT().Record(gomock.Any(), auditing.ActionStatusChange, "maintenance", "1")
		f.maintenances.EXPECT().ListMaintenances(gomock.Any()).
			Return([]domain.Maintenance{{ID: 1, Status: domain.MaintenanceStatusDone}}, nil)

		result, err := f.service.UpdateMaintenanceStatus(context.Background(), change)

		require.NoError(t, err)
		assert.Equal(t, domain.Success(messageStatusUpdated), result.Notice)
		assert.Len(t, result.Rows, 1)
	})
}

func TestService_AssignOptions(t *testing.T) {
	t.Run("Traz a manutenção e os agentes", func(t *testing.T) {
		f := newFixture(t)
		f.maintenances.EXPECT().ListMaintenances(gomock.Any()).
			Return([]domain.Maintenance{{ID: 1}, {ID: 2, Category: "Pintura"}}, nil)
		f.users.EXPECT().ListUsers(gomock.Any(), domain.UserRoleAgent).
			Return([]domain.User{{ID: 10, Name: "Carlos", Role: domain.UserRoleAgent}}, nil)

		options, err := f.service.AssignOptions(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, "Pintura", options.Maintenance.Category)
		assert.Len(t, options.Agents, 1)
	})

	t.Run("Manutenção inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.maintenances.EXPECT().ListMaintenances(gomock.Any()).Return([]domain.Maintenance{{ID: 1}}, nil)
		f.users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.AssignOptions(context.Background(), 5)

		actionErr, ok := usecases.AsActionError(err)
		require.True(t, ok)
		assert.Equal(t, apiErrors.ErrEstateNotFound, actionErr.Code)
	})
}

func TestService_AssignMaintenance(t *testing.T) {
	t.Run("Sem agente não chama o backend", func(t *testing.T) {
		f := newFixture(t)
		f.maintenances.EXPECT().AssignMaintenance(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.AssignMaintenance(context.Background(), &domain.MaintenanceAssignment{MaintenanceID: 1})

		assert.ErrorIs(t, err, usecases.ErrInvalidForm)
	})

	t.Run("Backend recusa a atribuição", func(t *testing.T) {
		f := newFixture(t)
		f.maintenances.EXPECT().AssignMaintenance(gomock.Any(), gomock.Any()).
			Return(&estatedomain.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "Agente indisponível"})

		_, err := f.service.AssignMaintenance(context.Background(), &domain.MaintenanceAssignment{MaintenanceID: 1, AgentID: 10})

		actionErr, ok := usecases.AsActionError(err)
		require.True(t, ok)
		assert.Equal(t, "Agente indisponível", actionErr.Notice.Message)
	})

	t.Run("Atribuição recarrega a lista", func(t *testing.T) {
		f := newFixture(t)
		f.maintenances.EXPECT().AssignMaintenance(gomock.Any(), gomock.Any()).Return(nil)
		f.recorder.EXPECT().Record(gomock.Any(), auditing.ActionAssign, "maintenance", "1")
		f.maintenances.EXPECT().ListMaintenances(gomock.Any()).
			Return([]domain.Maintenance{{ID: 1, AgentID: 10}}, nil)

		result, err := f.service.AssignMaintenance(context.Background(), &domain.MaintenanceAssignment{MaintenanceID: 1, AgentID: 10})

		require.NoError(t, err)
		assert.Equal(t, messageAssigned, result.Notice.Message)
		assert.Equal(t, int64(10), result.Rows[0].AgentID)
	})
}

func TestService_UpdateVisitStatus(t *testing.T) {
	f := newFixture(t)
	change := &domain.StatusChange{ID: 3, Status: domain.VisitStatusCancelled}
	f.assessments.EXPECT().UpdateVisitStatus(gomock.Any(), change).Return(nil)
	f.recorder.EXPECT().Record(gomock.Any(), auditing.ActionStatusChange, "assessment", "3")
	f.assessments.EXPECT().ListAssessments(gomock.Any()).Return([]domain.Assessment{}, nil)

	result, err := f.service.UpdateVisitStatus(context.Background(), change)

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}
