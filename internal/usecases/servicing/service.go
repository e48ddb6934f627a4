package servicing

import (
	"context"
	"slices"
	"strconv"

	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/crud"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/utils"
)

const (
	resourceMaintenance = "maintenance"
	resourceAssessment  = "assessment"
)

var (
	maintenanceStatuses = []string{
		domain.MaintenanceStatusPending,
		domain.MaintenanceStatusInProgress,
		domain.MaintenanceStatusDone,
		domain.MaintenanceStatusCancelled,
	}
	visitStatuses = []string{
		domain.VisitStatusPending,
		domain.VisitStatusDone,
		domain.VisitStatusCancelled,
	}
)

var maintenanceMessages = crud.Messages{
	Empty:        "Nenhuma manutenção solicitada",
	FetchFailed:  "Erro ao buscar manutenções",
	Updated:      "Manutenção atualizada com sucesso",
	UpdateFailed: "Erro ao atualizar manutenção",
}

var assessmentMessages = crud.Messages{
	Empty:        "Nenhuma visita agendada",
	FetchFailed:  "Erro ao buscar visitas",
	Updated:      "Visita atualizada com sucesso",
	UpdateFailed: "Erro ao atualizar visita",
}

const (
	messageStatusUpdated  = "Status atualizado com sucesso"
	messageStatusFailed   = "Erro ao atualizar status"
	messageAssigned       = "Manutenção atribuída com sucesso"
	messageAssignFailed   = "Erro ao atribuir manutenção"
	messageAgentsFailed   = "Erro ao buscar agentes"
	messageNotFound       = "Manutenção não encontrada"
	messageInvalidRequest = "Manutenção inválida"
)

// AssignOptions alimenta a tela de atribuição: a manutenção e os agentes disponíveis
type AssignOptions struct {
	Maintenance domain.Maintenance `json:"maintenance"`
	Agents      []domain.User      `json:"agents"`
}

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type ServicingService interface {
	ListMaintenances(ctx context.Context, q listing.Query) (listing.Page[domain.Maintenance], error)
	UpdateMaintenance(ctx context.Context, id int64, maintenance *domain.Maintenance) (*domain.FormResult[domain.Maintenance], error)
	UpdateMaintenanceStatus(ctx context.Context, change *domain.StatusChange) (*domain.ActionResult[domain.Maintenance], error)
	AssignOptions(ctx context.Context, maintenanceID int64) (*AssignOptions, error)
	AssignMaintenance(ctx context.Context, assignment *domain.MaintenanceAssignment) (*domain.ActionResult[domain.Maintenance], error)

	ListAssessments(ctx context.Context, q listing.Query) (listing.Page[domain.Assessment], error)
	UpdateAssessment(ctx context.Context, id int64, assessment *domain.Assessment) (*domain.FormResult[domain.Assessment], error)
	UpdateVisitStatus(ctx context.Context, change *domain.StatusChange) (*domain.ActionResult[domain.Assessment], error)
}

type Service struct {
	maintenanceClient estateclient.MaintenanceClient
	assessmentClient  estateclient.AssessmentClient
	userClient        estateclient.UserClient

	maintenances *crud.Resource[domain.Maintenance]
	assessments  *crud.Resource[domain.Assessment]
}

func NewService(
	maintenanceClient estateclient.MaintenanceClient,
	assessmentClient estateclient.AssessmentClient,
	userClient estateclient.UserClient,
	recorder auditing.Recorder,
) ServicingService {
	return &Service{
		maintenanceClient: maintenanceClient,
		assessmentClient:  assessmentClient,
		userClient:        userClient,
		maintenances: crud.NewResource(resourceMaintenance, crud.Backend[domain.Maintenance]{
			List:   maintenanceClient.ListMaintenances,
			Update: maintenanceClient.UpdateMaintenance,
			SetID:  (*domain.Maintenance).SetID,
			IDOf:   (*domain.Maintenance).GetID,
		}, maintenanceMessages, recorder),
		assessments: crud.NewResource(resourceAssessment, crud.Backend[domain.Assessment]{
			List:   assessmentClient.ListAssessments,
			Update: assessmentClient.UpdateAssessment,
			SetID:  (*domain.Assessment).SetID,
			IDOf:   (*domain.Assessment).GetID,
		}, assessmentMessages, recorder),
	}
}

func (s *Service) ListMaintenances(ctx context.Context, q listing.Query) (listing.Page[domain.Maintenance], error) {
	return s.maintenances.List(ctx, q)
}

// UpdateMaintenance valida e normaliza o horário (HH:MM) antes de enviar
func (s *Service) UpdateMaintenance(ctx context.Context, id int64, maintenance *domain.Maintenance) (*domain.FormResult[domain.Maintenance], error) {
	normalizeClock(&maintenance.ScheduledTime)
	return s.maintenances.Update(ctx, id, maintenance)
}

func (s *Service) UpdateMaintenanceStatus(ctx context.Context, change *domain.StatusChange) (*domain.ActionResult[domain.Maintenance], error) {
	if err := usecases.ValidateStatus(change, maintenanceStatuses); err != nil {
		return nil, err
	}

	resourceID := strconv.FormatInt(change.ID, 10)
	if err := s.maintenanceClient.UpdateMaintenanceStatus(ctx, change); err != nil {
		return nil, s.maintenances.Failure(ctx, auditing.ActionStatusChange, resourceID, err, messageStatusFailed)
	}

	return s.maintenances.Completed(ctx, auditing.ActionStatusChange, resourceID, messageStatusUpdated), nil
}

// AssignOptions busca a manutenção e a lista de agentes para o dropdown
func (s *Service) AssignOptions(ctx context.Context, maintenanceID int64) (*AssignOptions, error) {
	if maintenanceID <= 0 {
		return nil, usecases.NewActionError(usecases.ErrInvalidID, apiErrors.ErrInvalidRequest, messageInvalidRequest)
	}

	maintenances, err := s.maintenances.Rows(ctx)
	if err != nil {
		return nil, err
	}

	idx := slices.IndexFunc(maintenances, func(m domain.Maintenance) bool {
		return m.ID == maintenanceID
	})
	if idx < 0 {
		return nil, usecases.NewActionError(usecases.ErrInvalidID, apiErrors.ErrEstateNotFound, messageNotFound)
	}

	agents, err := s.userClient.ListUsers(ctx, domain.UserRoleAgent)
	if err != nil {
		return nil, s.maintenances.Failure(ctx, auditing.ActionAssign, strconv.FormatInt(maintenanceID, 10), err, messageAgentsFailed)
	}

	return &AssignOptions{
		Maintenance: maintenances[idx],
		Agents:      agents,
	}, nil
}

func (s *Service) AssignMaintenance(ctx context.Context, assignment *domain.MaintenanceAssignment) (*domain.ActionResult[domain.Maintenance], error) {
	if err := usecases.Validate(assignment); err != nil {
		return nil, err
	}

	resourceID := strconv.FormatInt(assignment.MaintenanceID, 10)
	if err := s.maintenanceClient.AssignMaintenance(ctx, assignment); err != nil {
		return nil, s.maintenances.Failure(ctx, auditing.ActionAssign, resourceID, err, messageAssignFailed)
	}

	return s.maintenances.Completed(ctx, auditing.ActionAssign, resourceID, messageAssigned), nil
}

func (s *Service) ListAssessments(ctx context.Context, q listing.Query) (listing.Page[domain.Assessment], error) {
	return s.assessments.List(ctx, q)
}

func (s *Service) UpdateAssessment(ctx context.Context, id int64, assessment *domain.Assessment) (*domain.FormResult[domain.Assessment], error) {
	normalizeClock(&assessment.VisitTime)
	return s.assessments.Update(ctx, id, assessment)
}

func (s *Service) UpdateVisitStatus(ctx context.Context, change *domain.StatusChange) (*domain.ActionResult[domain.Assessment], error) {
	if err := usecases.ValidateStatus(change, visitStatuses); err != nil {
		return nil, err
	}

	resourceID := strconv.FormatInt(change.ID, 10)
	if err := s.assessmentClient.UpdateVisitStatus(ctx, change); err != nil {
		return nil, s.assessments.Failure(ctx, auditing.ActionStatusChange, resourceID, err, messageStatusFailed)
	}

	return s.assessments.Completed(ctx, auditing.ActionStatusChange, resourceID, messageStatusUpdated), nil
}

// normalizeClock reescreve o horário com zero à esquerda; valores inválidos
// ficam como estão para a validação recusar
func normalizeClock(value *string) {
	if normalized, err := utils.NormalizeClock(*value); err == nil {
		*value = normalized
	}
}
