// Package auditing registra as mutações feitas pelo painel.
package auditing

import (
	"context"

	"github.com/vfg2006/estate-admin-api/infrastructure/repository"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
)

const (
	ActionCreate       = "create"
	ActionUpdate       = "update"
	ActionDelete       = "delete"
	ActionStatusChange = "status_change"
	ActionAssign       = "assign"
	ActionPay          = "pay"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// Recorder grava uma mutação; falhas ficam só no log
type Recorder interface {
	Record(ctx context.Context, action, resource, resourceID string)
}

type AuditService interface {
	Recorder
	List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error)
}

type Service struct {
	repository repository.AuditRepository
}

func NewService(repo repository.AuditRepository) *Service {
	return &Service{repository: repo}
}

func (s *Service) Record(ctx context.Context, action, resource, resourceID string) {
	entry := &domain.AuditEntry{
		Action:        action,
		Resource:      resource,
		ResourceID:    resourceID,
		CorrelationID: log.GetCorrelationID(ctx),
	}
	if claims, ok := session.ClaimsFromContext(ctx); ok {
		entry.Actor = claims.Actor()
	}

	if err := s.repository.Save(ctx, entry); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"action":      action,
			"resource":    resource,
			"resource_id": resourceID,
		}).WithError(err).Error("Erro ao registrar auditoria")
	}
}

func (s *Service) List(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, error) {
	entries, err := s.repository.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar auditoria")
		return nil, usecases.NewActionError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar registros de auditoria")
	}
	return entries, nil
}

// NopRecorder é usado quando a auditoria está desligada
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, string, string, string) {}

// NopService atende a rota de auditoria quando ela está desligada
type NopService struct {
	NopRecorder
}

func (NopService) List(context.Context, domain.AuditFilter) ([]domain.AuditEntry, error) {
	return []domain.AuditEntry{}, nil
}
