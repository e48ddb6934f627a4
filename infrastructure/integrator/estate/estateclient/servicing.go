package estateclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/domain"
)

//go:generate mockgen -source=servicing.go -destination=../mocks/servicing.go -package=mocks

type MaintenanceClient interface {
	ListMaintenances(ctx context.Context) ([]domain.Maintenance, error)
	UpdateMaintenance(ctx context.Context, maintenance *domain.Maintenance) (*domain.Maintenance, error)
	UpdateMaintenanceStatus(ctx context.Context, change *domain.StatusChange) error
	AssignMaintenance(ctx context.Context, assignment *domain.MaintenanceAssignment) error
}

type AssessmentClient interface {
	ListAssessments(ctx context.Context) ([]domain.Assessment, error)
	UpdateAssessment(ctx context.Context, assessment *domain.Assessment) (*domain.Assessment, error)
	UpdateVisitStatus(ctx context.Context, change *domain.StatusChange) error
}

func (c *EstateClient) ListMaintenances(ctx context.Context) ([]domain.Maintenance, error) {
	return list[domain.Maintenance](ctx, c, pathMaintenances, nil)
}

func (c *EstateClient) UpdateMaintenance(ctx context.Context, maintenance *domain.Maintenance) (*domain.Maintenance, error) {
	return save(ctx, c, http.MethodPut, pathEditMaintenance, maintenance)
}

func (c *EstateClient) UpdateMaintenanceStatus(ctx context.Context, change *domain.StatusChange) error {
	return c.do(ctx, request{method: http.MethodPut, path: pathMaintenanceStatus, body: change}, nil)
}

func (c *EstateClient) AssignMaintenance(ctx context.Context, assignment *domain.MaintenanceAssignment) error {
	return c.do(ctx, request{method: http.MethodPost, path: pathAssignMaintenance, body: assignment}, nil)
}

func (c *EstateClient) ListAssessments(ctx context.Context) ([]domain.Assessment, error) {
	return list[domain.Assessment](ctx, c, pathAssessments, nil)
}

func (c *EstateClient) UpdateAssessment(ctx context.Context, assessment *domain.Assessment) (*domain.Assessment, error) {
	return save(ctx, c, http.MethodPut, pathEditAssessment, assessment)
}

func (c *EstateClient) UpdateVisitStatus(ctx context.Context, change *domain.StatusChange) error {
	return c.do(ctx, request{method: http.MethodPut, path: pathVisitStatus, body: change}, nil)
}
