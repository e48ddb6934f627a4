package marketing

import (
	"context"
	"strconv"

	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/crud"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
)

const resourceMarketingRequest = "marketing_request"

var requestMessages = crud.Messages{
	Empty:        "Nenhum pedido de marketing",
	FetchFailed:  "Erro ao buscar pedidos de marketing",
	Created:      "Pedido criado com sucesso",
	CreateFailed: "Erro ao criar pedido",
	Updated:      "Pedido atualizado com sucesso",
	UpdateFailed: "Erro ao atualizar pedido",
	Deleted:      "Pedido excluído com sucesso",
	DeleteFailed: "Erro ao excluir pedido",
}

const (
	messageStatusUpdated = "Status do pedido atualizado"
	messageStatusFailed  = "Erro ao atualizar status do pedido"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type MarketingService interface {
	ListRequests(ctx context.Context, q listing.Query) (listing.Page[domain.MarketingRequest], error)
	CreateRequest(ctx context.Context, request *domain.MarketingRequest) (*domain.FormResult[domain.MarketingRequest], error)
	UpdateRequest(ctx context.Context, id int64, request *domain.MarketingRequest) (*domain.FormResult[domain.MarketingRequest], error)
	UpdateRequestStatus(ctx context.Context, change *domain.StatusChange) (*domain.ActionResult[domain.MarketingRequest], error)
	DeleteRequest(ctx context.Context, id int64) (*domain.ActionResult[domain.MarketingRequest], error)
}

type Service struct {
	client   estateclient.MarketingClient
	requests *crud.Resource[domain.MarketingRequest]
}

func NewService(client estateclient.MarketingClient, recorder auditing.Recorder) MarketingService {
	return &Service{
		client: client,
		requests: crud.NewResource(resourceMarketingRequest, crud.Backend[domain.MarketingRequest]{
			List:   client.ListMarketingRequests,
			Create: client.CreateMarketingRequest,
			Update: client.UpdateMarketingRequest,
			Delete: client.DeleteMarketingRequest,
			SetID:  (*domain.MarketingRequest).SetID,
			IDOf:   (*domain.MarketingRequest).GetID,
		}, requestMessages, recorder),
	}
}

func (s *Service) ListRequests(ctx context.Context, q listing.Query) (listing.Page[domain.MarketingRequest], error) {
	return s.requests.List(ctx, q)
}

// CreateRequest cria o pedido; sem status informado ele entra como pendente
func (s *Service) CreateRequest(ctx context.Context, request *domain.MarketingRequest) (*domain.FormResult[domain.MarketingRequest], error) {
	if request.Status == "" {
		request.Status = domain.MarketingStatusPending
	}
	return s.requests.Create(ctx, request)
}

func (s *Service) UpdateRequest(ctx context.Context, id int64, request *domain.MarketingRequest) (*domain.FormResult[domain.MarketingRequest], error) {
	return s.requests.Update(ctx, id, request)
}

// UpdateRequestStatus move o pedido no fluxo pendente → concluído/cancelado
func (s *Service) UpdateRequestStatus(ctx context.Context, change *domain.StatusChange) (*domain.ActionResult[domain.MarketingRequest], error) {
	if err := usecases.ValidateStatus(change, domain.MarketingStatuses); err != nil {
		return nil, err
	}

	resourceID := strconv.FormatInt(change.ID, 10)
	if err := s.client.UpdateMarketingRequestStatus(ctx, change); err != nil {
		return nil, s.requests.Failure(ctx, auditing.ActionStatusChange, resourceID, err, messageStatusFailed)
	}

	return s.requests.Completed(ctx, auditing.ActionStatusChange, resourceID, messageStatusUpdated), nil
}

func (s *Service) DeleteRequest(ctx context.Context, id int64) (*domain.ActionResult[domain.MarketingRequest], error) {
	return s.requests.Delete(ctx, id)
}
