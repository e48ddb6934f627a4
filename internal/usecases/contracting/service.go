package contracting

import (
	"context"
	"fmt"
	"strconv"

	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/infrastructure/repository"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/crud"
	"github.com/vfg2006/estate-admin-api/internal/usecases/listing"
	"github.com/vfg2006/estate-admin-api/pkg/apiErrors"
	"github.com/vfg2006/estate-admin-api/pkg/log"
)

const (
	resourceClient      = "client"
	resourceContract    = "contract"
	resourceInstallment = "installment"
)

var clientMessages = crud.Messages{
	Empty:        "Nenhum cliente cadastrado",
	FetchFailed:  "Erro ao buscar clientes",
	Created:      "Cliente criado com sucesso",
	CreateFailed: "Erro ao criar cliente",
	Updated:      "Cliente atualizado com sucesso",
	UpdateFailed: "Erro ao atualizar cliente",
	Deleted:      "Cliente excluído com sucesso",
	DeleteFailed: "Erro ao excluir cliente",
}

var contractMessages = crud.Messages{
	Empty:        "Nenhum contrato cadastrado",
	FetchFailed:  "Erro ao buscar contratos",
	Created:      "Contrato criado com sucesso",
	CreateFailed: "Erro ao criar contrato",
	Updated:      "Contrato atualizado com sucesso",
	UpdateFailed: "Erro ao atualizar contrato",
	Deleted:      "Contrato removido com sucesso",
	DeleteFailed: "Erro ao remover contrato",
}

const (
	messageContractedEmpty   = "Nenhum cliente com contrato"
	messageExpiredEmpty      = "Nenhum contrato vencido"
	messageExpiredFailed     = "Erro ao buscar contratos vencidos"
	messageTransactionsEmpty = "Nenhuma transação registrada"
	messageTransactionsError = "Erro ao buscar transações"
	messagePaid              = "Parcela paga com sucesso"
	messagePayFailed         = "Erro ao pagar parcela"
	messageDetailsFailed     = "Erro ao buscar detalhes do contrato"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type ContractingService interface {
	ListClients(ctx context.Context, q listing.Query) (listing.Page[domain.Client], error)
	ListContractedClients(ctx context.Context, q listing.Query) (listing.Page[domain.Client], error)
	CreateClient(ctx context.Context, client *domain.Client) (*domain.FormResult[domain.Client], error)
	UpdateClient(ctx context.Context, id int64, client *domain.Client) (*domain.FormResult[domain.Client], error)
	DeleteClient(ctx context.Context, id int64) (*domain.ActionResult[domain.Client], error)

	ListContracts(ctx context.Context, q listing.Query) (listing.Page[domain.Contract], error)
	GetContract(ctx context.Context, id int64) (*domain.Contract, error)
	CreateContract(ctx context.Context, contract *domain.Contract) (*domain.FormResult[domain.Contract], error)
	UpdateContract(ctx context.Context, id int64, contract *domain.Contract) (*domain.FormResult[domain.Contract], error)
	DeleteContract(ctx context.Context, id int64) (*domain.ActionResult[domain.Contract], error)
	PayInstallment(ctx context.Context, payment *domain.InstallmentPayment) (*domain.ActionResult[domain.Installment], error)

	ListExpiredContracts(ctx context.Context, q listing.Query) (listing.Page[domain.Contract], error)
	ListExpiredAlerts(ctx context.Context, q listing.Query) (listing.Page[domain.ExpiredContractAlert], error)
	ListTransactions(ctx context.Context, q listing.Query) (listing.Page[domain.Transaction], error)
}

type Service struct {
	contractClient    estateclient.ContractClient
	customerClient    estateclient.CustomerClient
	transactionClient estateclient.TransactionClient
	alertRepository   repository.ExpiredContractAlertRepository
	recorder          auditing.Recorder

	clients   *crud.Resource[domain.Client]
	contracts *crud.Resource[domain.Contract]
}

func NewService(
	customerClient estateclient.CustomerClient,
	contractClient estateclient.ContractClient,
	transactionClient estateclient.TransactionClient,
	alertRepository repository.ExpiredContractAlertRepository,
	recorder auditing.Recorder,
) ContractingService {
	if recorder == nil {
		recorder = auditing.NopRecorder{}
	}

	return &Service{
		contractClient:    contractClient,
		customerClient:    customerClient,
		transactionClient: transactionClient,
		alertRepository:   alertRepository,
		recorder:          recorder,
		clients: crud.NewResource(resourceClient, crud.Backend[domain.Client]{
			List:   customerClient.ListClients,
			Create: customerClient.CreateClient,
			Update: customerClient.UpdateClient,
			Delete: customerClient.DeleteClient,
			SetID:  (*domain.Client).SetID,
			IDOf:   (*domain.Client).GetID,
		}, clientMessages, recorder),
		contracts: crud.NewResource(resourceContract, crud.Backend[domain.Contract]{
			List:   contractClient.ListContracts,
			Create: contractClient.CreateContract,
			Update: contractClient.UpdateContract,
			Delete: contractClient.DeleteContract,
			SetID:  (*domain.Contract).SetID,
			IDOf:   (*domain.Contract).GetID,
		}, contractMessages, recorder),
	}
}

func (s *Service) ListClients(ctx context.Context, q listing.Query) (listing.Page[domain.Client], error) {
	return s.clients.List(ctx, q)
}

// ListContractedClients lista apenas os clientes com contrato ativo
func (s *Service) ListContractedClients(ctx context.Context, q listing.Query) (listing.Page[domain.Client], error) {
	rows, err := s.customerClient.ListContractedClients(ctx)
	if err != nil {
		return s.clients.FetchFailure(ctx, q, err)
	}
	return listing.Build(rows, q, messageContractedEmpty), nil
}

func (s *Service) CreateClient(ctx context.Context, client *domain.Client) (*domain.FormResult[domain.Client], error) {
	return s.clients.Create(ctx, client)
}

func (s *Service) UpdateClient(ctx context.Context, id int64, client *domain.Client) (*domain.FormResult[domain.Client], error) {
	return s.clients.Update(ctx, id, client)
}

func (s *Service) DeleteClient(ctx context.Context, id int64) (*domain.ActionResult[domain.Client], error) {
	return s.clients.Delete(ctx, id)
}

func (s *Service) ListContracts(ctx context.Context, q listing.Query) (listing.Page[domain.Contract], error) {
	return s.contracts.List(ctx, q)
}

func (s *Service) GetContract(ctx context.Context, id int64) (*domain.Contract, error) {
	if id <= 0 {
		return nil, usecases.NewActionError(usecases.ErrInvalidID, apiErrors.ErrInvalidRequest, messageDetailsFailed)
	}

	contract, err := s.contractClient.GetContract(ctx, id)
	if err != nil {
		return nil, s.contracts.Failure(ctx, "details", strconv.FormatInt(id, 10), err, messageDetailsFailed)
	}

	return contract, nil
}

func (s *Service) CreateContract(ctx context.Context, contract *domain.Contract) (*domain.FormResult[domain.Contract], error) {
	return s.contracts.Create(ctx, contract)
}

func (s *Service) UpdateContract(ctx context.Context, id int64, contract *domain.Contract) (*domain.FormResult[domain.Contract], error) {
	return s.contracts.Update(ctx, id, contract)
}

func (s *Service) DeleteContract(ctx context.Context, id int64) (*domain.ActionResult[domain.Contract], error) {
	return s.contracts.Delete(ctx, id)
}

// PayInstallment quita a parcela e devolve as parcelas recarregadas do contrato
func (s *Service) PayInstallment(ctx context.Context, payment *domain.InstallmentPayment) (*domain.ActionResult[domain.Installment], error) {
	payment.Paid = true
	if err := usecases.Validate(payment); err != nil {
		return nil, err
	}

	resourceID := fmt.Sprintf("%d/%d", payment.ContractID, payment.InstallmentID)
	if err := s.contractClient.PayInstallment(ctx, payment); err != nil {
		return nil, s.contracts.Failure(ctx, auditing.ActionPay, resourceID, err, messagePayFailed)
	}

	s.recorder.Record(ctx, auditing.ActionPay, resourceInstallment, resourceID)

	installments := make([]domain.Installment, 0)
	contract, err := s.contractClient.GetContract(ctx, payment.ContractID)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"resource":    resourceInstallment,
			"resource_id": resourceID,
		}).WithError(err).Warn("Parcela paga, mas o contrato não pôde ser recarregado")
	} else if contract.Installments != nil {
		installments = contract.Installments
	}

	return &domain.ActionResult[domain.Installment]{
		Notice: domain.Success(messagePaid),
		Rows:   installments,
	}, nil
}

func (s *Service) ListExpiredContracts(ctx context.Context, q listing.Query) (listing.Page[domain.Contract], error) {
	rows, err := s.contractClient.ListExpiredContracts(ctx)
	if err != nil {
		actionErr := usecases.BackendFailure(err, messageExpiredFailed)
		return usecases.FetchFailed[domain.Contract](q, messageExpiredEmpty, actionErr)
	}
	return listing.Build(rows, q, messageExpiredEmpty), nil
}

// ListExpiredAlerts lista os alertas gravados pelo agendador de contratos vencidos
func (s *Service) ListExpiredAlerts(ctx context.Context, q listing.Query) (listing.Page[domain.ExpiredContractAlert], error) {
	alerts, err := s.alertRepository.List(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar alertas de contratos vencidos")
		actionErr := usecases.NewActionError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar alertas de contratos vencidos")
		return usecases.FetchFailed[domain.ExpiredContractAlert](q, messageExpiredEmpty, actionErr)
	}
	return listing.Build(alerts, q, messageExpiredEmpty), nil
}

func (s *Service) ListTransactions(ctx context.Context, q listing.Query) (listing.Page[domain.Transaction], error) {
	rows, err := s.transactionClient.ListTransactions(ctx)
	if err != nil {
		actionErr := usecases.BackendFailure(err, messageTransactionsError)
		return usecases.FetchFailed[domain.Transaction](q, messageTransactionsEmpty, actionErr)
	}
	return listing.Build(rows, q, messageTransactionsEmpty), nil
}
