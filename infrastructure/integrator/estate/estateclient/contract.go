package estateclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/estate-admin-api/internal/domain"
)

//go:generate mockgen -source=contract.go -destination=../mocks/contract.go -package=mocks

type CustomerClient interface {
	ListClients(ctx context.Context) ([]domain.Client, error)
	ListContractedClients(ctx context.Context) ([]domain.Client, error)
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id int64) error
}

type ContractClient interface {
	ListContracts(ctx context.Context) ([]domain.Contract, error)
	GetContract(ctx context.Context, id int64) (*domain.Contract, error)
	CreateContract(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	UpdateContract(ctx context.Context, contract *domain.Contract) (*domain.Contract, error)
	DeleteContract(ctx context.Context, id int64) error
	PayInstallment(ctx context.Context, payment *domain.InstallmentPayment) error
	ListExpiredContracts(ctx context.Context) ([]domain.Contract, error)
}

type TransactionClient interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

func (c *EstateClient) ListClients(ctx context.Context) ([]domain.Client, error) {
	return list[domain.Client](ctx, c, pathClients, nil)
}

func (c *EstateClient) ListContractedClients(ctx context.Context) ([]domain.Client, error) {
	return list[domain.Client](ctx, c, pathContractedClients, nil)
}

func (c *EstateClient) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	return save(ctx, c, http.MethodPost, pathCreateClient, client)
}

func (c *EstateClient) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	return save(ctx, c, http.MethodPut, pathEditClient, client)
}

func (c *EstateClient) DeleteClient(ctx context.Context, id int64) error {
	return remove(ctx, c, pathDeleteClient, id)
}

func (c *EstateClient) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	return list[domain.Contract](ctx, c, pathContracts, nil)
}

func (c *EstateClient) GetContract(ctx context.Context, id int64) (*domain.Contract, error) {
	var contract domain.Contract
	err := c.do(ctx, request{method: http.MethodGet, path: pathContractDetails, query: idQuery(id)}, &contract)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (c *EstateClient) CreateContract(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	return save(ctx, c, http.MethodPost, pathCreateContract, contract)
}

func (c *EstateClient) UpdateContract(ctx context.Context, contract *domain.Contract) (*domain.Contract, error) {
	return save(ctx, c, http.MethodPut, pathEditContract, contract)
}

func (c *EstateClient) DeleteContract(ctx context.Context, id int64) error {
	return remove(ctx, c, pathRemoveContract, id)
}

// PayInstallment envia a flag de pagamento e o valor; o backend calcula o restante
func (c *EstateClient) PayInstallment(ctx context.Context, payment *domain.InstallmentPayment) error {
	return c.do(ctx, request{method: http.MethodPost, path: pathPayInstallment, body: payment}, nil)
}

func (c *EstateClient) ListExpiredContracts(ctx context.Context) ([]domain.Contract, error) {
	return list[domain.Contract](ctx, c, pathExpiredContracts, nil)
}

func (c *EstateClient) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return list[domain.Transaction](ctx, c, pathTransactions, nil)
}
