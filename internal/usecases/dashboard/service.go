// Package dashboard monta os contadores da página inicial do painel.
package dashboard

import (
	"context"
	"sync"

	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/internal/usecases"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
	"github.com/vfg2006/estate-admin-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

// SummaryClient reúne as listas lidas pelo resumo
type SummaryClient interface {
	ListContractedClients(ctx context.Context) ([]domain.Client, error)
	ListExpiredContracts(ctx context.Context) ([]domain.Contract, error)
	ListMaintenances(ctx context.Context) ([]domain.Maintenance, error)
	ListMarketingRequests(ctx context.Context) ([]domain.MarketingRequest, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

var _ SummaryClient = (estateclient.Client)(nil)

type DashboardService interface {
	Summary(ctx context.Context) (*domain.DashboardSummary, error)
}

type Service struct {
	client SummaryClient
}

func NewService(client SummaryClient) DashboardService {
	return &Service{client: client}
}

type source struct {
	name    string
	warning string
	fetch   func(ctx context.Context, summary *domain.DashboardSummary) error
}

// Summary consulta as cinco listas em paralelo. Uma fonte com erro fica zerada
// e gera um aviso; as demais seguem normalmente. Sem sessão nada é consultado.
func (s *Service) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	if session.TokenFromContext(ctx) == "" {
		return nil, usecases.BackendFailure(session.ErrMissingToken, usecases.MessageSessionExpired)
	}

	sources := []source{
		{
			name:    "contracted_clients",
			warning: "Não foi possível carregar os clientes com contrato",
			fetch: func(ctx context.Context, summary *domain.DashboardSummary) error {
				rows, err := s.client.ListContractedClients(ctx)
				summary.ContractedClients = len(rows)
				return err
			},
		},
		{
			name:    "expired_contracts",
			warning: "Não foi possível carregar os contratos vencidos",
			fetch: func(ctx context.Context, summary *domain.DashboardSummary) error {
				rows, err := s.client.ListExpiredContracts(ctx)
				summary.ExpiredContracts = len(rows)
				return err
			},
		},
		{
			name:    "maintenances",
			warning: "Não foi possível carregar as manutenções",
			fetch: func(ctx context.Context, summary *domain.DashboardSummary) error {
				rows, err := s.client.ListMaintenances(ctx)
				for _, m := range rows {
					if m.Status == domain.MaintenanceStatusPending {
						summary.PendingMaintenances++
					}
				}
				return err
			},
		},
		{
			name:    "marketing_requests",
			warning: "Não foi possível carregar os pedidos de marketing",
			fetch: func(ctx context.Context, summary *domain.DashboardSummary) error {
				rows, err := s.client.ListMarketingRequests(ctx)
				for _, r := range rows {
					if r.Status == "" || r.Status == domain.MarketingStatusPending {
						summary.PendingMarketing++
					}
				}
				return err
			},
		},
		{
			name:    "transactions",
			warning: "Não foi possível carregar as transações",
			fetch: func(ctx context.Context, summary *domain.DashboardSummary) error {
				rows, err := s.client.ListTransactions(ctx)
				amounts := make([]float64, 0, len(rows))
				for _, tx := range rows {
					amounts = append(amounts, tx.Amount)
				}
				summary.Transactions = len(rows)
				summary.TransactionsTotal = utils.SumAmounts(amounts...)
				return err
			},
		},
	}

	partials := make([]domain.DashboardSummary, len(sources))
	failures := make([]error, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src source) {
			defer wg.Done()
			failures[i] = src.fetch(ctx, &partials[i])
		}(i, src)
	}
	wg.Wait()

	summary := &domain.DashboardSummary{Notices: make([]domain.Notice, 0)}
	for i, src := range sources {
		if failures[i] != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"resource": src.name,
				"action":   "summary",
			}).WithError(failures[i]).Warn("Fonte do resumo indisponível")
			summary.Notices = append(summary.Notices, domain.Warning(src.warning))
			continue
		}

		p := partials[i]
		summary.ContractedClients += p.ContractedClients
		summary.ExpiredContracts += p.ExpiredContracts
		summary.PendingMaintenances += p.PendingMaintenances
		summary.PendingMarketing += p.PendingMarketing
		summary.Transactions += p.Transactions
		summary.TransactionsTotal += p.TransactionsTotal
	}

	return summary, nil
}
