package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-admin-api/internal/api/handler"
	"github.com/vfg2006/estate-admin-api/internal/api/handler/router"
	"github.com/vfg2006/estate-admin-api/internal/config"
	"github.com/vfg2006/estate-admin-api/internal/scheduler"
	"github.com/vfg2006/estate-admin-api/internal/usecases/accounts"
	"github.com/vfg2006/estate-admin-api/internal/usecases/auditing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/content"
	"github.com/vfg2006/estate-admin-api/internal/usecases/contracting"
	"github.com/vfg2006/estate-admin-api/internal/usecases/dashboard"
	"github.com/vfg2006/estate-admin-api/internal/usecases/marketing"
	"github.com/vfg2006/estate-admin-api/internal/usecases/property"
	"github.com/vfg2006/estate-admin-api/internal/usecases/servicing"
	"github.com/vfg2006/estate-admin-api/pkg/middleware"
)

// Services reúne os casos de uso expostos pela API
type Services struct {
	Dashboard   dashboard.DashboardService
	Property    property.PropertyService
	Contracting contracting.ContractingService
	Servicing   servicing.ServicingService
	Content     content.ContentService
	Marketing   marketing.MarketingService
	Accounts    accounts.AccountsService
	Audit       auditing.AuditService

	ExpiredContractsWatch *scheduler.ExpiredContractsWatchService
}

type Server struct {
	httpServer *http.Server
}

// NewHandler monta o router com todas as rotas e a cadeia de middlewares globais
func NewHandler(cfg *config.Config, services Services, inspector middleware.TokenInspector, db handler.Pinger) http.Handler {
	handler.DefaultPageSize = cfg.Listing.DefaultPageSize

	cronServices := handler.CronJobServices{
		ExpiredContractsWatchService: services.ExpiredContractsWatch,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(db)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard)...),
		router.WithRoutes(handler.RealEstates(services.Property)...),
		router.WithRoutes(handler.Contracts(services.Contracting)...),
		router.WithRoutes(handler.Servicing(services.Servicing)...),
		router.WithRoutes(handler.Content(services.Content)...),
		router.WithRoutes(handler.Marketing(services.Marketing)...),
		router.WithRoutes(handler.Users(services.Accounts)...),
		router.WithRoutes(handler.Audit(services.Audit)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	logrus.WithField("routes", len(rt.Routes())).Debug("Rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(inspector),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services, inspector middleware.TokenInspector, db handler.Pinger) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services, inspector, db),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
