package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-admin-api/infrastructure/database/postgres"
	"github.com/vfg2006/estate-admin-api/infrastructure/integrator/estate/estateclient"
	"github.com/vfg2006/estate-admin-api/infrastructure/migration/schema"
	"github.com/vfg2006/estate-admin-api/infrastructure/repository"
	"github.com/vfg2006/estate-admin-api/internal/api"
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
	"github.com/vfg2006/estate-admin-api/pkg/session"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := schema.Apply(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema do banco de dados")
	}

	auditRepo := repository.NewAuditRepository(pgConn)
	alertRepo := repository.NewExpiredContractAlertRepository(pgConn)

	var auditService auditing.AuditService = auditing.NopService{}
	if cfg.Audit.Enabled {
		auditService = auditing.NewService(auditRepo)
	} else {
		logrus.Info("Auditoria desabilitada por configuração")
	}

	estateClient := estateclient.NewClient(cfg)

	services := api.Services{
		Dashboard:   dashboard.NewService(estateClient),
		Property:    property.NewService(estateClient, estateClient, auditService),
		Contracting: contracting.NewService(estateClient, estateClient, estateClient, alertRepo, auditService),
		Servicing:   servicing.NewService(estateClient, estateClient, estateClient, auditService),
		Content:     content.NewService(estateClient, estateClient, estateClient, auditService),
		Marketing:   marketing.NewService(estateClient, auditService),
		Accounts:    accounts.NewService(estateClient, auditService),
		Audit:       auditService,
	}

	services.ExpiredContractsWatch = scheduler.NewExpiredContractsWatchService(estateClient, alertRepo, cfg)
	if err := services.ExpiredContractsWatch.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de contratos vencidos")
	}

	server, err := api.New(cfg, services, session.NewInspector(cfg.Auth.Secret), pgConn)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
