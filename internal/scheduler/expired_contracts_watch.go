package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/estate-admin-api/infrastructure/repository"
	"github.com/vfg2006/estate-admin-api/internal/config"
	"github.com/vfg2006/estate-admin-api/internal/domain"
	"github.com/vfg2006/estate-admin-api/pkg/log"
	"github.com/vfg2006/estate-admin-api/pkg/session"
)

// ErrWatchRunning indica que já existe uma varredura em andamento
var ErrWatchRunning = errors.New("varredura de contratos vencidos já em andamento")

// ExpiredContractsLister é a parte do cliente do backend usada pela varredura
type ExpiredContractsLister interface {
	ListExpiredContracts(ctx context.Context) ([]domain.Contract, error)
}

// ExpiredContractsWatchConfig representa a configuração do agendador de contratos vencidos
type ExpiredContractsWatchConfig struct {
	CronSchedule string
	ServiceToken string
	Enabled      bool
}

// WatchResult resume uma varredura
type WatchResult struct {
	Expired int `json:"expired"`
	NewSeen int `json:"new_seen"`
}

// ExpiredContractsWatchService consulta periodicamente os contratos vencidos e grava alertas
type ExpiredContractsWatchService struct {
	scheduler       *gocron.Scheduler
	config          ExpiredContractsWatchConfig
	contracts       ExpiredContractsLister
	alertRepository repository.ExpiredContractAlertRepository

	mutex           sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastResult      WatchResult
	lastError       string
}

func NewExpiredContractsWatchService(
	contracts ExpiredContractsLister,
	alertRepository repository.ExpiredContractAlertRepository,
	appConfig *config.Config,
) *ExpiredContractsWatchService {
	watchConfig := ExpiredContractsWatchConfig{
		CronSchedule: appConfig.ExpiredContractsWatch.CronSchedule,
		ServiceToken: appConfig.Estate.ServiceToken,
		Enabled:      appConfig.ExpiredContractsWatch.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     watchConfig.CronSchedule,
		"enabled":           watchConfig.Enabled,
		"has_service_token": watchConfig.ServiceToken != "",
	}).Info("Configuração do agendador de contratos vencidos carregada")

	return &ExpiredContractsWatchService{
		scheduler:       gocron.NewScheduler(time.Local),
		config:          watchConfig,
		contracts:       contracts,
		alertRepository: alertRepository,
	}
}

// Start inicia o agendador
func (s *ExpiredContractsWatchService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Varredura de contratos vencidos desabilitada por configuração")
		return nil
	}

	if s.config.ServiceToken == "" {
		logrus.Warn("ESTATE_SERVICE_TOKEN vazio: varredura de contratos vencidos não será agendada")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de contratos vencidos")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunOnce(context.Background()); err != nil && !errors.Is(err, ErrWatchRunning) {
			logrus.WithError(err).Error("Erro na varredura agendada de contratos vencidos")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de contratos vencidos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de contratos vencidos")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa uma varredura. Sem token na sessão usa o token de serviço.
func (s *ExpiredContractsWatchService) RunOnce(ctx context.Context) (*WatchResult, error) {
	if !s.begin() {
		logrus.Info("Varredura de contratos vencidos já em andamento, ignorando")
		return nil, ErrWatchRunning
	}
	return s.run(ctx)
}

// begin marca a varredura como em andamento; falso quando já existe uma
func (s *ExpiredContractsWatchService) begin() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	return true
}

// run executa a varredura já marcada por begin e libera a marca ao final
func (s *ExpiredContractsWatchService) run(ctx context.Context) (*WatchResult, error) {
	result, err := s.sweep(ctx)

	s.mutex.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
		s.lastResult = *result
	}
	s.mutex.Unlock()

	return result, err
}

func (s *ExpiredContractsWatchService) sweep(ctx context.Context) (*WatchResult, error) {
	if session.TokenFromContext(ctx) == "" {
		ctx = session.WithToken(ctx, s.config.ServiceToken)
	}
	if log.GetCorrelationID(ctx) == "" {
		ctx, _ = log.WithCorrelationID(ctx, "")
	}

	logger := log.ForContext(ctx)
	startTime := time.Now()
	logger.Info("Iniciando varredura de contratos vencidos")

	expired, err := s.contracts.ListExpiredContracts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar contratos vencidos")
	}

	newSeen, err := s.alertRepository.Upsert(ctx, expired)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar alertas de contratos vencidos")
	}

	if newSeen > 0 {
		logger.WithFields(log.Fields{
			"resource": "contract",
			"action":   "expired_watch",
		}).Warnf("%d contrato(s) vencido(s) encontrado(s) pela primeira vez", newSeen)
	}

	logger.Infof("Varredura de contratos vencidos concluída em %v: %d vencido(s)", time.Since(startTime), len(expired))

	return &WatchResult{Expired: len(expired), NewSeen: newSeen}, nil
}

// TriggerManualSync inicia manualmente uma varredura em segundo plano
func (s *ExpiredContractsWatchService) TriggerManualSync(ctx context.Context) bool {
	if !s.begin() {
		logrus.Info("Varredura de contratos vencidos já em andamento, ignorando solicitação manual")
		return false
	}

	// Copia token e correlação da requisição para a varredura em segundo plano
	runCtx := context.Background()
	if token := session.TokenFromContext(ctx); token != "" {
		runCtx = session.WithToken(runCtx, token)
	}
	if correlationID := log.GetCorrelationID(ctx); correlationID != "" {
		runCtx, _ = log.WithCorrelationID(runCtx, correlationID)
	}

	logrus.Info("Iniciando varredura manual de contratos vencidos")
	go func() {
		if _, err := s.run(runCtx); err != nil {
			logrus.WithError(err).Error("Erro na varredura manual de contratos vencidos")
		}
	}()
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ExpiredContractsWatchService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":                s.config.Enabled,
		"cron":                   s.config.CronSchedule,
		"running":                s.running,
		"last_run_started_at":    s.lastStartedAt,
		"last_run_completed_at":  s.lastCompletedAt,
		"last_run_expired_count": s.lastResult.Expired,
		"last_run_new_count":     s.lastResult.NewSeen,
		"last_run_error":         s.lastError,
	}
}
