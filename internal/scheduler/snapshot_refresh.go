// Package scheduler contém o agendador que mantém o snapshot do painel aquecido
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/internal/config"
)

// Refresher recalcula o snapshot do painel
type Refresher interface {
	Refresh(ctx context.Context) error
}

type SnapshotRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SnapshotRefreshService recalcula o snapshot em segundo plano para que as
// requisições não esperem pela leitura da origem
type SnapshotRefreshService struct {
	scheduler            *gocron.Scheduler
	refresher            Refresher
	config               SnapshotRefreshConfig
	refreshRunning       bool
	refreshMutex         sync.Mutex
	lastRefreshStartedAt time.Time
	lastRefreshEndedAt   time.Time
	lastRefreshError     string
}

func NewSnapshotRefreshService(refresher Refresher, cfg *config.Config) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: cfg.SnapshotRefresh.CronSchedule, // Default: a cada 5 minutos
		Enabled:      cfg.SnapshotRefresh.Enabled,      // Default: desabilitado
	}

	loc := cfg.Dashboard.Location
	if loc == nil {
		loc = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do aquecimento do snapshot carregada")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(loc),
		refresher: refresher,
		config:    refreshConfig,
	}
}

func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Aquecimento do snapshot desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento do snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshSnapshot(ctx); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento do snapshot")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento do snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de aquecimento do snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshSnapshot executa um recálculo, ignorando o disparo se outro já estiver em andamento
func (s *SnapshotRefreshService) RefreshSnapshot(ctx context.Context) error {
	s.refreshMutex.Lock()
	if s.refreshRunning {
		s.refreshMutex.Unlock()
		logrus.Warn("Aquecimento do snapshot já está em execução")
		return nil
	}
	s.refreshRunning = true
	s.lastRefreshStartedAt = time.Now()
	s.refreshMutex.Unlock()

	err := s.refresher.Refresh(ctx)

	s.refreshMutex.Lock()
	s.refreshRunning = false
	s.lastRefreshEndedAt = time.Now()
	s.lastRefreshError = ""
	if err != nil {
		s.lastRefreshError = err.Error()
	}
	s.refreshMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.Debug("Snapshot do painel aquecido")

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.refreshMutex.Lock()
	defer s.refreshMutex.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_cron":              s.config.CronSchedule,
		"refresh_running":           s.refreshRunning,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshEndedAt,
		"last_refresh_error":        s.lastRefreshError,
	}
}
