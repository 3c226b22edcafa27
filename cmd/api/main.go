package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/source"
	"github.com/vfg2006/sales-dashboard/internal/api"
	"github.com/vfg2006/sales-dashboard/internal/cache"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/internal/scheduler"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		// Sem configuração válida o servidor não sobe
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, err := source.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir a origem de dados")
	}
	defer src.Close()

	snapshots := cache.NewSingleSlot[*domain.Snapshot](cfg.Dashboard.CacheTTL)
	dashboardService := dashboard.NewService(src, snapshots, cfg.Dashboard)

	snapshotRefreshService := scheduler.NewSnapshotRefreshService(dashboardService, cfg)
	if err := snapshotRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o aquecimento do snapshot")
	} else if cfg.SnapshotRefresh.Enabled {
		logrus.Info("Aquecimento do snapshot iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, snapshotRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
