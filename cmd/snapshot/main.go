// Comando snapshot monta o painel uma vez com a configuração atual e imprime o JSON.
// Serve para conferir credenciais e esquema sem subir o servidor.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard/infrastructure/source"
	"github.com/vfg2006/sales-dashboard/internal/config"
	"github.com/vfg2006/sales-dashboard/internal/usecases/dashboard"
	"github.com/vfg2006/sales-dashboard/pkg/log"
	"github.com/vfg2006/sales-dashboard/pkg/utils"
)

func main() {
	logrus.SetOutput(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	ctx := context.Background()

	src, err := source.Open(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao abrir a origem de dados")
	}
	defer src.Close()

	result := dashboard.NewService(src, nil, cfg.Dashboard).GetStatus(ctx)
	if !result.OK() {
		src.Close()
		logrus.WithError(result.Failure.Err).Fatalf("%s (%s)", result.Failure.Message, result.Failure.Code)
	}

	out, err := utils.PrettyJson(result.Snapshot)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao serializar o snapshot")
	}

	fmt.Println(out)
}
