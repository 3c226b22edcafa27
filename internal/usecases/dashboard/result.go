package dashboard

import (
	"errors"

	"github.com/vfg2006/sales-dashboard/internal/domain"
	"github.com/vfg2006/sales-dashboard/pkg/apiErrors"
)

// Failure descreve uma falha de montagem do painel
type Failure struct {
	Code    string
	Message string
	Err     error
}

// StatusResult é o resultado tipado de uma consulta ao painel: ou um snapshot ou uma falha
type StatusResult struct {
	Snapshot *domain.Snapshot
	Failure  *Failure
}

func (r StatusResult) OK() bool {
	return r.Failure == nil && r.Snapshot != nil
}

func success(snapshot *domain.Snapshot) StatusResult {
	return StatusResult{Snapshot: snapshot}
}

func failure(err error) StatusResult {
	f := &Failure{
		Code:    apiErrors.ErrInternalServer,
		Message: "Erro ao montar o painel",
		Err:     err,
	}

	switch {
	case errors.Is(err, domain.ErrSourceUnavailable):
		f.Code = apiErrors.ErrSourceUnavailable
		f.Message = "Não foi possível consultar a base de dados"
	case errors.Is(err, domain.ErrConfiguration):
		f.Code = apiErrors.ErrConfiguration
		f.Message = "Configuração da origem de dados inválida"
	}

	return StatusResult{Failure: f}
}
