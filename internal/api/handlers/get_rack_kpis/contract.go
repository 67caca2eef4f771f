package get_rack_kpis

import (
	"context"

	getRackKPIs "github.com/m04kA/SMC-RackService/internal/usecase/get_rack_kpis"
)

type GetRackKPIsUseCase interface {
	Execute(ctx context.Context, req *getRackKPIs.Request) (*getRackKPIs.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
