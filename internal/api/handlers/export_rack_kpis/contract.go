package export_rack_kpis

import (
	"context"

	exportRackKPIs "github.com/m04kA/SMC-RackService/internal/usecase/export_rack_kpis"
)

type ExportRackKPIsUseCase interface {
	Execute(ctx context.Context, req *exportRackKPIs.Request) (*exportRackKPIs.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
