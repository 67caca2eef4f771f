package export_rack_kpis

import (
	"context"

	"github.com/m04kA/SMC-RackService/internal/usecase/get_rack_kpis"
)

// KPICalculator считает показатели шахматки по дням
type KPICalculator interface {
	Execute(ctx context.Context, req *get_rack_kpis.Request) (*get_rack_kpis.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
