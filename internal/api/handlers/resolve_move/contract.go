package resolve_move

import (
	"context"

	resolveMove "github.com/m04kA/SMC-RackService/internal/usecase/resolve_move"
)

type ResolveMoveUseCase interface {
	Execute(ctx context.Context, req *resolveMove.Request) (*resolveMove.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
