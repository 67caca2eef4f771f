package get_move

import (
	"context"

	getMove "github.com/m04kA/SMC-RackService/internal/usecase/get_move"
)

type GetMoveUseCase interface {
	Execute(ctx context.Context, req *getMove.Request) (*getMove.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
