package propose_move

import (
	"context"

	proposeMove "github.com/m04kA/SMC-RackService/internal/usecase/propose_move"
)

type ProposeMoveUseCase interface {
	Execute(ctx context.Context, req *proposeMove.Request) (*proposeMove.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
