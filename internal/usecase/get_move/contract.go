package get_move

import "github.com/m04kA/SMC-RackService/internal/service/moves"

// MoveRegistry реестр ожидающих переносов
type MoveRegistry interface {
	View(hotelID, moveID string, fn func(m *moves.Move)) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
