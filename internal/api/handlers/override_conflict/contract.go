package override_conflict

import (
	"context"

	overrideConflict "github.com/m04kA/SMC-PrepRoomService/internal/usecase/override_conflict"
)

type OverrideConflictUseCase interface {
	Execute(ctx context.Context, req *overrideConflict.Request) (*overrideConflict.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
