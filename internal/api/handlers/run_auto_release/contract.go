package run_auto_release

import (
	"context"

	autoRelease "github.com/m04kA/SMC-PrepRoomService/internal/usecase/auto_release"
)

type AutoReleaseUseCase interface {
	Execute(ctx context.Context) (*autoRelease.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
