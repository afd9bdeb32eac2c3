package autorelease

import (
	"context"
	"time"

	autoRelease "github.com/m04kA/SMC-PrepRoomService/internal/usecase/auto_release"
)

// Sweeper проход авто-освобождения
type Sweeper interface {
	Execute(ctx context.Context) (*autoRelease.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Worker периодически запускает авто-освобождение бронирований без check-in
type Worker struct {
	sweeper  Sweeper
	interval time.Duration
	logger   Logger
}

// NewWorker создает воркер с интервалом между проходами
func NewWorker(sweeper Sweeper, interval time.Duration, logger Logger) *Worker {
	return &Worker{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Run выполняет проход сразу и затем каждые interval, пока не отменён ctx.
// Ошибка прохода логируется и не останавливает воркер.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("AutoReleaseWorker: started, interval=%s", w.interval)

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("AutoReleaseWorker: stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *Worker) sweep(ctx context.Context) {
	result, err := w.sweeper.Execute(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error("AutoReleaseWorker: sweep failed: %v", err)
		return
	}

	if result.Released > 0 {
		w.logger.Info("AutoReleaseWorker: released %d reservations", result.Released)
	}
}
