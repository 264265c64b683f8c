package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"brokerage/pkg/logger"
)

// Task — периодическая фоновая задача.
type Task interface {
	// TTL возвращает интервал между запусками.
	TTL() time.Duration

	// Do выполняет задачу.
	Do(context.Context) error

	// Info возвращает описание задачи для логов.
	Info() string
}

type workerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker запускает набор фоновых задач.
//
// Все задачи прогреваются синхронно при создании: каждая выполняется один раз,
// и ошибка любой из них не даёт приложению стартовать. Дальше задачи крутятся
// по тикеру до отмены контекста.
type Worker struct {
	log   workerLogger
	tasks []Task
}

func New(ctx context.Context, log workerLogger, tasks []Task) (*Worker, error) {
	w := &Worker{
		log:   log,
		tasks: tasks,
	}

	if len(tasks) == 0 {
		return w, nil
	}

	if err := w.warmUp(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go w.loop(ctx, task)
	}

	return w, nil
}

func (w *Worker) warmUp(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	for _, task := range w.tasks {
		group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("init panic: %v\n%s", r, debug.Stack())
				}
			}()
			w.log.Info("Initializing background task",
				logger.NewField("task", task.Info()),
			)
			return task.Do(groupCtx)
		})
	}
	return group.Wait()
}

func (w *Worker) loop(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}

	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Warn("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.runOnce(ctx, task)
		}
	}
}

func (w *Worker) runOnce(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", debug.Stack()),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
