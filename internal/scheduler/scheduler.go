package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

var (
	// ErrInvalidSchedule возвращается для некорректного cron выражения
	ErrInvalidSchedule = errors.New("scheduler: invalid schedule")
)

// Logger интерфейс для логирования
// Printf нужен адаптеру cron.PrintfLogger
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Printf(format string, v ...interface{})
}

// Job периодическая задача
type Job func(ctx context.Context) error

// Scheduler запускает задачи по cron расписанию
// Задача не запускается повторно, пока предыдущий запуск не завершился
type Scheduler struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
	logger  Logger
}

// New создает планировщик, timeout ограничивает один запуск задачи (0 - без ограничения)
func New(timeout time.Duration, location *time.Location, logger Logger) *Scheduler {
	if location == nil {
		location = time.Local
	}
	cronLogger := cron.PrintfLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(location),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		ctx:     ctx,
		cancel:  cancel,
		timeout: timeout,
		logger:  logger,
	}
}

// Add регистрирует задачу name по расписанию spec (стандартный 5-польный формат)
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, job)
	})
	if err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrInvalidSchedule, name, spec, err)
	}

	s.logger.Info("Scheduler: job %s registered with schedule %q", name, spec)
	return nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop останавливает планировщик и ждет завершения запущенных задач или отмены ctx
func (s *Scheduler) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()

	select {
	case <-stopped.Done():
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		return ctx.Err()
	}
}

func (s *Scheduler) run(name string, job Job) {
	ctx := s.ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	s.logger.Info("Scheduler: job %s started", name)

	if err := job(ctx); err != nil {
		s.logger.Error("Scheduler: job %s failed after %s: %v", name, time.Since(start), err)
		return
	}

	s.logger.Info("Scheduler: job %s finished in %s", name, time.Since(start))
}
