package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

var ErrTimeLimitExceeded = errors.New("task time limit exceeded")

// Options tune the worker loop.
type Options struct {
	Concurrency  int
	TimeLimit    time.Duration
	TrackStarted bool
	PollTimeout  time.Duration
	RetryDelay   time.Duration
}

// Worker consumes tasks from a queue and records their results.
type Worker struct {
	queue    model.TaskQueue
	results  model.TaskResultStore
	registry *Registry
	opts     Options
	logger   *logger.Logger
	now      func() time.Time
}

func New(queue model.TaskQueue, results model.TaskResultStore, registry *Registry, opts Options, logger *logger.Logger) *Worker {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 5 * time.Second
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}

	return &Worker{
		queue:    queue,
		results:  results,
		registry: registry,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

// Run consumes tasks until ctx is cancelled. Tasks already started run to
// completion or to their time limit.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("Worker: starting",
		"concurrency", w.opts.Concurrency,
		"time_limit", w.opts.TimeLimit)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < w.opts.Concurrency; i++ {
		g.Go(func() error {
			w.loop(ctx)
			return nil
		})
	}

	err := g.Wait()
	w.logger.Info("Worker: stopped")
	return err
}

func (w *Worker) loop(ctx context.Context) {
	for ctx.Err() == nil {
		task, err := w.queue.Dequeue(ctx, w.opts.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			w.logger.Error("Worker: failed to dequeue task",
				"error", err.Error())
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.opts.RetryDelay):
			}
			continue
		}
		if task == nil {
			continue
		}

		if err := w.Process(context.WithoutCancel(ctx), *task); err != nil {
			w.logger.Error("Worker: failed to process task",
				"task_id", task.ID,
				"name", task.Name,
				"error", err.Error())
		}
	}
}

// Process runs a single task, stores its outcome and acknowledges it.
// Handler failures are recorded as FAILURE results, not returned.
func (w *Worker) Process(ctx context.Context, task model.Task) error {
	log := w.logger.With("task_id", task.ID, "name", task.Name)

	if w.opts.TrackStarted {
		if err := w.store(ctx, task, model.TaskStarted, "", nil); err != nil {
			return err
		}
	}

	output, runErr := w.run(ctx, task)
	status := model.TaskSuccess
	if runErr != nil {
		status = model.TaskFailure
		log.Warn("Worker: task failed",
			"error", runErr.Error())
	} else {
		log.Info("Worker: task succeeded")
	}

	if err := w.store(ctx, task, status, output, runErr); err != nil {
		return err
	}

	if err := w.queue.Ack(ctx, task); err != nil {
		return fmt.Errorf("failed to ack task: %w", err)
	}
	return nil
}

func (w *Worker) run(ctx context.Context, task model.Task) (string, error) {
	handler, ok := w.registry.Lookup(task.Name)
	if !ok {
		return "", fmt.Errorf("unknown task %q", task.Name)
	}

	if w.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.opts.TimeLimit)
		defer cancel()
	}

	type outcome struct {
		output string
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("task panicked: %v", r)}
			}
		}()
		output, err := handler(ctx, task.Args)
		done <- outcome{output: output, err: err}
	}()

	select {
	case o := <-done:
		return o.output, o.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeLimitExceeded
		}
		return "", ctx.Err()
	}
}

func (w *Worker) store(ctx context.Context, task model.Task, status model.TaskStatus, output string, runErr error) error {
	result := model.TaskResult{
		ID:        task.ID,
		Name:      task.Name,
		Status:    status,
		Result:    output,
		UpdatedAt: w.now().UTC(),
	}
	if runErr != nil {
		result.Error = runErr.Error()
	}

	if err := w.results.SetResult(ctx, result); err != nil {
		return fmt.Errorf("failed to store %s result: %w", status, err)
	}
	return nil
}
