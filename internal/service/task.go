package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

// Tasks submits background work and reads its results.
type Tasks struct {
	queue   model.TaskQueue
	results model.TaskResultStore
	logger  *logger.Logger
	now     func() time.Time
}

func NewTasks(queue model.TaskQueue, results model.TaskResultStore, logger *logger.Logger) *Tasks {
	return &Tasks{queue: queue, results: results, logger: logger, now: time.Now}
}

// Submit records a PENDING result and enqueues the task.
func (s *Tasks) Submit(ctx context.Context, name string, args any) (model.TaskResult, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return model.TaskResult{}, fmt.Errorf("failed to marshal task args: %w", err)
	}

	now := s.now().UTC()
	task := model.Task{
		ID:         uuid.New(),
		Name:       name,
		Args:       raw,
		EnqueuedAt: now,
	}
	pending := model.TaskResult{
		ID:        task.ID,
		Name:      name,
		Status:    model.TaskPending,
		UpdatedAt: now,
	}

	if err := s.results.SetResult(ctx, pending); err != nil {
		s.logger.ErrorContext(ctx, "Task service: failed to store pending result",
			"task_id", task.ID,
			"error", err.Error())
		return model.TaskResult{}, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err)
	}

	if err := s.queue.Enqueue(ctx, task); err != nil {
		s.logger.ErrorContext(ctx, "Task service: failed to enqueue task",
			"task_id", task.ID,
			"name", name,
			"error", err.Error())
		return model.TaskResult{}, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err)
	}

	s.logger.InfoContext(ctx, "Task service: task enqueued",
		"task_id", task.ID,
		"name", name)

	return pending, nil
}

// SubmitTest enqueues the demo task for word.
func (s *Tasks) SubmitTest(ctx context.Context, word string) (model.TaskResult, error) {
	return s.Submit(ctx, model.TestTaskName, model.TestTaskArgs{Word: word})
}

func (s *Tasks) Result(ctx context.Context, id uuid.UUID) (model.TaskResult, error) {
	result, err := s.results.GetResult(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.TaskResult{}, err
		}
		return model.TaskResult{}, fmt.Errorf("%w: %w", model.ErrDependencyUnavailable, err)
	}
	return result, nil
}
