package model

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// TaskStatus mirrors the lifecycle of a queued task.
type TaskStatus string

const (
	TaskPending TaskStatus = "PENDING"
	TaskStarted TaskStatus = "STARTED"
	TaskSuccess TaskStatus = "SUCCESS"
	TaskFailure TaskStatus = "FAILURE"
)

// TaskQueue is a broker that delivers tasks at least once.
type TaskQueue interface {
	Enqueue(ctx context.Context, task Task) error
	// Dequeue blocks up to timeout and moves the task into a processing list.
	// A nil task with nil error means the timeout elapsed.
	Dequeue(ctx context.Context, timeout time.Duration) (*Task, error)
	// Ack removes a finished task from the processing list.
	Ack(ctx context.Context, task Task) error
}

// TaskResultStore keeps task results for a limited time.
type TaskResultStore interface {
	SetResult(ctx context.Context, result TaskResult) error
	GetResult(ctx context.Context, id uuid.UUID) (TaskResult, error)
}

// Task is a unit of background work.
type Task struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Args       json.RawMessage `json:"args"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// TaskResult is the stored outcome of a task.
type TaskResult struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Status    TaskStatus `json:"status"`
	Result    string     `json:"result,omitempty"`
	Error     string     `json:"error,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TestTaskName is the demo task that echoes a word back.
const TestTaskName = "test"

// TestTaskArgs are the arguments of the demo task.
type TestTaskArgs struct {
	Word string `json:"word"`
}
