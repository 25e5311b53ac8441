package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/backend-template/internal/config"
	"github.com/dtroode/backend-template/internal/model"
)

const resultKeyPrefix = "task-result:"

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

var (
	_ model.TaskQueue       = (*Broker)(nil)
	_ model.TaskResultStore = (*Broker)(nil)
)

// Broker is a Redis list based task queue with late acknowledgement.
// Dequeued tasks stay in a processing list until they are acked, and
// RecoverProcessing moves leftovers back after a crash.
type Broker struct {
	client     redis.UniversalClient
	queueKey   string
	processKey string
	resultTTL  time.Duration

	mu       sync.Mutex
	inflight map[uuid.UUID]string
}

func NewBroker(client redis.UniversalClient, queue string, resultTTL time.Duration) *Broker {
	return &Broker{
		client:     client,
		queueKey:   "queue:" + queue,
		processKey: "queue:" + queue + ":processing",
		resultTTL:  resultTTL,
		inflight:   make(map[uuid.UUID]string),
	}
}

func (b *Broker) Enqueue(ctx context.Context, task model.Task) error {
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	if err := b.client.LPush(ctx, b.queueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to push task: %w", err)
	}
	return nil
}

func (b *Broker) Dequeue(ctx context.Context, timeout time.Duration) (*model.Task, error) {
	payload, err := b.client.BLMove(ctx, b.queueKey, b.processKey, "RIGHT", "LEFT", timeout).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop task: %w", err)
	}

	var task model.Task
	if err := json.Unmarshal([]byte(payload), &task); err != nil {
		// drop poison messages so they are not redelivered forever
		_ = b.client.LRem(ctx, b.processKey, 1, payload).Err()
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}

	b.mu.Lock()
	b.inflight[task.ID] = payload
	b.mu.Unlock()

	return &task, nil
}

func (b *Broker) Ack(ctx context.Context, task model.Task) error {
	b.mu.Lock()
	payload, ok := b.inflight[task.ID]
	delete(b.inflight, task.ID)
	b.mu.Unlock()

	if !ok {
		raw, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("failed to marshal task: %w", err)
		}
		payload = string(raw)
	}

	if err := b.client.LRem(ctx, b.processKey, 1, payload).Err(); err != nil {
		return fmt.Errorf("failed to ack task: %w", err)
	}
	return nil
}

// RecoverProcessing requeues tasks left unacknowledged by a previous run.
func (b *Broker) RecoverProcessing(ctx context.Context) (int, error) {
	moved := 0
	for {
		err := b.client.LMove(ctx, b.processKey, b.queueKey, "RIGHT", "RIGHT").Err()
		if errors.Is(err, redis.Nil) {
			return moved, nil
		}
		if err != nil {
			return moved, fmt.Errorf("failed to recover task: %w", err)
		}
		moved++
	}
}

// Len returns the number of tasks waiting in the queue.
func (b *Broker) Len(ctx context.Context) (int64, error) {
	return b.client.LLen(ctx, b.queueKey).Result()
}

func (b *Broker) SetResult(ctx context.Context, result model.TaskResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal task result: %w", err)
	}

	if err := b.client.Set(ctx, resultKeyPrefix+result.ID.String(), payload, b.resultTTL).Err(); err != nil {
		return fmt.Errorf("failed to store task result: %w", err)
	}
	return nil
}

func (b *Broker) GetResult(ctx context.Context, id uuid.UUID) (model.TaskResult, error) {
	payload, err := b.client.Get(ctx, resultKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.TaskResult{}, model.ErrNotFound
		}
		return model.TaskResult{}, fmt.Errorf("failed to get task result: %w", err)
	}

	var result model.TaskResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return model.TaskResult{}, fmt.Errorf("failed to unmarshal task result: %w", err)
	}
	return result, nil
}

func (b *Broker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
