package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dtroode/backend-template/internal/model"
)

// Handler runs one task. It must return when ctx is done.
type Handler func(ctx context.Context, args json.RawMessage) (string, error)

// Registry maps task names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// NewDefaultRegistry returns a registry with the built-in tasks.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(model.TestTaskName, TestTaskHandler)
	return r
}

func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// TestTaskHandler echoes the word argument back.
func TestTaskHandler(ctx context.Context, raw json.RawMessage) (string, error) {
	var args model.TestTaskArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return "", fmt.Errorf("invalid test task args: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "test task return " + args.Word, nil
}
