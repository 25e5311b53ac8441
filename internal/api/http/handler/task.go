package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/backend-template/internal/logger"
	"github.com/dtroode/backend-template/internal/model"
)

// TaskService submits background tasks and reads their results.
type TaskService interface {
	SubmitTest(ctx context.Context, word string) (model.TaskResult, error)
	Result(ctx context.Context, id uuid.UUID) (model.TaskResult, error)
}

type Task struct {
	taskService TaskService
	logger      *logger.Logger
}

func NewTask(taskService TaskService, logger *logger.Logger) *Task {
	return &Task{taskService: taskService, logger: logger}
}

// SubmitTest godoc
// @Summary      Enqueue the test task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     OAuth2PasswordBearer
// @Param        body  body  TestTaskRequest  true  "Word to echo"
// @Success      202  {object}  TaskResponse
// @Failure      422  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /tasks/test [post]
func (h *Task) SubmitTest(c *gin.Context) {
	var req TestTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Abort(c, fmt.Errorf("%w: %w", model.ErrInvalidUserParams, err))
		return
	}

	result, err := h.taskService.SubmitTest(c.Request.Context(), req.Word)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusAccepted, newTaskResponse(result))
}

// Result godoc
// @Summary      Task result
// @Tags         tasks
// @Produce      json
// @Security     OAuth2PasswordBearer
// @Param        id  path  string  true  "Task ID"
// @Success      200  {object}  TaskResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /tasks/{id} [get]
func (h *Task) Result(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.taskService.Result(c.Request.Context(), id)
	if err != nil {
		Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(result))
}
