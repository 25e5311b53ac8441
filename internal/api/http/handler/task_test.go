package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/backend-template/internal/model"
	"github.com/dtroode/backend-template/internal/testutil"
)

type taskSvcStub struct {
	result model.TaskResult
	err    error
	word   string
}

func (s *taskSvcStub) SubmitTest(_ context.Context, word string) (model.TaskResult, error) {
	s.word = word
	return s.result, s.err
}

func (s *taskSvcStub) Result(_ context.Context, _ uuid.UUID) (model.TaskResult, error) {
	return s.result, s.err
}

func newTaskEngine(svc TaskService) *gin.Engine {
	h := NewTask(svc, testutil.MakeNoopLogger())
	e := gin.New()
	e.POST("/tasks/test", h.SubmitTest)
	e.GET("/tasks/:id", h.Result)
	return e
}

func TestTask_SubmitTest(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
	}{
		{name: "accepted", body: `{"word":"hello"}`, wantCode: http.StatusAccepted},
		{name: "missing word", body: `{}`, wantCode: http.StatusUnprocessableEntity},
		{name: "queue down", body: `{"word":"hello"}`, svcErr: fmt.Errorf("%w: redis", model.ErrDependencyUnavailable), wantCode: http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &taskSvcStub{
				result: model.TaskResult{ID: id, Name: model.TestTaskName, Status: model.TaskPending},
				err:    tt.svcErr,
			}
			w := doJSON(newTaskEngine(svc), http.MethodPost, "/tasks/test", tt.body)
			require.Equal(t, tt.wantCode, w.Code, w.Body.String())

			if tt.wantCode == http.StatusAccepted {
				var resp TaskResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, id, resp.ID)
				assert.Equal(t, model.TaskPending, resp.Status)
				assert.Equal(t, "hello", svc.word)
			}
		})
	}
}

func TestTask_Result(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		svc := &taskSvcStub{result: model.TaskResult{ID: id, Name: model.TestTaskName, Status: model.TaskSuccess, Result: "test task return hello"}}
		w := doJSON(newTaskEngine(svc), http.MethodGet, "/tasks/"+id.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "test task return hello", resp.Result)
		assert.Equal(t, model.TaskSuccess, resp.Status)
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		svc := &taskSvcStub{err: model.ErrNotFound}
		w := doJSON(newTaskEngine(svc), http.MethodGet, "/tasks/"+id.String(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
