package asynqsvc

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
)

// AsynqHandle binds a task type to the function that processes it.
type AsynqHandle struct {
	TaskType string
	Handler  func(ctx context.Context, task *asynq.Task) error
}

// Register mounts every handle on mux. Empty or repeated task types are rejected before the
// worker starts, since asynq.ServeMux panics on them.
func Register(mux *asynq.ServeMux, handles ...AsynqHandle) error {
	seen := make(map[string]struct{}, len(handles))
	for _, h := range handles {
		if h.TaskType == "" || h.Handler == nil {
			return fmt.Errorf("asynq handle %q: task type and handler are required", h.TaskType)
		}
		if _, ok := seen[h.TaskType]; ok {
			return fmt.Errorf("asynq handle %q registered twice", h.TaskType)
		}
		seen[h.TaskType] = struct{}{}
		mux.HandleFunc(h.TaskType, h.Handler)
	}
	return nil
}
