package publishq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/pkg/ctxlogger"
	"github.com/hibiken/asynq"
)

const TaskType = "publish:whop"

//go:generate mockgen -source=publisher.go -destination=mock_publisher.go -package=publishq
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

var _ Enqueuer = (*asynq.Client)(nil)

type Publisher struct {
	client Enqueuer
}

func NewPublisher(client Enqueuer) *Publisher {
	return &Publisher{client: client}
}

func DefaultOpts() []asynq.Option {
	return []asynq.Option{
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(168 * time.Hour), // 7 days
	}
}

// Enqueue schedules a publish job and returns its task id.
func (p *Publisher) Enqueue(ctx context.Context, req domain.PublishRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("could not marshal payload: %w", err)
	}

	info, err := p.client.EnqueueContext(ctx, asynq.NewTask(TaskType, payload), DefaultOpts()...)
	if err != nil {
		return "", fmt.Errorf("could not schedule task: %w", err)
	}

	ctxlogger.GetLogger(ctx).Info("enqueued publish task", "task_id", info.ID, "queue", info.Queue, "user_id", req.UserID)

	return info.ID, nil
}
