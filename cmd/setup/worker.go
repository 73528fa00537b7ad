package setup

import (
	"github.com/IsaacDSC/trendforge/internal/cfg"
	"github.com/IsaacDSC/trendforge/pkg/asynqsvc"
	"github.com/IsaacDSC/trendforge/pkg/logs"
	"github.com/hibiken/asynq"
)

// StartWorker starts processing tasks in the background; stop it with Shutdown.
func StartWorker(conf cfg.Config, handles ...asynqsvc.AsynqHandle) (*asynq.Server, error) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: conf.Cache.CacheAddr},
		asynq.Config{
			Concurrency: conf.AsynqConfig.Concurrency,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   asynqLogAdapter{},
			LogLevel: asynq.WarnLevel,
		},
	)

	mux := asynq.NewServeMux()
	mux.Use(AsynqLogger)

	if err := asynqsvc.Register(mux, handles...); err != nil {
		return nil, err
	}

	if err := srv.Start(mux); err != nil {
		return nil, err
	}

	logs.Info("[*] Worker started", "concurrency", conf.AsynqConfig.Concurrency, "tasks", len(handles))

	return srv, nil
}

type asynqLogAdapter struct{}

func (asynqLogAdapter) Debug(args ...any) { logs.Debug("asynq", "msg", args) }
func (asynqLogAdapter) Info(args ...any)  { logs.Info("asynq", "msg", args) }
func (asynqLogAdapter) Warn(args ...any)  { logs.Warn("asynq", "msg", args) }
func (asynqLogAdapter) Error(args ...any) { logs.Error("asynq", "msg", args) }
func (asynqLogAdapter) Fatal(args ...any) { logs.Error("asynq fatal", "msg", args) }
