package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IsaacDSC/trendforge/cmd/setup"
	"github.com/IsaacDSC/trendforge/internal/agent"
	"github.com/IsaacDSC/trendforge/internal/billing"
	"github.com/IsaacDSC/trendforge/internal/cfg"
	"github.com/IsaacDSC/trendforge/internal/domain"
	"github.com/IsaacDSC/trendforge/internal/entitlement"
	"github.com/IsaacDSC/trendforge/internal/llm"
	"github.com/IsaacDSC/trendforge/internal/publishq"
	"github.com/IsaacDSC/trendforge/internal/trendsvc"
	"github.com/IsaacDSC/trendforge/internal/web"
	"github.com/IsaacDSC/trendforge/internal/whop"
	"github.com/IsaacDSC/trendforge/pkg/cachemanager"
	"github.com/IsaacDSC/trendforge/pkg/httpclient"
	"github.com/IsaacDSC/trendforge/pkg/logs"
	"github.com/IsaacDSC/trendforge/pkg/retry"
	"github.com/IsaacDSC/trendforge/pkg/ttlcache"
	"github.com/benbjohnson/clock"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const appName = "trendforge"

// go run ./cmd/api --service=server
// go run ./cmd/api --service=worker
// go run ./cmd/api [--service=all]
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logs.Warn("could not load .env", "error", err)
	}

	conf := cfg.Get()
	logs.SetDefault(logs.New(
		logs.WithLevel(logs.ParseLevel(conf.LogLevel)),
		logs.WithJSONFormat(conf.LogJSON),
		logs.WithService(appName),
	))

	service := flag.String("service", "all", "service to run: server, worker or all")
	flag.Parse()

	runServer := *service == "all" || *service == "server"
	runWorker := *service == "all" || *service == "worker"
	if !runServer && !runWorker {
		fatal("unknown service", "service", *service)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := setup.NewRepository(ctx, conf.ConfigDatabase)
	if err != nil {
		fatal("could not open profile store", "driver", conf.ConfigDatabase.Driver, "error", err)
	}

	redisClient := redis.NewClient(&redis.Options{Addr: conf.Cache.CacheAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		fatal("could not reach redis", "addr", conf.Cache.CacheAddr, "error", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: conf.Cache.CacheAddr})

	retryOpts := []retry.Option{
		retry.WithMaxRetries(conf.Retry.MaxRetries),
		retry.WithInitialDelay(conf.Retry.InitialDelay),
		retry.WithMaxDelay(conf.Retry.MaxDelay),
	}

	clk := clock.New()

	whopClient := whop.New(conf.Whop.APIKey,
		whop.WithBaseURL(conf.Whop.BaseURL),
		whop.WithRetry(retryOpts...),
	)

	var server *http.Server
	if runServer {
		llmClient := llm.New(conf.OpenAI.APIKey,
			llm.WithBaseURL(conf.OpenAI.BaseURL),
			llm.WithModel(conf.OpenAI.Model),
			llm.WithRetry(retryOpts...),
		)

		trendCache := ttlcache.New[string, []domain.Trend](conf.Cache.TrendTTL, ttlcache.WithClock[string, []domain.Trend](clk))

		var ideasCache cachemanager.Cache
		if conf.Cache.IdeasCacheEnabled {
			ideasCache = cachemanager.NewStrategy(appName, redisClient)
		}

		stripeLookup := billing.NewAPILookup(conf.Stripe.SecretKey, httpclient.NewHTTPClientWithLogging(80*time.Second, false))

		whopTier, err := domain.ParseTier(conf.Whop.SubscriptionTier)
		if err != nil {
			fatal("invalid WHOP_SUBSCRIPTION_TIER", "tier", conf.Whop.SubscriptionTier, "error", err)
		}

		routes := web.Routes(web.Dependencies{
			Trends:       trendsvc.NewService(trendCache, agent.NewScout(llmClient, clk)),
			Ideas:        agent.NewAthena(llmClient, clk),
			IdeasCache:   ideasCache,
			Blueprints:   agent.NewHermes(llmClient, clk),
			Assets:       agent.NewForge(llmClient, clk),
			Entitlements: entitlement.NewService(repo, clk),
			Publish:      publishq.NewPublisher(asynqClient),
			Billing: billing.NewService(repo, stripeLookup, billing.Config{
				WebhookSecret: conf.Stripe.WebhookSecret,
				PricePro:      conf.Stripe.PricePro,
				PriceAgency:   conf.Stripe.PriceAgency,
				AppURL:        conf.Stripe.AppURL,
			}),
			WhopWebhook: billing.NewWhopWebhook(repo, conf.Whop.WebhookSecret, whopTier),
			History:     repo,
		})

		server = setup.StartHttpServer(conf, routes)
	}

	var worker *asynq.Server
	if runWorker {
		worker, err = setup.StartWorker(conf, publishq.NewHandler(whopClient, repo, clk).AsynqHandle())
		if err != nil {
			fatal("could not start worker", "error", err)
		}
	}

	<-ctx.Done()

	waitForShutdown(conf.Server.ShutdownTimeout, server, worker, func(ctx context.Context) {
		if err := asynqClient.Close(); err != nil {
			logs.Warn("asynq client close", "error", err)
		}
		if err := redisClient.Close(); err != nil {
			logs.Warn("redis close", "error", err)
		}
		if err := closeRepo(ctx); err != nil {
			logs.Warn("profile store close", "error", err)
		}
	})
}

func waitForShutdown(timeout time.Duration, server *http.Server, worker *asynq.Server, closeDeps func(ctx context.Context)) {
	logs.Info("Shutting down servers...")
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			logs.Error("API server shutdown", "error", err)
		}
		logs.Info("API server stopped", "elapsed_time", time.Since(start))
	}

	if worker != nil {
		worker.Shutdown()
		logs.Info("Worker stopped", "elapsed_time", time.Since(start))
	}

	closeDeps(ctx)

	logs.Info("All servers shutdown complete", "elapsed_time", time.Since(start))
}

func fatal(msg string, args ...any) {
	logs.Error(msg, args...)
	os.Exit(1)
}
