package cfg

import (
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Server struct {
	Port            string        `env:"API_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
}

type ConfigDatabase struct {
	Driver string `env:"DB_DRIVER" env-default:"memory"`
	DbConn string `env:"DB_CONNECTION_STRING"`
	DbName string `env:"DB_NAME" env-default:"trendforge"`
}

type Cache struct {
	CacheAddr         string        `env:"CACHE_ADDR" env-default:"localhost:6379"`
	DefaultTTL        time.Duration `env:"CACHE_DEFAULT_TTL" env-default:"1h"`
	TrendTTL          time.Duration `env:"TREND_CACHE_TTL" env-default:"6h"`
	IdeasCacheEnabled bool          `env:"IDEAS_CACHE_ENABLED" env-default:"true"`
}

type OpenAI struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" env-default:"https://api.openai.com"`
	Model   string `env:"OPENAI_MODEL" env-default:"gpt-4-turbo-preview"`
}

type Whop struct {
	APIKey           string `env:"WHOP_API_KEY"`
	BaseURL          string `env:"WHOP_BASE_URL" env-default:"https://api.whop.com"`
	WebhookSecret    string `env:"WHOP_WEBHOOK_SECRET"`
	SubscriptionTier string `env:"WHOP_SUBSCRIPTION_TIER" env-default:"pro"`
}

type Stripe struct {
	SecretKey     string `env:"STRIPE_SECRET_KEY"`
	WebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`
	PricePro      string `env:"STRIPE_PRICE_PRO" env-default:"price_pro_monthly"`
	PriceAgency   string `env:"STRIPE_PRICE_AGENCY" env-default:"price_agency_monthly"`
	AppURL        string `env:"APP_URL" env-default:"http://localhost:3000"`
}

type AsynqConfig struct {
	Concurrency int `env:"WQ_CONCURRENCY" env-default:"10"`
}

type Retry struct {
	MaxRetries   int           `env:"RETRY_MAX" env-default:"3"`
	InitialDelay time.Duration `env:"RETRY_INITIAL_DELAY" env-default:"1s"`
	MaxDelay     time.Duration `env:"RETRY_MAX_DELAY" env-default:"10s"`
}

type Config struct {
	Server         Server
	ConfigDatabase ConfigDatabase
	Cache          Cache
	OpenAI         OpenAI
	Whop           Whop
	Stripe         Stripe
	AsynqConfig    AsynqConfig
	Retry          Retry
	LogLevel       string `env:"LOG_LEVEL" env-default:"info"`
	LogJSON        bool   `env:"LOG_JSON" env-default:"true"`
}

var (
	mu  sync.Mutex
	cfg *Config
)

// Get reads the environment once; later calls return the same values unless SetConfig replaced them.
func Get() Config {
	mu.Lock()
	defer mu.Unlock()

	if cfg != nil {
		return *cfg
	}

	var c Config
	if err := cleanenv.ReadEnv(&c); err != nil {
		panic(err)
	}

	cfg = &c
	return c
}

func SetConfig(c Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg = &c
}
