// config предоставляет структуру конфигурации photofeed-service
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Политики сдвига offset после LoadMore.
const (
	// OffsetFixed — offset растёт на PageSize до отправки запроса.
	OffsetFixed = "fixed"
	// OffsetActual — offset растёт на фактическую длину страницы после ответа.
	OffsetActual = "actual"
	// OffsetRetry — как fixed, но неудачный LoadMore возвращает offset назад,
	// и та же страница запрашивается повторно.
	OffsetRetry = "retry"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env          string        `yaml:"env"    env:"ENV" env-default:"local"`
	HTTP         HTTPConfig    `yaml:"http"`
	DB           DBConfig      `yaml:"db"`
	Tumblr       TumblrConfig  `yaml:"tumblr"`
	Feed         FeedConfig    `yaml:"feed"`
	LimitsConfig LimitsConfig  `yaml:"limits"`
	Timeouts     TimeoutConfig `yaml:"timeouts"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Service — дедлайн HTTP-запроса к API сервиса.
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
	// Fetch — таймаут http.Client при обращении к Tumblr.
	Fetch time.Duration `yaml:"fetch" env:"FETCH_TIMEOUT" env-default:"10s"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// DBConfig — настройки подключения к журналу загрузок.
// Пустой URL отключает журнал.
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL"`
}

// TumblrConfig — параметры источника постов.
type TumblrConfig struct {
	// BaseURL — полный адрес эндпойнта posts/photo без query.
	BaseURL string `yaml:"base_url" env:"TUMBLR_BASE_URL" env-default:"https://api.tumblr.com/v2/blog/humansofnewyork.tumblr.com/posts/photo"`
	// APIKey — статический ключ, передаётся параметром api_key.
	APIKey string `yaml:"api_key" env:"TUMBLR_API_KEY" env-required:"true"`
	// Limit — параметр limit в запросе; 0 — не передавать (сервер отдаёт свои 20).
	Limit int `yaml:"limit" env:"TUMBLR_LIMIT" env-default:"0"`
}

// FeedConfig — поведение FeedLoader.
type FeedConfig struct {
	// PageSize — шаг offset для политики fixed.
	PageSize int `yaml:"page_size" env:"FEED_PAGE_SIZE" env-default:"20"`
	// OffsetPolicy — fixed | actual | retry.
	OffsetPolicy string `yaml:"offset_policy" env:"FEED_OFFSET_POLICY" env-default:"fixed"`
	// RefreshInterval — период автоматического Refresh; 0 отключает.
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"FEED_REFRESH_INTERVAL" env-default:"0s"`
}

// LimitsConfig — серверные лимиты на выдачу журнала.
type LimitsConfig struct {
	// Применяется при запросе с limit=0.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	// Верхняя граница для limit.
	Max int32 `yaml:"max" env:"MAX_LIMIT" env-default:"200"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	var (
		c   *Config
		err error
	)

	switch {
	case path != "":
		c, err = tryRead(path)
	case os.Getenv("CONFIG_PATH") != "":
		c, err = tryRead(os.Getenv("CONFIG_PATH"))
	default:
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			c, err = tryRead("local.yaml")
			break
		}

		if envErr := cleanenv.ReadEnv(&cfg); envErr != nil {
			return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", envErr)
		}
		c = &cfg
	}

	if err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Tumblr.APIKey == "" {
		return fmt.Errorf("tumblr.api_key is required")
	}

	u, err := url.Parse(c.Tumblr.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("tumblr.base_url must be an absolute http(s) URL")
	}

	if c.Tumblr.Limit < 0 {
		return fmt.Errorf("tumblr.limit must be >= 0")
	}
	if c.Feed.PageSize <= 0 {
		return fmt.Errorf("feed.page_size must be > 0")
	}
	switch c.Feed.OffsetPolicy {
	case OffsetFixed, OffsetActual, OffsetRetry:
	default:
		return fmt.Errorf("feed.offset_policy must be %q, %q or %q", OffsetFixed, OffsetActual, OffsetRetry)
	}
	if c.Feed.RefreshInterval != 0 && c.Feed.RefreshInterval < 10*time.Second {
		return fmt.Errorf("feed.refresh_interval must be 0 or at least 10s")
	}
	if c.LimitsConfig.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}
	if c.LimitsConfig.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}
	if c.LimitsConfig.Default > c.LimitsConfig.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}
	return nil
}
