package config

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRunAddress    = "localhost:8081"
	defaultPageSecret    = "default-secret-change-in-production"
	defaultPageTTL       = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// Config содержит конфигурацию приложения.
type Config struct {
	RunAddress      string
	PayMallURL      string
	PageSecret      string
	PageTTL         time.Duration
	SweepInterval   time.Duration
	RequestTimeout  time.Duration
	SystemClipboard bool
}

// Load загружает конфигурацию из .env, флагов командной строки и переменных окружения.
// Приоритет: переменные окружения > флаги > значения по умолчанию.
// Переменные из .env не перекрывают уже заданные в окружении.
func Load() *Config {
	loadDotEnv(".env")

	cfg := &Config{}

	var pageTTL, sweepInterval, requestTimeout string
	flag.StringVar(&cfg.RunAddress, "a", defaultRunAddress, "адрес и порт запуска сервиса")
	flag.StringVar(&cfg.PayMallURL, "m", "", "базовый адрес pay-mall")
	flag.StringVar(&pageTTL, "ttl", defaultPageTTL.String(), "время жизни неактивной страницы")
	flag.StringVar(&sweepInterval, "sweep", defaultSweepInterval.String(), "период очистки неактивных страниц")
	flag.StringVar(&requestTimeout, "t", "0", "таймаут запросов к pay-mall, 0 отключает таймаут")
	flag.BoolVar(&cfg.SystemClipboard, "clipboard", false, "копировать в системный буфер обмена")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDRESS"); envRunAddr != "" {
		cfg.RunAddress = envRunAddr
	}
	if envPayMall := os.Getenv("PAY_MALL_URL"); envPayMall != "" {
		cfg.PayMallURL = envPayMall
	}
	if envTTL := os.Getenv("PAGE_TTL"); envTTL != "" {
		pageTTL = envTTL
	}
	if envSweep := os.Getenv("SWEEP_INTERVAL"); envSweep != "" {
		sweepInterval = envSweep
	}
	if envTimeout := os.Getenv("REQUEST_TIMEOUT"); envTimeout != "" {
		requestTimeout = envTimeout
	}
	if envClipboard := os.Getenv("SYSTEM_CLIPBOARD"); envClipboard != "" {
		if v, err := strconv.ParseBool(envClipboard); err == nil {
			cfg.SystemClipboard = v
		}
	}

	cfg.PageSecret = os.Getenv("PAGE_SECRET")
	if cfg.PageSecret == "" {
		cfg.PageSecret = defaultPageSecret
	}

	cfg.PageTTL = parsePositiveDuration(pageTTL, defaultPageTTL)
	cfg.SweepInterval = parsePositiveDuration(sweepInterval, defaultSweepInterval)

	// 0 отключает таймаут
	cfg.RequestTimeout = 0
	if d, err := time.ParseDuration(requestTimeout); err == nil && d > 0 {
		cfg.RequestTimeout = d
	}

	return cfg
}

func parsePositiveDuration(value string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func loadDotEnv(path string) {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return
	}
	log.Printf("config: failed to load %s: %v", path, err)
}
