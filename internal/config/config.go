package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ekalbevoldog/contested/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSupabase = "supabase"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string

	StorageBackend                string
	DBURL                         string
	DBDisablePreparedBinaryResult bool
	SupabaseURL                   string
	SupabaseServiceRoleKey        string
	SupabaseAnonKey               string
	SupabaseTimeout               time.Duration
	SeedDemoData                  bool

	SessionSecret string
	SessionTTL    time.Duration

	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CacheEnabled       bool
	CacheTTL           time.Duration
	InternalJobToken   string

	WebhookEnabled       bool
	WebhookEndpoints     []string
	WebhookSigningSecret string
	WebhookTimeout       time.Duration
	WebhookWorkers       int

	UptraceEnabled      bool
	UptraceDSN          string
	BetterStackEnabled  bool
	BetterStackEndpoint string
	BetterStackToken    string
	BetterStackTimeout  time.Duration
	BetterStackMinLevel logging.Level
	PyroscopeEnabled    bool
	PyroscopeServerAddr string
	PyroscopeAppName    string
	PyroscopeAuthToken  string
	PyroscopeUploadRate time.Duration
	PprofEnabled        bool
	PprofAddr           string

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	storageBackend, err := parseStorageBackend(getEnv("STORAGE_BACKEND", BackendMemory))
	if err != nil {
		return Config{}, err
	}

	dbURL := strings.TrimSpace(getEnv("DATABASE_URL", ""))
	if storageBackend == BackendPostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
	}
	dbDisablePreparedBinaryResult, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	supabaseURL := strings.TrimSpace(getEnv("SUPABASE_URL", ""))
	supabaseServiceRoleKey := strings.TrimSpace(getEnv("SUPABASE_SERVICE_ROLE_KEY", ""))
	if storageBackend == BackendSupabase {
		if supabaseURL == "" {
			return Config{}, fmt.Errorf("SUPABASE_URL is required when STORAGE_BACKEND=supabase")
		}
		if supabaseServiceRoleKey == "" {
			return Config{}, fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required when STORAGE_BACKEND=supabase")
		}
	}
	supabaseTimeout, err := time.ParseDuration(getEnv("SUPABASE_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUPABASE_TIMEOUT: %w", err)
	}
	if supabaseTimeout <= 0 {
		return Config{}, fmt.Errorf("SUPABASE_TIMEOUT must be > 0")
	}

	seedDemoData, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_DEMO_DATA: %w", err)
	}

	sessionSecret := strings.TrimSpace(getEnv("SESSION_SECRET", ""))
	if sessionSecret == "" {
		if appEnv != EnvDev {
			return Config{}, fmt.Errorf("SESSION_SECRET is required when APP_ENV=%s", appEnv)
		}
		sessionSecret = "contested-dev-session-secret"
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SESSION_TTL: %w", err)
	}
	if sessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	webhookEnabled, err := strconv.ParseBool(getEnv("WEBHOOK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WEBHOOK_ENABLED: %w", err)
	}
	webhookEndpoints := splitCSV(getEnv("WEBHOOK_ENDPOINTS", ""))
	if webhookEnabled && len(webhookEndpoints) == 0 {
		return Config{}, fmt.Errorf("WEBHOOK_ENDPOINTS is required when WEBHOOK_ENABLED=true")
	}
	webhookTimeout, err := time.ParseDuration(getEnv("WEBHOOK_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WEBHOOK_TIMEOUT: %w", err)
	}
	if webhookTimeout <= 0 {
		return Config{}, fmt.Errorf("WEBHOOK_TIMEOUT must be > 0")
	}
	webhookWorkers, err := getEnvAsInt("WEBHOOK_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse WEBHOOK_WORKERS: %w", err)
	}
	if webhookWorkers < 1 {
		return Config{}, fmt.Errorf("WEBHOOK_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := time.ParseDuration(getEnv("BETTERSTACK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_TIMEOUT: %w", err)
	}
	if betterStackTimeout <= 0 {
		return Config{}, fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddr := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddr == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "contested-api"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                      httpAddr(),
		StorageBackend:                storageBackend,
		DBURL:                         dbURL,
		DBDisablePreparedBinaryResult: dbDisablePreparedBinaryResult,
		SupabaseURL:                   supabaseURL,
		SupabaseServiceRoleKey:        supabaseServiceRoleKey,
		SupabaseAnonKey:               strings.TrimSpace(getEnv("SUPABASE_ANON_KEY", "")),
		SupabaseTimeout:               supabaseTimeout,
		SeedDemoData:                  seedDemoData,
		SessionSecret:                 sessionSecret,
		SessionTTL:                    sessionTTL,
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                   readTimeout,
		WriteTimeout:                  writeTimeout,
		CacheEnabled:                  cacheEnabled,
		CacheTTL:                      cacheTTL,
		InternalJobToken:              strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		WebhookEnabled:                webhookEnabled,
		WebhookEndpoints:              webhookEndpoints,
		WebhookSigningSecret:          strings.TrimSpace(getEnv("WEBHOOK_SIGNING_SECRET", "")),
		WebhookTimeout:                webhookTimeout,
		WebhookWorkers:                webhookWorkers,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		BetterStackEnabled:            betterStackEnabled,
		BetterStackEndpoint:           betterStackEndpoint,
		BetterStackToken:              strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:            betterStackTimeout,
		BetterStackMinLevel:           parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error")),
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddr:           pyroscopeServerAddr,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		LogLevel:                      parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

// httpAddr prefers the platform-injected PORT over APP_HTTP_ADDR.
func httpAddr() string {
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		return ":" + port
	}
	return getEnv("APP_HTTP_ADDR", ":8080")
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseStorageBackend(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case BackendMemory, BackendPostgres, BackendSupabase:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORAGE_BACKEND %q: valid values are %s, %s, %s", v, BackendMemory, BackendPostgres, BackendSupabase)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}
