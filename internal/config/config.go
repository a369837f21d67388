package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/wingfantasy/wingfantasy/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	CORSAllowedOrigins []string
	LogLevel           logging.Level

	// StateDir is where session, profile, leaderboard and seed snapshots live.
	StateDir string

	// SeedOverride forces the simulation seed on a fresh session when
	// SeedOverrideSet is true. Restored sessions keep their stored seed.
	SeedOverride    int64
	SeedOverrideSet bool

	DemoUserCount int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	LogDrainEnabled  bool
	LogDrainEndpoint string
	LogDrainToken    string
	LogDrainTimeout  time.Duration
	LogDrainMinLevel logging.Level

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("APP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_SHUTDOWN_TIMEOUT: %w", err)
	}
	if shutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("APP_SHUTDOWN_TIMEOUT must be > 0")
	}

	stateDir := strings.TrimSpace(getEnv("APP_STATE_DIR", "./data"))
	if stateDir == "" {
		return Config{}, fmt.Errorf("APP_STATE_DIR cannot be empty")
	}

	seedOverrideSet := false
	seedOverride := int64(0)
	if raw := strings.TrimSpace(os.Getenv("APP_RNG_SEED")); raw != "" {
		seedOverride, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse APP_RNG_SEED: %w", err)
		}
		if seedOverride < 0 {
			return Config{}, fmt.Errorf("APP_RNG_SEED must be >= 0")
		}
		seedOverrideSet = true
	}

	demoUserCount, err := getEnvAsInt("APP_DEMO_USER_COUNT", 300)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_DEMO_USER_COUNT: %w", err)
	}
	if demoUserCount < 1 {
		return Config{}, fmt.Errorf("APP_DEMO_USER_COUNT must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
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

	logDrainEnabled, err := strconv.ParseBool(getEnv("LOG_DRAIN_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_DRAIN_ENABLED: %w", err)
	}
	logDrainEndpoint := strings.TrimSpace(getEnv("LOG_DRAIN_ENDPOINT", ""))
	if logDrainEnabled && logDrainEndpoint == "" {
		return Config{}, fmt.Errorf("LOG_DRAIN_ENDPOINT is required when LOG_DRAIN_ENABLED=true")
	}
	logDrainTimeout, err := time.ParseDuration(getEnv("LOG_DRAIN_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_DRAIN_TIMEOUT: %w", err)
	}
	if logDrainTimeout <= 0 {
		return Config{}, fmt.Errorf("LOG_DRAIN_TIMEOUT must be > 0")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "wingfantasy-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		ShutdownTimeout:            shutdownTimeout,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		StateDir:                   stateDir,
		SeedOverride:               seedOverride,
		SeedOverrideSet:            seedOverrideSet,
		DemoUserCount:              demoUserCount,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		LogDrainEnabled:            logDrainEnabled,
		LogDrainEndpoint:           logDrainEndpoint,
		LogDrainToken:              strings.TrimSpace(getEnv("LOG_DRAIN_TOKEN", "")),
		LogDrainTimeout:            logDrainTimeout,
		LogDrainMinLevel:           parseLogLevel(getEnv("LOG_DRAIN_MIN_LEVEL", "error")),
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
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
