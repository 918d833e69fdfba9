package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/puckboard/league-engine/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the engine.
type Config struct {
	AppEnv         string `validate:"required,oneof=dev stage prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string `validate:"required"`

	RegistryURL     string        `validate:"required,url"`
	FetchTimeout    time.Duration `validate:"gt=0"`
	FetchMaxRetries int           `validate:"gte=0"`
	SheetDelimiter  rune

	CacheTTL time.Duration `validate:"gte=0"`

	Leagues           []string `validate:"min=1,dive,required"`
	RefreshMaxWorkers int      `validate:"gte=0"`

	CircuitEnabled        bool
	CircuitFailureCount   int           `validate:"gte=1"`
	CircuitOpenTimeout    time.Duration `validate:"gt=0"`
	CircuitHalfOpenMaxReq int           `validate:"gte=1"`

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration `validate:"gt=0"`

	LogLevel logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	registryURL := strings.TrimSpace(getEnv("REGISTRY_URL", ""))
	if registryURL == "" {
		return Config{}, fmt.Errorf("REGISTRY_URL is required")
	}

	fetchTimeout, err := time.ParseDuration(getEnv("FETCH_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_TIMEOUT: %w", err)
	}
	fetchMaxRetries, err := getEnvAsInt("FETCH_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_MAX_RETRIES: %w", err)
	}

	delimiter, err := parseDelimiter(getEnv("SHEET_DELIMITER", ","))
	if err != nil {
		return Config{}, err
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL < 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be >= 0")
	}

	leagues := splitCSV(getEnv("LEAGUES", ""))
	if len(leagues) == 0 {
		return Config{}, fmt.Errorf("LEAGUES is required, expected a comma separated list of league names")
	}

	refreshMaxWorkers, err := getEnvAsInt("REFRESH_MAX_WORKERS", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse REFRESH_MAX_WORKERS: %w", err)
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("FETCH_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("FETCH_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("FETCH_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("FETCH_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse FETCH_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
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
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
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

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "league-engine"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		RegistryURL:            registryURL,
		FetchTimeout:           fetchTimeout,
		FetchMaxRetries:        fetchMaxRetries,
		SheetDelimiter:         delimiter,
		CacheTTL:               cacheTTL,
		Leagues:                leagues,
		RefreshMaxWorkers:      refreshMaxWorkers,
		CircuitEnabled:         circuitEnabled,
		CircuitFailureCount:    circuitFailureCount,
		CircuitOpenTimeout:     circuitOpenTimeout,
		CircuitHalfOpenMaxReq:  circuitHalfOpenMaxReq,
		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
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

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

// parseDelimiter accepts a literal single character or the word "tab".
func parseDelimiter(v string) (rune, error) {
	if strings.EqualFold(strings.TrimSpace(v), "tab") {
		return '\t', nil
	}
	runes := []rune(v)
	if len(runes) != 1 {
		return 0, fmt.Errorf("invalid SHEET_DELIMITER %q: expected a single character or \"tab\"", v)
	}
	return runes[0], nil
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
