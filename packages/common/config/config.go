package config

import (
	"io"
	"os"
	"time"

	"registry/packages/common/logger"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var configLogger = logger.NewSource("CONFIG", logger.Default)

// Wrapper for time.ParseDuration. Panics on error.
func parseDuration(raw string) time.Duration {
    v, e := time.ParseDuration(raw)

    if e != nil {
        panic(e)
    }

    return v
}

type dbConfig struct {
    RawDefaultQueryTimeout string `yaml:"db-default-query-timeout" validate:"required"`
    MaxSearchPageSize      int    `yaml:"db-max-search-page-size" validate:"required,min=1"`
    DefaultSearchPageSize  int    `yaml:"db-default-search-page-size" validate:"required,min=1"`
    SkipPostConnection     bool   `yaml:"db-skip-post-connection" validate:"exists"`
}

func (c *dbConfig) DefaultQueryTimeout() time.Duration {
    return parseDuration(c.RawDefaultQueryTimeout)
}

type httpServerConfig struct {
    Domain         string   `yaml:"domain" validate:"required"`
    Secured        bool     `yaml:"http-secured" validate:"exists"`
    Port           string   `yaml:"http-port" validate:"required"`
    AllowedOrigins []string `yaml:"http-allowed-origins" validate:"required,min=1"`
}

type cacheConfig struct {
    RawSocketTimeout    string `yaml:"cache-socket-timeout" validate:"required"`
    RawOperationTimeout string `yaml:"cache-operation-timeout" validate:"required"`
    RawTTL              string `yaml:"cache-ttl" validate:"required"`
}

func (c *cacheConfig) SocketTimeout() time.Duration {
    return parseDuration(c.RawSocketTimeout)
}

func (c *cacheConfig) OperationTimeout() time.Duration {
    return parseDuration(c.RawOperationTimeout)
}

func (c *cacheConfig) TTL() time.Duration {
    return parseDuration(c.RawTTL)
}

type debugConfig struct {
    Enabled           bool `yaml:"debug-mode" validate:"exists"`
    LogDbQueries      bool `yaml:"debug-log-db-queries" validate:"exists"`
    SafeDatabaseScans bool `yaml:"debug-safe-db-scans" validate:"exists"`
}

type appConfig struct {
    ShowLogs         bool   `yaml:"show-logs" validate:"exists"`
    TraceLogsEnabled bool   `yaml:"trace-logs" validate:"exists"`
    ServiceID        string `yaml:"service-id" validate:"required"`
}

type sentryConfig struct {
    TraceSampleRate float64 `yaml:"sentry-trace-sample-rate" validate:"exists"`
}

type configs struct {
    dbConfig         `yaml:",inline"`
    httpServerConfig `yaml:",inline"`
    cacheConfig      `yaml:",inline"`
    debugConfig      `yaml:",inline"`
    appConfig        `yaml:",inline"`
    sentryConfig     `yaml:",inline"`
}

var DB *dbConfig
var HTTP *httpServerConfig
var Cache *cacheConfig
var Debug *debugConfig
var App *appConfig
var Sentry *sentryConfig

var isInit bool = false

func loadConfig(path string, dest *configs) {
	configLogger.Info("Reading config file...", nil)

    file, err := os.Open(path)

    if err != nil {
        configLogger.Fatal("Failed to open config file", err.Error(), nil)
    }

    rawConfig, err := io.ReadAll(file)

    if err != nil {
        configLogger.Fatal("Failed to read config file", err.Error(), nil)
    }

    configLogger.Info("Reading config file: OK", nil)

    configLogger.Info("Parsing config file...", nil)

    if err := yaml.Unmarshal(rawConfig, dest); err != nil {
        configLogger.Fatal("Failed to parse config file", err.Error(), nil)
    }

    configLogger.Info("Parsing config file: OK", nil)

    configLogger.Info("Validating config...", nil)

    validate := validator.New()

    validate.RegisterValidation("exists", func(fl validator.FieldLevel) bool {
        return true // Always pass (just ensure that the field exists)
    })

    if err := validate.Struct(dest); err != nil {
        configLogger.Fatal("Failed to validate config", err.Error(), nil)
    }

    configLogger.Info("Validating config: OK", nil)
}

func Init() {
    if isInit {
        configLogger.Fatal("Failed to initialize config", "Config already initialized", nil)
    }

	configLogger.Info("Initializing...", nil)

    configs := new(configs)

    loadConfig("registry.config.yaml", configs)
    loadSecrets()

    DB = &configs.dbConfig
    HTTP = &configs.httpServerConfig
    Cache = &configs.cacheConfig
    Debug = &configs.debugConfig
    App = &configs.appConfig
    Sentry = &configs.sentryConfig

	configLogger.Info("Initializing: OK", nil)

    isInit = true
}
