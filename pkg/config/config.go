package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	FeatureFlags FeatureFlagsConfig
	Storage      StorageConfig
	Reports      ReportsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ARTSTORE_APP_ENV" required:"true"`
	Port         string `envconfig:"ARTSTORE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"ARTSTORE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ARTSTORE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ARTSTORE_DB_DSN"`
	Driver string `envconfig:"ARTSTORE_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ARTSTORE_DB_HOST"`
	LegacyPort     int    `envconfig:"ARTSTORE_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ARTSTORE_DB_USER"`
	LegacyPassword string `envconfig:"ARTSTORE_DB_PASSWORD"`
	LegacyName     string `envconfig:"ARTSTORE_DB_NAME"`
	LegacySSLMode  string `envconfig:"ARTSTORE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ARTSTORE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ARTSTORE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ARTSTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ARTSTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the dev sqlite driver was selected.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type RedisConfig struct {
	URL          string        `envconfig:"ARTSTORE_REDIS_URL"`
	Address      string        `envconfig:"ARTSTORE_REDIS_ADDR"`
	Password     string        `envconfig:"ARTSTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"ARTSTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ARTSTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ARTSTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ARTSTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ARTSTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ARTSTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The API can
// run without redis; idempotency replay and report caching are skipped.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ARTSTORE_AUTO_MIGRATE" default:"false"`
}

// StorageConfig models the physical warehouse grid. Each shelf holds
// 10 boxes with 5 folders each, hence the default capacity of 50.
type StorageConfig struct {
	ShelfCapacity      int `envconfig:"ARTSTORE_SHELF_CAPACITY" default:"50"`
	HighUtilizationPct int `envconfig:"ARTSTORE_HIGH_UTILIZATION_PCT" default:"85"`
	LowUtilizationPct  int `envconfig:"ARTSTORE_LOW_UTILIZATION_PCT" default:"10"`
}

type ReportsConfig struct {
	CacheTTL time.Duration `envconfig:"ARTSTORE_REPORT_CACHE_TTL" default:"1m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" || db.IsSQLite() {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
