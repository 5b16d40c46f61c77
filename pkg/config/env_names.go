package config

const (
	EnvPrefix = "ARTSTORE"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvAppEnv = "ARTSTORE_APP_ENV"
	EnvPort   = "ARTSTORE_APP_PORT"

	EnvDBDSN  = "ARTSTORE_DB_DSN"
	EnvDBHost = "ARTSTORE_DB_HOST"
	EnvDBUser = "ARTSTORE_DB_USER"
	EnvDBName = "ARTSTORE_DB_NAME"

	EnvRedisURL = "ARTSTORE_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
