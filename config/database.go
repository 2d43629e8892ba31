package config

const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type Database struct {
	Driver string `json:"driver" yaml:"driver"`
	// Dsn is used by mysql and postgres.
	Dsn string `json:"dsn" yaml:"dsn"`
	// Path is the sqlite file, ":memory:" is accepted.
	Path     string `json:"path" yaml:"path"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

func ProvideDatabaseConfig(cfg *Config) *Database {
	return cfg.Database
}
