package store

import (
	"time"

	"gsa/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string
	PG      PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
	Migrate     bool // apply embedded migrations on open

	ConnectRetries int           // default 20
	PingTimeout    time.Duration // default 3s
}

// ConfigFrom reads the GSA_PGSQL_* keys; postgres is enabled when a DBURL is set
func ConfigFrom(cfg config.Conf, appName string) Config {
	pg := cfg.Prefix("PGSQL_")
	url := pg.MayString("DBURL", "")
	return Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 8)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 250),
			Migrate:        pg.MayBool("MIGRATE", true),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
	}
}
