package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Cron   CronConfig   `mapstructure:"cron"`

	Attribution AttributionConfig `mapstructure:"attribution"`
	Commission  CommissionConfig  `mapstructure:"commission"`
	Snapshot    SnapshotConfig    `mapstructure:"snapshot"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type CronConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// AttributionConfig carries the configured marketing channel list. Channel
// order matters: substring matching resolves ties by first channel wins.
type AttributionConfig struct {
	Channels     []string      `mapstructure:"channels"`
	SweepEnabled bool          `mapstructure:"sweep_enabled"`
	SweepSpec    string        `mapstructure:"sweep_spec"`
	SweepBatch   int           `mapstructure:"sweep_batch"`
	SweepTimeout time.Duration `mapstructure:"sweep_timeout"`
}

// CommissionConfig holds the default rate table. Rates are fractions in [0,1]:
// company_rate of the deal subtotal goes to the company, dev_share of the
// remainder to the development pool, the rest to the sales pool.
type CommissionConfig struct {
	CompanyRate float64 `mapstructure:"company_rate"`
	DevShare    float64 `mapstructure:"dev_share"`
}

type SnapshotConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Spec    string `mapstructure:"spec"`
	// Months of history rebuilt on each run, counting back from the
	// current month.
	BackfillMonths int `mapstructure:"backfill_months"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", "10m")
	v.SetDefault("cron.enabled", true)

	v.SetDefault("attribution.channels", []string{"591", "FB", "Google", "官網", "看板", "介紹"})
	v.SetDefault("attribution.sweep_enabled", true)
	v.SetDefault("attribution.sweep_spec", "@every 10m")
	v.SetDefault("attribution.sweep_batch", 500)
	v.SetDefault("attribution.sweep_timeout", "2m")

	v.SetDefault("commission.company_rate", 0.53)
	v.SetDefault("commission.dev_share", 0.55)

	v.SetDefault("snapshot.enabled", true)
	v.SetDefault("snapshot.spec", "@every 6h")
	v.SetDefault("snapshot.backfill_months", 2)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
