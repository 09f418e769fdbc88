package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	AES         AESConfig         `mapstructure:"aes"`
	Log         LogConfig         `mapstructure:"log"`
	Risk        RiskConfig        `mapstructure:"risk"`
	Geo         GeoConfig         `mapstructure:"geo"`
	Ledger      LedgerConfig      `mapstructure:"ledger"`
	Fingerprint FingerprintConfig `mapstructure:"fingerprint"`
	Payout      PayoutConfig      `mapstructure:"payout"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test

	// Forwarding headers are honored only when the peer is in TrustedProxies.
	TrustedProxies  []string `mapstructure:"trusted_proxies"`
	RemoteIPHeaders []string `mapstructure:"remote_ip_headers"`
	// TrustedPlatform names a header set by a fronting CDN, e.g. CF-Connecting-IP.
	// Leave empty unless every request passes through that CDN.
	TrustedPlatform string `mapstructure:"trusted_platform"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level      string `mapstructure:"level"`  // debug, info, warn, error
	Pretty     bool   `mapstructure:"pretty"` // human-readable output (dev only)
	File       string `mapstructure:"file"`   // optional rotated log file, empty = stdout only
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// RiskConfig holds thresholds and delays for each risk signal.
// Amounts are expressed in the ledger's minor-unit-agnostic currency units.
type RiskConfig struct {
	RateLimitMax     int           `mapstructure:"rate_limit_max"`
	RateLimitWindow  time.Duration `mapstructure:"rate_limit_window"`
	RateLimitPenalty time.Duration `mapstructure:"rate_limit_penalty"`

	VPNBlockAmount int64         `mapstructure:"vpn_block_amount"`
	VPNDelay       time.Duration `mapstructure:"vpn_delay"`

	TravelMinDistanceKm  float64       `mapstructure:"travel_min_distance_km"`
	TravelBlockSpeedKmh  float64       `mapstructure:"travel_block_speed_kmh"`
	TravelHighSpeedKmh   float64       `mapstructure:"travel_high_speed_kmh"`
	TravelMediumSpeedKmh float64       `mapstructure:"travel_medium_speed_kmh"`
	TravelBlockDelay     time.Duration `mapstructure:"travel_block_delay"`
	TravelHighDelay      time.Duration `mapstructure:"travel_high_delay"`
	TravelMediumDelay    time.Duration `mapstructure:"travel_medium_delay"`

	FingerprintLookback     time.Duration `mapstructure:"fingerprint_lookback"`
	FingerprintHistoryLimit int           `mapstructure:"fingerprint_history_limit"`
	FingerprintHighAmount   int64         `mapstructure:"fingerprint_high_amount"`
	FingerprintDelay        time.Duration `mapstructure:"fingerprint_delay"`
	FingerprintHighDelay    time.Duration `mapstructure:"fingerprint_high_delay"`

	MultiIPWindow      time.Duration `mapstructure:"multi_ip_window"`
	MultiIPHighDelay   time.Duration `mapstructure:"multi_ip_high_delay"`
	MultiIPMediumDelay time.Duration `mapstructure:"multi_ip_medium_delay"`

	AmountHigh        int64         `mapstructure:"amount_high"`
	AmountHighDelay   time.Duration `mapstructure:"amount_high_delay"`
	AmountMedium      int64         `mapstructure:"amount_medium"`
	AmountMediumDelay time.Duration `mapstructure:"amount_medium_delay"`
	AmountNotice      int64         `mapstructure:"amount_notice"`
	AmountNoticeDelay time.Duration `mapstructure:"amount_notice_delay"`
}

type GeoConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Fields            string        `mapstructure:"fields"`
	Timeout           time.Duration `mapstructure:"timeout"`
	CacheTTL          time.Duration `mapstructure:"cache_ttl"`
	LocalCacheSize    int64         `mapstructure:"local_cache_size"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute"`
}

type LedgerConfig struct {
	MinTransferAmount   int64         `mapstructure:"min_transfer_amount"`
	DuplicateWindow     time.Duration `mapstructure:"duplicate_window"`
	MinWithdrawalAmount int64         `mapstructure:"min_withdrawal_amount"`
	WithdrawalFee       int64         `mapstructure:"withdrawal_fee"`
	FeeFreeThreshold    int64         `mapstructure:"fee_free_threshold"`
	MaxTxAttempts       int           `mapstructure:"max_tx_attempts"`
}

type FingerprintConfig struct {
	Secret string `mapstructure:"secret"` // key for device id derivation, at most 64 bytes
}

type PayoutConfig struct {
	WebhookURL string        `mapstructure:"webhook_url"` // empty = notifications disabled
	Secret     string        `mapstructure:"secret"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: SLD_.
// Nested keys use underscore: SLD_DATABASE_HOST, SLD_RISK_RATE_LIMIT_MAX, etc.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("SLD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.remote_ip_headers", []string{"X-Forwarded-For", "X-Real-IP"})
	v.SetDefault("server.trusted_platform", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "saldo_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "saldo-ledger")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("risk.rate_limit_max", 5)
	v.SetDefault("risk.rate_limit_window", "1h")
	v.SetDefault("risk.rate_limit_penalty", "10s")
	v.SetDefault("risk.vpn_block_amount", 500000)
	v.SetDefault("risk.vpn_delay", "5s")
	v.SetDefault("risk.travel_min_distance_km", 50)
	v.SetDefault("risk.travel_block_speed_kmh", 1000)
	v.SetDefault("risk.travel_high_speed_kmh", 500)
	v.SetDefault("risk.travel_medium_speed_kmh", 200)
	v.SetDefault("risk.travel_block_delay", "10s")
	v.SetDefault("risk.travel_high_delay", "8s")
	v.SetDefault("risk.travel_medium_delay", "3s")
	v.SetDefault("risk.fingerprint_lookback", "168h")
	v.SetDefault("risk.fingerprint_history_limit", 5)
	v.SetDefault("risk.fingerprint_high_amount", 500000)
	v.SetDefault("risk.fingerprint_delay", "3s")
	v.SetDefault("risk.fingerprint_high_delay", "5s")
	v.SetDefault("risk.multi_ip_window", "24h")
	v.SetDefault("risk.multi_ip_high_delay", "5s")
	v.SetDefault("risk.multi_ip_medium_delay", "3s")
	v.SetDefault("risk.amount_high", 1000000)
	v.SetDefault("risk.amount_high_delay", "5s")
	v.SetDefault("risk.amount_medium", 500000)
	v.SetDefault("risk.amount_medium_delay", "3s")
	v.SetDefault("risk.amount_notice", 100000)
	v.SetDefault("risk.amount_notice_delay", "1s")

	v.SetDefault("geo.base_url", "http://ip-api.com/json")
	v.SetDefault("geo.fields", "status,message,country,countryCode,regionName,city,lat,lon,timezone,isp,org,as,proxy,hosting,query")
	v.SetDefault("geo.timeout", "3s")
	v.SetDefault("geo.cache_ttl", "1h")
	v.SetDefault("geo.local_cache_size", 10000)
	v.SetDefault("geo.requests_per_minute", 45)

	v.SetDefault("ledger.min_transfer_amount", 10000)
	v.SetDefault("ledger.duplicate_window", "60s")
	v.SetDefault("ledger.min_withdrawal_amount", 50000)
	v.SetDefault("ledger.withdrawal_fee", 5000)
	v.SetDefault("ledger.fee_free_threshold", 1000000)
	v.SetDefault("ledger.max_tx_attempts", 3)

	v.SetDefault("fingerprint.secret", "")

	v.SetDefault("payout.webhook_url", "")
	v.SetDefault("payout.secret", "")
	v.SetDefault("payout.timeout", "10s")
}
