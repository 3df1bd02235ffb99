package models

type Configuration struct {
	App       AppConfiguration       `mapstructure:"app"        validate:"required"`
	Database  DatabaseConfiguration  `mapstructure:"database"`
	Cache     CacheConfiguration     `mapstructure:"cache"      validate:"required"`
	RateLimit RateLimitConfiguration `mapstructure:"rate_limit"`
	Tracing   TracingConfiguration   `mapstructure:"tracing"`
	Profiling ProfilingConfiguration `mapstructure:"profiling"`
}

type AppConfiguration struct {
	LogLevel              string   `mapstructure:"log_level"               validate:"oneof=debug info warn error fatal panic"`
	Port                  int      `mapstructure:"port"                    validate:"gte=80,lte=65535"`
	ReportingTimezone     string   `mapstructure:"reporting_timezone"      validate:"required,timezone"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"gte=1,lte=300"`
	AllowedOrigins        []string `mapstructure:"allowed_origins"`
	TrustedProxies        []string `mapstructure:"trusted_proxies"`
}

// DatabaseConfiguration holds the connection strings of both backing stores.
// Either may be empty; a store without a URL is treated as not configured.
type DatabaseConfiguration struct {
	URL                    string `mapstructure:"url"`
	SitesURL               string `mapstructure:"sites_url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns"            validate:"gte=1,lte=100"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns"            validate:"gte=0,lte=100"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"gte=1,lte=1440"`
}

type CacheConfiguration struct {
	Type   string                    `mapstructure:"type"   validate:"required,oneof=none redis valkey"`
	Redis  *RedisCacheConfiguration  `mapstructure:"redis"  validate:"required_if=Type redis"`
	Valkey *ValkeyCacheConfiguration `mapstructure:"valkey" validate:"required_if=Type valkey"`
}

type RedisCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

type ValkeyCacheConfiguration struct {
	Hosts         []string `mapstructure:"hosts"`
	Password      string   `mapstructure:"password"`
	TLSEnabled    bool     `mapstructure:"tls_enabled"`
	TLSServerName string   `mapstructure:"tls_server_name"`
}

// RateLimitConfiguration only applies when a cache is configured.
type RateLimitConfiguration struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute" validate:"gte=0"`
}

type TracingConfiguration struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"     validate:"required_if=Enabled true"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
	Insecure    bool   `mapstructure:"insecure"`
}

type ProfilingConfiguration struct {
	Enabled         bool   `mapstructure:"enabled"`
	ServerAddress   string `mapstructure:"server_address"   validate:"required_if=Enabled true"`
	ApplicationName string `mapstructure:"application_name" validate:"required"`
}

// HasNationalStore reports whether DB_URL was supplied.
func (d DatabaseConfiguration) HasNationalStore() bool {
	return d.URL != ""
}

// HasSitesStore reports whether SITES_DB_URL was supplied.
func (d DatabaseConfiguration) HasSitesStore() bool {
	return d.SitesURL != ""
}
