package configuration

const AppName = "dashboard"

const APIPrefix = "/api/v1"

const (
	CacheAppRateLimitKey = "app:ratelimit:%s"
)

// Cache provider types.
const (
	CacheNone   = "none"
	CacheRedis  = "redis"
	CacheValkey = "valkey"
)

// Default date windows of the dashboard pages, in days.
const (
	MetricsDefaultDays = 30
	UsersDefaultDays   = 31
)

// Store connection strings read as plain environment variables.
const (
	EnvNationalDBURL = "DB_URL"
	EnvSitesDBURL    = "SITES_DB_URL"
)

var ArrayConfigFields = []string{
	"app.allowed_origins",
	"app.trusted_proxies",
	"cache.redis.hosts",
	"cache.valkey.hosts",
}

var ConfigFileSearchPaths = []string{
	"./config.yaml",
	"templates/config.yaml",
}
