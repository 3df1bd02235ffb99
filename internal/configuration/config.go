package configuration

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

// splitList turns an environment list such as "a,b", "a b" or "[a, b]" into
// its items.
func splitList(raw string) []string {
	return strings.FieldsFunc(strings.Trim(raw, "[]"), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// parseArrayFields converts list keys set from the environment into slices.
// Keys already holding a slice come from defaults or the YAML file and are
// left alone.
func parseArrayFields(k *koanf.Koanf) {
	for _, field := range ArrayConfigFields {
		raw, ok := k.Get(field).(string)
		if !ok {
			continue
		}
		if err := k.Set(field, splitList(raw)); err != nil {
			zap.L().Error("Failed to parse list setting", zap.String("field", field), zap.Error(err))
		}
	}
}

// readStoreURLs maps DB_URL and SITES_DB_URL onto the database section.
func readStoreURLs(k *koanf.Koanf) {
	if url := os.Getenv(EnvNationalDBURL); url != "" {
		_ = k.Set("database.url", url)
	}
	if url := os.Getenv(EnvSitesDBURL); url != "" {
		_ = k.Set("database.sites_url", url)
	}
}

func readEnvVars(k *koanf.Koanf) {
	err := k.Load(env.Provider("", ".", func(s string) string {
		s = strings.ToLower(s)
		segments := strings.Split(s, "__")
		result := strings.Join(segments, ".")
		return result
	}), nil)
	if err != nil {
		zap.L().Warn("Error loading environment variables", zap.Error(err))
	}

	parseArrayFields(k)
	readStoreURLs(k)
}

func readDotEnv() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		zap.L().Warn("Error loading .env file", zap.Error(err))
	}
}

func readFileConfig(k *koanf.Koanf) error {
	configFilePath := os.Getenv("CONFIG_FILE_PATH")
	var filePath string
	if configFilePath == "" {
		for _, path := range ConfigFileSearchPaths {
			if _, err := os.Stat(path); err == nil {
				filePath = path
				break
			}
		}
	} else {
		filePath = configFilePath
	}

	if filePath == "" {
		zap.L().Info("No configuration file found, using defaults and environment")
		return nil
	}

	if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
		return err
	}
	zap.L().Info("Read configuration from file " + filePath)
	return nil
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]interface{}{
		"app.log_level":               "info",
		"app.port":                    8080,
		"app.reporting_timezone":      "UTC",
		"app.request_timeout_seconds": 30,
		"app.allowed_origins":         []string{"*"},

		"database.max_open_conns":            10,
		"database.max_idle_conns":            2,
		"database.conn_max_lifetime_minutes": 30,

		"cache.type": CacheNone,

		"rate_limit.requests_per_minute": 0,

		"tracing.enabled":      false,
		"tracing.service_name": AppName,

		"profiling.enabled":          false,
		"profiling.application_name": AppName,
	}

	return k.Load(confmap.Provider(defaults, "."), nil)
}

// Load reads the configuration from defaults, the optional YAML file, .env
// and the environment, in increasing order of precedence, then validates it.
func Load() (models.Configuration, error) {
	k := koanf.New(".")

	readDotEnv()

	if err := loadDefaults(k); err != nil {
		return models.Configuration{}, err
	}
	if err := readFileConfig(k); err != nil {
		return models.Configuration{}, err
	}
	readEnvVars(k)

	var config models.Configuration
	err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{Tag: "mapstructure"})
	if err != nil {
		return models.Configuration{}, err
	}

	validate := validator.New()
	if err = validate.Struct(config); err != nil {
		return models.Configuration{}, err
	}

	return config, nil
}

func Read() models.Configuration {
	config, err := Load()
	if err != nil {
		zap.L().Fatal("Invalid configuration", zap.Error(err))
	}
	return config
}
