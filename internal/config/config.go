package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	ConfigPathEnv     = "CONFIG_PATH"
	DefaultConfigPath = "config.yaml"
)

// keyDelim separates nested config keys. Alias nicknames are map keys and may contain ".".
const keyDelim = "::"

type Config struct {
	Host         string            `koanf:"host"`
	Port         int               `koanf:"port"`
	AllowOrigins []string          `koanf:"allow_origins"`
	LogLevel     string            `koanf:"log_level"`
	LogFile      string            `koanf:"log_file"`
	MaxBodyKB    int               `koanf:"max_body_kb"`
	RateLimitRPM int               `koanf:"rate_limit_rpm"` // per client IP; 0 disables
	Catalog      CatalogConfig     `koanf:"catalog"`
	Aliases      map[string]string `koanf:"aliases,omitempty"` // merged over the built-in nicknames
}

type CatalogConfig struct {
	Path      string `koanf:"path"` // .csv/.tsv/.txt, .xlsx, .xls or a SQLite file
	Table     string `koanf:"table"`
	HeaderRow int    `koanf:"header_row"`
	Encoding  string `koanf:"encoding"` // "auto", "utf-8", "euc-kr", "cp949", "windows-1251"
	Watch     bool   `koanf:"watch"`
}

func defaults() Config {
	return Config{
		Host:         "127.0.0.1",
		Port:         8082,
		AllowOrigins: []string{"*"},
		LogLevel:     "info",
		LogFile:      "logs/dogbreed-service.log",
		MaxBodyKB:    64,
		RateLimitRPM: 120,
		Catalog: CatalogConfig{
			Path:      "breeds.csv",
			Table:     "breeds",
			HeaderRow: 1,
			Encoding:  "auto",
		},
	}
}

// envKeys whitelists the environment variables that override config keys.
var envKeys = map[string]string{
	"HOST":               "host",
	"PORT":               "port",
	"ALLOW_ORIGINS":      "allow_origins",
	"LOG_LEVEL":          "log_level",
	"LOG_FILE":           "log_file",
	"MAX_BODY_KB":        "max_body_kb",
	"RATE_LIMIT_RPM":     "rate_limit_rpm",
	"CATALOG_PATH":       "catalog::path",
	"CATALOG_TABLE":      "catalog::table",
	"CATALOG_HEADER_ROW": "catalog::header_row",
	"CATALOG_ENCODING":   "catalog::encoding",
	"CATALOG_WATCH":      "catalog::watch",
}

// Load layers defaults, the optional YAML file and the environment, in that order.
func Load() (Config, error) {
	k := koanf.New(keyDelim)

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}
	if path := configFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("", keyDelim, func(key string) string { return envKeys[key] }), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}
	if err := splitOrigins(k); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func configFile() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultConfigPath); err == nil {
		return DefaultConfigPath
	}
	return ""
}

// splitOrigins turns ALLOW_ORIGINS="a, b" into a list; YAML lists pass through.
func splitOrigins(k *koanf.Koanf) error {
	s, ok := k.Get("allow_origins").(string)
	if !ok {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return k.Set("allow_origins", out)
}

func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.Catalog.HeaderRow < 1 {
		errs = append(errs, fmt.Errorf("catalog.header_row must be >= 1, got %d", c.Catalog.HeaderRow))
	}
	if c.MaxBodyKB < 1 {
		errs = append(errs, fmt.Errorf("max_body_kb must be >= 1, got %d", c.MaxBodyKB))
	}
	if c.RateLimitRPM < 0 {
		errs = append(errs, fmt.Errorf("rate_limit_rpm must be >= 0, got %d", c.RateLimitRPM))
	}
	if strings.TrimSpace(c.Catalog.Path) == "" {
		errs = append(errs, errors.New("catalog.path is empty"))
	}
	return errors.Join(errs...)
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func (c Config) MaxBodyBytes() int64 { return int64(c.MaxBodyKB) << 10 }
