package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "FO"
	appDirName = ".foodorder"

	tokenDirName  = "secrets"
	linksFileName = "links.db"
	cartFileName  = "cart.toml"
)

type Config struct {
	Backend BackendConfig `mapstructure:"backend"`
	Listen  ListenConfig  `mapstructure:"listen"`
	Login   LoginConfig   `mapstructure:"login"`
	Payment PaymentConfig `mapstructure:"payment"`
	Store   StoreConfig   `mapstructure:"store"`
	Cart    CartConfig    `mapstructure:"cart"`
	Log     LogConfig     `mapstructure:"log"`
	Locale  string        `mapstructure:"locale" validate:"oneof=vi en"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type ListenConfig struct {
	Addr   string `mapstructure:"addr" validate:"required"`
	Scheme string `mapstructure:"scheme" validate:"required"`
}

type LoginConfig struct {
	Provider string        `mapstructure:"provider" validate:"required"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type PaymentConfig struct {
	ConfirmTimeout time.Duration `mapstructure:"confirm_timeout" validate:"gt=0"`
}

type StoreConfig struct {
	Dir          string `mapstructure:"dir" validate:"required"`
	PassPrefix   string `mapstructure:"pass_prefix"`
	TokenBackend string `mapstructure:"token_backend" validate:"oneof=auto pass file"`
}

type CartConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// TokenDir is the file fallback for the session token when pass is unavailable.
func (c Config) TokenDir() string {
	return filepath.Join(c.Store.Dir, tokenDirName)
}

func (c Config) LinksDBPath() string {
	return filepath.Join(c.Store.Dir, linksFileName)
}

// Load reads ~/.foodorder/config.toml (when present) and FO_* environment
// overrides on top of defaults, then validates the result.
func Load(v *viper.Viper, homeDir string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	if homeDir == "" {
		var err error
		if homeDir, err = os.UserHomeDir(); err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
	}

	appDir := filepath.Join(homeDir, appDirName)
	setDefaults(v, appDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(appDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.Backend.BaseURL = strings.TrimRight(cfg.Backend.BaseURL, "/")
	cfg.Locale = strings.ToLower(cfg.Locale)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Store.TokenBackend = strings.ToLower(cfg.Store.TokenBackend)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, appDir string) {
	v.SetDefault("backend.base_url", "http://localhost:8080")
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("listen.addr", "127.0.0.1:8765")
	v.SetDefault("listen.scheme", "foodorder")
	v.SetDefault("login.provider", "google")
	v.SetDefault("login.timeout", 5*time.Minute)
	v.SetDefault("payment.confirm_timeout", 15*time.Second)
	v.SetDefault("store.dir", appDir)
	v.SetDefault("store.pass_prefix", "foodorder")
	v.SetDefault("store.token_backend", "auto")
	v.SetDefault("cart.path", filepath.Join(appDir, cartFileName))
	v.SetDefault("log.level", "warn")
	v.SetDefault("locale", "vi")
}
