// Package config loads application settings that live outside the host's
// document store: database location, log level, provider endpoints and
// deadlines.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rubick-translator/internal/domain"

	"github.com/spf13/viper"
)

const (
	EnvPrefix      = "RTRANS"
	configBaseName = ".rtrans"

	KeyDBPath                 = "db.path"
	KeyLogLevel               = "log.level"
	KeyEndpointGoogle         = "endpoints.google"
	KeyEndpointMyMemory       = "endpoints.mymemory"
	KeyEndpointLibreTranslate = "endpoints.libretranslate"
	KeyTimeoutDefault         = "timeouts.default"
	KeyTimeoutTencent         = "timeouts.tencent"
	KeyTencentRegion          = "tencent.region"
	KeyTencentEndpoint        = "tencent.endpoint"
)

type Endpoints struct {
	Google         string
	MyMemory       string
	LibreTranslate string
}

type Timeouts struct {
	Default time.Duration
	Tencent time.Duration
}

type Tencent struct {
	Region   string
	Endpoint string
}

type Config struct {
	DBPath    string
	LogLevel  string
	Endpoints Endpoints
	Timeouts  Timeouts
	Tencent   Tencent
}

// DefaultDBPath is ~/.local/state/rubick-translator/rtrans.db, or a relative
// file when the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rtrans.db"
	}
	return filepath.Join(home, ".local", "state", "rubick-translator", "rtrans.db")
}

// SetDefaults registers every key so env overrides work without a config file.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDBPath, DefaultDBPath())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyEndpointGoogle, "https://google-translate-proxy.tantu.com")
	v.SetDefault(KeyEndpointMyMemory, "https://api.mymemory.translated.net")
	v.SetDefault(KeyEndpointLibreTranslate, domain.DefaultLibreTranslateBaseURL)
	v.SetDefault(KeyTimeoutDefault, domain.DefaultProviderDeadline)
	v.SetDefault(KeyTimeoutTencent, domain.TencentProviderDeadline)
	v.SetDefault(KeyTencentRegion, "ap-beijing")
	v.SetDefault(KeyTencentEndpoint, "tmt.tencentcloudapi.com")
}

// Init points v at cfgFile, or at $HOME/.rtrans.yaml / ./.rtrans.yaml, and
// reads it. Only a missing default-location file is tolerated.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(configBaseName)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load snapshots v into a Config. Non-positive durations fall back to the defaults.
func Load(v *viper.Viper) Config {
	cfg := Config{
		DBPath:   v.GetString(KeyDBPath),
		LogLevel: v.GetString(KeyLogLevel),
		Endpoints: Endpoints{
			Google:         v.GetString(KeyEndpointGoogle),
			MyMemory:       v.GetString(KeyEndpointMyMemory),
			LibreTranslate: v.GetString(KeyEndpointLibreTranslate),
		},
		Timeouts: Timeouts{
			Default: v.GetDuration(KeyTimeoutDefault),
			Tencent: v.GetDuration(KeyTimeoutTencent),
		},
		Tencent: Tencent{
			Region:   v.GetString(KeyTencentRegion),
			Endpoint: v.GetString(KeyTencentEndpoint),
		},
	}
	if cfg.Timeouts.Default <= 0 {
		cfg.Timeouts.Default = domain.DefaultProviderDeadline
	}
	if cfg.Timeouts.Tencent <= 0 {
		cfg.Timeouts.Tencent = domain.TencentProviderDeadline
	}
	return cfg
}

// Default is Load over a viper instance holding only the defaults.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	return Load(v)
}
