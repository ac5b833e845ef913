package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Link     LinkConfig     `mapstructure:"link"`
	Panel    PanelConfig    `mapstructure:"panel"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Record   RecordConfig   `mapstructure:"record"`
	Log      LogConfig      `mapstructure:"log"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// LinkConfig selects the byte transport between the feeder and the tracker.
// Mode "serial" opens Addr as a device path at Baud; mode "tcp" treats Addr
// as host:port (the feeder listens there, the tracker dials it).
type LinkConfig struct {
	Mode string `mapstructure:"mode"`
	Addr string `mapstructure:"addr"`
	Baud int    `mapstructure:"baud"`
}

// PanelConfig selects the host implementations of the board peripherals.
type PanelConfig struct {
	Display   string `mapstructure:"display"`   // "console" or "log"
	Indicator string `mapstructure:"indicator"` // "console" or "log"
	Button    string `mapstructure:"button"`    // "stdin" or "none"
}

type FeedConfig struct {
	Source   string        `mapstructure:"source"`   // "binance" or "mock"
	Symbol   string        `mapstructure:"symbol"`   // e.g. "btcusdt"
	Interval time.Duration `mapstructure:"interval"` // line emit cadence
	REST     RESTConfig    `mapstructure:"rest"`
	WS       WSConfig      `mapstructure:"ws"`
}

type RESTConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}
type WSConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RecordConfig switches sample and alert persistence on. With Enabled false
// the tracker runs on a no-op recorder. Retention 0 keeps samples forever.
type RecordConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	CreateDB  bool          `mapstructure:"create_db"`
	Retention time.Duration `mapstructure:"retention"`
}

// LogConfig defines the logger configuration options.
type LogConfig struct {
	Level       string `mapstructure:"level"`       // log level: "debug", "info", "warn", "error"
	Format      string `mapstructure:"format"`      // log format: "json" or "console"
	OutputFile  string `mapstructure:"output_file"` // file path to store logs (optional)
	Environment string `mapstructure:"environment"` // environment: "dev" or "prod"
}

// Load loads application configuration using Viper.
// It reads from config.yaml and overrides with environment variables.
func Load() *Config {
	v := viper.New()

	v.SetConfigName("config") // config.yaml
	v.SetConfigType("yaml")

	ex, _ := os.Executable()
	if strings.Contains(ex, "go-build") {
		// go run / go test: resolve relative to the working directory
		pwd, _ := os.Getwd()
		v.AddConfigPath(filepath.Join(pwd, "config"))
		v.AddConfigPath(filepath.Join(pwd, "../../config"))
	} else {
		v.AddConfigPath(filepath.Join(filepath.Dir(ex), "../config"))
	}

	// Support environment variables with dot notation (e.g., LINK_ADDR)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("failed to read config: %v", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("failed to unmarshal config: %v", err)
	}

	return &cfg
}
