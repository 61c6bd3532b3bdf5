package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string           `yaml:"env"`        // Env is the current environment: local, development, production.
	HTTP       HTTPConfig       `yaml:"http"`       // HTTP holds the web surface configuration.
	Monitoring MonitoringConfig `yaml:"monitoring"` // Monitoring holds the metrics and health server configuration.
	Roster     RosterConfig     `yaml:"roster"`     // Roster holds the start-up content of the roster.
	TUI        TUIConfig        `yaml:"tui"`        // TUI holds the terminal surface configuration.
}

// HTTPConfig struct holds the address the roster web page listens on.
type HTTPConfig struct {
	Address string `yaml:"address"` // Address in host:port form, e.g. `:8080`.
}

// MonitoringConfig struct holds the port of the /metrics and /healthz server.
type MonitoringConfig struct {
	Port int `yaml:"port"`
}

// RosterConfig struct holds the optional seed document.
type RosterConfig struct {
	SeedFile string `yaml:"seed_file"` // SeedFile is an HTML document with a roster table; empty starts with no records.
}

// TUIConfig struct holds the terminal surface settings.
type TUIConfig struct {
	LogFile string `yaml:"log_file"` // LogFile receives logs while the terminal is in use; empty discards them.
}

const maxPort = 65535

// MustLoad loads the configuration from the optional YAML file named by CONFIG_PATH
// and from ROSTER_* environment variables, and returns a Config struct.
func MustLoad() *Config {
	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("http.address", ":8080")
	v.SetDefault("monitoring.port", 9090) //nolint:mnd // default monitoring port
	v.SetDefault("roster.seed_file", "")
	v.SetDefault("tui.log_file", "")

	v.SetEnvPrefix("roster")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
			panic("config file does not exist: " + configPath)
		}

		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	port := v.GetInt("monitoring.port")
	if port <= 0 || port > maxPort {
		panic("failed to parse monitoring port from configuration")
	}

	return &Config{
		Env: v.GetString("env"),
		HTTP: HTTPConfig{
			Address: v.GetString("http.address"),
		},
		Monitoring: MonitoringConfig{
			Port: port,
		},
		Roster: RosterConfig{
			SeedFile: v.GetString("roster.seed_file"),
		},
		TUI: TUIConfig{
			LogFile: v.GetString("tui.log_file"),
		},
	}
}
