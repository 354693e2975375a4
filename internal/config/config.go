package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/wheelibin/huelib/internal/constants"
)

var ErrNoGeoLocation = errors.New("geoLocation is not configured")

type MQTT struct {
	Broker      string `mapstructure:"broker"`
	TopicPrefix string `mapstructure:"topicPrefix"`
	Username    string `mapstructure:"username"`
	Password    string `mapstructure:"password"`
}

type Config struct {
	BridgeIP     string        `mapstructure:"bridgeIp"`
	Username     string        `mapstructure:"username"`
	GeoLocation  string        `mapstructure:"geoLocation"`
	DatabasePath string        `mapstructure:"databasePath"`
	PollInterval time.Duration `mapstructure:"pollInterval"`
	LogLevel     string        `mapstructure:"logLevel"`
	MQTT         MQTT          `mapstructure:"mqtt"`
}

// LatLng parses GeoLocation ("51.5072,-0.1276").
func (c Config) LatLng() (float64, float64, error) {
	if c.GeoLocation == "" {
		return 0, 0, ErrNoGeoLocation
	}
	parts := strings.Split(c.GeoLocation, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid geoLocation %q", c.GeoLocation)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude in geoLocation: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude in geoLocation: %w", err)
	}
	return lat, lng, nil
}

// Level maps LogLevel onto a logger level, defaulting to info.
func (c Config) Level() log.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("databasePath", "huelib.db")
	v.SetDefault("pollInterval", constants.DefaultPollInterval)
	v.SetDefault("logLevel", "info")
	v.SetDefault("mqtt.topicPrefix", constants.DefaultTopicPrefix)
}

// InitialiseConfig sets up the global viper instance. A missing config file is
// fine, the settings can come from flags or HUELIB_ environment variables.
func InitialiseConfig(configFile string) error {
	v := viper.GetViper()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")                // name of config file (without extension)
		v.AddConfigPath("/etc/huelib/")          // path to look for the config file in
		v.AddConfigPath("$HOME/.config/huelib/") // call multiple times to add many search paths
		v.AddConfigPath(".")                     // optionally look for config in the working directory
	}
	v.SetEnvPrefix("HUELIB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("fatal error config file: %w", err)
		}
	}
	return nil
}

// Load reads the typed configuration from v.
func Load(v *viper.Viper) (Config, error) {
	setDefaults(v)
	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error reading config: %w", err)
	}
	return cfg, nil
}
