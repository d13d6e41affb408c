package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	JWT struct {
		AccessSecretKey   string `mapstructure:"access_secret_key"`
		AccessTTLMinutes  int    `mapstructure:"access_ttl_minutes"`
		RefreshSecretKey  string `mapstructure:"refresh_secret_key"`
		RefreshTTLMinutes int    `mapstructure:"refresh_ttl_minutes"`
	} `mapstructure:"jwt"`
	Security struct {
		PasswordSalt string `mapstructure:"password_salt"`
		BcryptCost   int    `mapstructure:"bcrypt_cost"`
	} `mapstructure:"security"`
	Sweeper struct {
		IntervalMinutes int `mapstructure:"interval_minutes"`
	} `mapstructure:"sweeper"`
}

// AccessTTL returns the access token lifetime, defaulting to 2 hours.
func (c *Config) AccessTTL() time.Duration {
	if c.JWT.AccessTTLMinutes <= 0 {
		return 2 * time.Hour
	}
	return time.Duration(c.JWT.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the refresh token lifetime, defaulting to 14 days.
func (c *Config) RefreshTTL() time.Duration {
	if c.JWT.RefreshTTLMinutes <= 0 {
		return 14 * 24 * time.Hour
	}
	return time.Duration(c.JWT.RefreshTTLMinutes) * time.Minute
}

// SweepInterval returns how often expired sessions are purged, defaulting to hourly.
func (c *Config) SweepInterval() time.Duration {
	if c.Sweeper.IntervalMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.Sweeper.IntervalMinutes) * time.Minute
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
