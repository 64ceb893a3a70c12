package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Log    LogConfig
	Clinic ClinicConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type LogConfig struct {
	Level string
}

type ClinicConfig struct {
	Name           string
	ConflictWindow time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "go-clinic-scheduling")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CLINIC_NAME", "City Clinic")
	viper.SetDefault("CLINIC_CONFLICT_WINDOW", "1h")

	// .env is optional, process env and defaults still apply
	_ = viper.ReadInConfig()

	conflictWindow, err := time.ParseDuration(viper.GetString("CLINIC_CONFLICT_WINDOW"))
	if err != nil || conflictWindow <= 0 {
		conflictWindow = time.Hour
	}

	config := &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Clinic: ClinicConfig{
			Name:           viper.GetString("CLINIC_NAME"),
			ConflictWindow: conflictWindow,
		},
	}

	return config, nil
}
