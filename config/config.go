package config

import (
	"log"

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
		Port           string `mapstructure:"port"`
		FrontendOrigin string `mapstructure:"frontend_origin"`
	} `mapstructure:"server"`
	JWT struct {
		SecretKey         string `mapstructure:"secret_key"`
		AccessExpiryMins  int    `mapstructure:"access_expiry_minutes"`
		RefreshExpiryDays int    `mapstructure:"refresh_expiry_days"`
	} `mapstructure:"jwt"`
	Gemini struct {
		APIKey string `mapstructure:"api_key"`
		Model  string `mapstructure:"model"`
	} `mapstructure:"gemini"`
	Migrations struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"migrations"`
}

var AppConfig Config

func LoadConfig(path string) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.frontend_origin", "http://localhost:8080")
	viper.SetDefault("jwt.access_expiry_minutes", 15)
	viper.SetDefault("jwt.refresh_expiry_days", 7)
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("migrations.path", "file://db/migrations")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Error reading config file, %s", err)
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
