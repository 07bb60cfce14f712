package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Generator      Generator      `mapstructure:",squash"`
	InsightPrewarm InsightPrewarm `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Generator holds the connection settings for the external narrative
// generation service.
type Generator struct {
	URL            string        `mapstructure:"generator_url"`
	RequestTimeout time.Duration `mapstructure:"generator_request_timeout"`
}

// InsightPrewarm configures the scheduled pre-generation of dashboard
// insights and the retention purge of old cache rows.
type InsightPrewarm struct {
	CronSchedule  string `mapstructure:"insight_prewarm_cron"`
	Enabled       bool   `mapstructure:"insight_prewarm_enabled"`
	Languages     string `mapstructure:"insight_prewarm_languages"`
	RetentionDays int    `mapstructure:"insight_retention_days"`
}

// LanguageList splits the configured comma-separated language codes.
func (p InsightPrewarm) LanguageList() []string {
	languages := make([]string, 0)
	for _, lang := range strings.Split(p.Languages, ",") {
		lang = strings.TrimSpace(lang)
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dashboard")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("GENERATOR_URL", "http://localhost:8000")
	viper.SetDefault("GENERATOR_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("INSIGHT_PREWARM_CRON", "0 6 * * *") // every day at 6am
	viper.SetDefault("INSIGHT_PREWARM_ENABLED", false)
	viper.SetDefault("INSIGHT_PREWARM_LANGUAGES", "en,vi")
	viper.SetDefault("INSIGHT_RETENTION_DAYS", 30)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file from the most likely locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from:", location)
			return
		}
	}

	logrus.Info("no .env file found, relying on environment variables")
}
