package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from an optional YAML file
// and environment variables. Mongo and RabbitMQ are optional: without them
// the service runs on in-memory storage and skips event publishing.
type Config struct {
	Env             string        `mapstructure:"env"`              // current application environment (local, production)
	Port            string        `mapstructure:"port"`             // HTTP listen port
	MongoURI        string        `mapstructure:"-"`                // Mongo connection string, env only
	MongoDatabase   string        `mapstructure:"mongo_database"`   // database holding the quiz collection
	RabbitURI       string        `mapstructure:"-"`                // RabbitMQ connection string, env only
	RabbitExchange  string        `mapstructure:"rabbit_exchange"`  // topic exchange for quiz events
	PipelineURL     string        `mapstructure:"pipeline_url"`     // base URL of the generation pipeline container
	PipelineTimeout time.Duration `mapstructure:"pipeline_timeout"` // how long a pipeline run may take
	CORSOrigins     []string      `mapstructure:"cors_origins"`     // allowed browser origins
}

// Load reads configuration from config/config.yaml (if present) and the
// environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	v.SetDefault("env", "local")
	v.SetDefault("port", "8080")
	v.SetDefault("mongo_database", "quiz_api")
	v.SetDefault("rabbit_exchange", "quiz.events")
	v.SetDefault("pipeline_timeout", "2m")
	v.SetDefault("cors_origins", []string{"http://localhost:3000"})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("mongo_uri", "MONGO_URI")
	_ = v.BindEnv("rabbitmq_uri", "RABBITMQ_URI")
	_ = v.BindEnv("rabbit_exchange", "RABBITMQ_EXCHANGE")
	_ = v.BindEnv("pipeline_url", "PIPELINE_URL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.MongoURI = v.GetString("mongo_uri")
	cfg.RabbitURI = v.GetString("rabbitmq_uri")
	return &cfg, nil
}
