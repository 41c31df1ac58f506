package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverMongoDB  = "mongodb"
	DriverDynamoDB = "dynamodb"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV"`
	Port         int    `envconfig:"PORT" default:"3000"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS"`
	StoreDriver  string `envconfig:"STORE_DRIVER" default:"mongodb"`

	Mongo struct {
		URI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
		Database string `envconfig:"MONGO_DATABASE" default:"moviecatalog"`
	}
	DB struct {
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
	DynamoDB struct {
		Region          string `envconfig:"DDB_REGION"`
		Endpoint        string `envconfig:"DDB_ENDPOINT"`
		AccessKey       string `envconfig:"DDB_ACCESS_KEY"`
		SecretKey       string `envconfig:"DDB_SECRET_KEY"`
		SessionToken    string `envconfig:"DDB_SESSION_TOKEN"`
		MoviesTable     string `envconfig:"DDB_MOVIES_TABLE" default:"movies"`
		CategoriesTable string `envconfig:"DDB_CATEGORIES_TABLE" default:"categories"`
		CreateTables    bool   `envconfig:"DDB_CREATE_TABLES"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	switch cfg.StoreDriver {
	case DriverMongoDB, DriverDynamoDB, DriverPostgres:
	default:
		return nil, fmt.Errorf("load config error: unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}
