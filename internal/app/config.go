package app

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/stackmart/marketplace-backend/internal/pkg/logger"
	"github.com/stackmart/marketplace-backend/internal/utils"
)

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Name, p.SSLMode,
	)
}

type Config struct {
	ServiceName string
	Environment string
	HTTPAddr    string
	Postgres    PostgresConfig
}

func LoadConfig(log *logger.Logger) Config {
	_ = godotenv.Load()

	host := utils.GetEnv("HTTP_HOST", "0.0.0.0", log)
	port := utils.GetEnvAsInt("HTTP_PORT", 8080, log)

	return Config{
		ServiceName: utils.GetEnv("SERVICE_NAME", "marketplace-backend", log),
		Environment: utils.GetEnv("APP_ENV", "local", log),
		HTTPAddr:    fmt.Sprintf("%s:%d", host, port),
		Postgres: PostgresConfig{
			Host:     utils.GetEnv("POSTGRES_HOST", "localhost", log),
			Port:     utils.GetEnvAsInt("POSTGRES_PORT", 5432, log),
			User:     utils.GetEnv("POSTGRES_USER", "postgres", log),
			Password: utils.GetEnv("POSTGRES_PASSWORD", "", log),
			Name:     utils.GetEnv("POSTGRES_NAME", "marketplace", log),
			SSLMode:  utils.GetEnv("POSTGRES_SSLMODE", "disable", log),
		},
	}
}
