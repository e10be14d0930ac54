package config

import (
	"os"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName          string
	HTTPPort             string
	PostgresDSN          string
	TreasuryWithdrawers  []string
	AutoMigrateOnStartup bool
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "fanvote"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	var withdrawers []string
	for _, value := range strings.Split(os.Getenv("TREASURY_WITHDRAWERS"), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			withdrawers = append(withdrawers, value)
		}
	}

	return Config{
		ServiceName:          service,
		HTTPPort:             port,
		PostgresDSN:          os.Getenv("POSTGRES_DSN"),
		TreasuryWithdrawers:  withdrawers,
		AutoMigrateOnStartup: envBool("AUTO_MIGRATE_ON_STARTUP", false),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
