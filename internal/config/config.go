package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/olehkaliuzhnyi/wallet-identity/pkg/models"
)

// Config holds all configurable parameters for wallet identity tooling.
type Config struct {
	// Treat testnet and regtest networks as compatible
	AllowRegtestCrossover bool

	// Encoding used when bch addresses are produced. Legacy unless cashaddr is requested.
	BCHAddressFormat models.AddressFormat

	// Hex public keys trusted to sign admin requests
	AdminPubKeys []string

	// Logging
	LogLevel  string
	LogFormat string

	// Prometheus namespace for counters
	MetricsNamespace string
}

// Default returns a Config populated with default values.
func Default() Config {
	return Config{
		AllowRegtestCrossover: false,
		BCHAddressFormat:      models.FormatLegacy,

		LogLevel:  "info",
		LogFormat: "console",

		MetricsNamespace: "wallet_identity",
	}
}

// FromEnv returns a Config populated from environment variables,
// falling back to defaults for unset values.
func FromEnv() Config {
	cfg := Default()

	if v := os.Getenv("ALLOW_REGTEST_CROSSOVER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AllowRegtestCrossover = b
		}
	}
	if v := os.Getenv("BCH_ADDRESS_FORMAT"); v != "" {
		switch f := models.AddressFormat(strings.ToLower(v)); f {
		case models.FormatLegacy, models.FormatCashAddr:
			cfg.BCHAddressFormat = f
		}
	}
	if v := os.Getenv("ADMIN_PUBKEYS"); v != "" {
		cfg.AdminPubKeys = splitList(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("METRICS_NAMESPACE"); v != "" {
		cfg.MetricsNamespace = v
	}

	return cfg
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
