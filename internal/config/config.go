package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloatEnv returns a float environment variable or a default value.
func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// Collaborators holds the base URLs and the call budget for the external
// services the sagas talk to.
type Collaborators struct {
	LedgerURL    string
	RiskURL      string
	ConverterURL string
	NotifierURL  string
	Timeout      time.Duration
}

// LoadCollaborators reads collaborator endpoints from the environment.
// RISK_SERVICE_URL defaults to the risk endpoints this binary mounts
// itself, so a single-node deployment works out of the box.
func LoadCollaborators() Collaborators {
	port := GetEnv("PORT", "3000")
	return Collaborators{
		LedgerURL:    GetEnv("LEDGER_SERVICE_URL", "http://localhost:8081"),
		RiskURL:      GetEnv("RISK_SERVICE_URL", "http://localhost:"+port+"/risk"),
		ConverterURL: GetEnv("CONVERTER_SERVICE_URL", "http://localhost:8082"),
		NotifierURL:  GetEnv("NOTIFIER_SERVICE_URL", "http://localhost:8083"),
		Timeout:      GetDurationEnv("COLLABORATOR_TIMEOUT", 10*time.Second),
	}
}
