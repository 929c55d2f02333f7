package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	GatewayBaseURL     string
	GatewayAccessToken string
	PrinterURL         string
	NotifyURL          string
	// one bound for all collaborator calls (gateway, printer, push)
	CollaboratorTimeout time.Duration

	OwnerEmail    string
	OwnerPassword string
	OwnerDni      string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:            getEnv("DB_SOURCE", "cerocafe.db"),
		Port:                getEnv("PORT", "8000"),
		JWTSecret:           getEnv("JWT_SECRET", "changeme"),
		JWTTTL:              time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		GatewayBaseURL:      getEnv("MP_BASE_URL", "https://api.mercadopago.com"),
		GatewayAccessToken:  os.Getenv("MP_ACCESS_TOKEN"),
		PrinterURL:          getEnv("PRINTER_URL", "http://localhost:9100"),
		NotifyURL:           getEnv("NOTIFY_URL", "http://localhost:9200"),
		CollaboratorTimeout: time.Duration(getEnvInt("COLLABORATOR_TIMEOUT_SECONDS", 10)) * time.Second,
		OwnerEmail:          getEnv("OWNER_EMAIL", ""),
		OwnerPassword:       getEnv("OWNER_PASSWORD", ""),
		OwnerDni:            getEnv("OWNER_DNI", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
