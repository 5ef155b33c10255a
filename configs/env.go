package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnvFor(v string) (x string) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("no %s file found, falling back to process environment", envFile)
	}

	x = os.Getenv(v)
	return
}
