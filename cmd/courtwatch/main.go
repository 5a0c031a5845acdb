package main

import (
	"github.com/joho/godotenv"

	"courtwatch/internal/cli"
)

func main() {
	// Optional .env for SMTP credentials during local runs; CI supplies real
	// environment variables.
	_ = godotenv.Load()

	cli.Execute()
}
