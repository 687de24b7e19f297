package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"fnolagent/internal/cli"
)

func main() {
	// Optional .env for API keys; absence is fine
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
