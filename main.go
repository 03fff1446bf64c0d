// main is the entry point for the gitpulse CLI.
package main

import (
	"github.com/joho/godotenv"

	"github.com/huangsam/gitpulse/cmd"
	"github.com/huangsam/gitpulse/internal/contract"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
