package main

import (
	"fmt"
	"os"

	"apod/pkg/cli"
	"apod/pkg/config"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	cnf, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd := cli.NewRootCommand(cli.Options{
		BaseURL:       cnf.BaseURL,
		Timeout:       cnf.Timeout(),
		UserAgent:     cnf.UserAgent,
		DefaultAPIKey: cnf.ApiKey,
		LogLevel:      cnf.LogLevel,
		Version:       Version,
		BuildTime:     BuildTime,
	})

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
