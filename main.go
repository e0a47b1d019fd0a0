package main

import (
	"fmt"
	"os"

	"minibank/statement-analyzer/cmd/ingest"
	"minibank/statement-analyzer/cmd/list"
	"minibank/statement-analyzer/cmd/root"
	"minibank/statement-analyzer/cmd/summary"
	"minibank/statement-analyzer/internal/config"
)

func init() {
	// Load environment variables before any command runs so that
	// LOG_LEVEL and GEMINI_API_KEY are visible to configuration.
	config.LoadEnv()

	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
