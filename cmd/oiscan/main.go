package main

import (
	"os"

	"github.com/wonny/oiscan/cmd/oiscan/commands"
)

// main is the entry point for the oiscan CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/oiscan [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
