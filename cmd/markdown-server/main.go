// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the markdown-server CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "1.0.0"

// rootCmd is the base command for the markdown-server CLI.
var rootCmd = &cobra.Command{
	Use:   "markdown-server",
	Short: "HTTP service that converts documents to Markdown",
	Long: `markdown-server exposes the markitdown document converter over HTTP.
Clients POST office documents, PDFs, or plain text to /process_file and
receive the content back as Markdown.

Configuration comes from environment variables (PORT, HOST, MAX_FILE_SIZE,
ENABLE_RATE_LIMIT, RATE_LIMIT, ...) or an optional markdown-server.yaml file.`,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./markdown-server.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
