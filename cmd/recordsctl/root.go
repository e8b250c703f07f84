package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openswim/swimrec/internal/version"
	"github.com/openswim/swimrec/pkg/wsclient"
)

var (
	registryFile string
	timeout      time.Duration
	insecure     bool
)

var rootCmd = &cobra.Command{
	Use:   "recordsctl",
	Short: "Query swim record services",
	Long: `recordsctl talks to the configured swim record services and prints
the {status, error, content} envelope for each call.

Get started:
  recordsctl services          List registered services
  recordsctl invoke records "SCY=1"`,
	Version:       fmt.Sprintf("%s (commit %s)", version.Version, version.Commit),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&registryFile, "registry", "",
		"path to a YAML service registry (default: built-in registry)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second,
		"total timeout per request")
	rootCmd.PersistentFlags().BoolVar(&insecure, "insecure", false,
		"use plain HTTP instead of HTTPS (dev/test services)")
}

// loadRegistry resolves the registry from --registry or the built-in one.
func loadRegistry() (wsclient.Registry, error) {
	if registryFile == "" {
		return wsclient.DefaultRegistry(), nil
	}
	return wsclient.LoadRegistry(registryFile)
}

// clientOptions translates the persistent flags into client options.
func clientOptions() []wsclient.Option {
	opts := []wsclient.Option{wsclient.WithTimeout(timeout)}
	if insecure {
		opts = append(opts, wsclient.WithInsecure())
	}
	return opts
}
