package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	outputPath             string
	includeDefaultSettings bool
)

var rootCmd = &cobra.Command{
	Use:   "putty2ssh <sessions.reg>",
	Short: "Convert exported PuTTY registry sessions to OpenSSH client config",
	Long: `putty2ssh reads a Windows registry export (.reg) of the PuTTY Sessions
key, keeps the SSH sessions that have a hostname, and emits OpenSSH client
configuration suitable for ~/.ssh/config.

Example:
  putty2ssh sessions.reg
  putty2ssh sessions.reg -o ~/.ssh/config.putty
  putty2ssh sessions.reg --include-default-settings`,
	Version: "0.1.0",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0])
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors and the config itself")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write config to this file instead of stdout")
	rootCmd.Flags().
		BoolVar(&includeDefaultSettings, "include-default-settings", false, "Include the 'Default Settings' template session if it has a hostname")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// Helper functions for output

var errorColor = color.New(color.FgRed)

// printError prints an error message to stderr
func printError(format string, args ...interface{}) {
	errorColor.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a progress message to stderr if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
