// Package main is the entry point for the threefish-vault-cli application.
// It initializes the root command and registers the Threefish sub-commands
// for the CLI, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/bslater/threefish-vault/cmd/threefish-vault-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "threefish-vault-cli",
		Short: "Threefish cryptographic operations CLI tool",
		Long: `threefish-vault-cli is a command-line tool for Threefish cryptographic operations.
Supports Threefish-256, Threefish-512 and Threefish-1024 key generation as well as
file encryption and decryption with keys stored on disk.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitThreefishCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize Threefish commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
