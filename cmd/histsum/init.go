package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KRNK97/ai-browser-tattoo-generator/internal/config"
)

//go:embed templates/histsum.yaml
var configTemplate embed.FS

// configFileName is the default settings file name.
const configFileName = config.DefaultConfigFile

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a histsum settings file",
		Long: `Init writes a commented .histsum settings file in the current directory.

The generated file lists every setting with its default value:
- summary limits (top domains, titles per domain, samples, minimum title length)
- the field names tried when reading an export
- default output file names

Examples:
  # Create .histsum in current directory
  histsum init

  # Create the file in the XDG config directory
  histsum init -o ~/.config/histsum/config.yaml

  # Force overwrite existing file
  histsum init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", configFileName,
		"Output file path for the settings file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing settings file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/histsum.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to change:")
	fmt.Fprintln(out, "  - How many domains and titles the summary keeps")
	fmt.Fprintln(out, "  - Which export fields hold the url, title and timestamp")
	fmt.Fprintln(out, "  - Default output file names")

	return nil
}
