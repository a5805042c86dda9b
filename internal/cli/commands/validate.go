package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/hostparse/pkg/config"
	"github.com/ccollicutt/hostparse/pkg/hostsfile"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a hostparse configuration file without parsing any hosts file.

Checks:
  - YAML syntax
  - Required fields
  - Size and timeout limits
  - Output format and log level
  - Source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Sources:        %d pattern(s)\n", len(cfg.Sources))
	fmt.Fprintf(out, "  Strict:         %t\n", cfg.Strict)
	fmt.Fprintf(out, "  Max eager size: %d bytes\n", cfg.MaxEagerSize)
	fmt.Fprintf(out, "  Output:         %s\n", cfg.Output)

	files, err := hostsfile.ExpandSources(cfg.Sources)
	if err != nil {
		fmt.Fprintf(out, "\nWarning: Error expanding source patterns: %v\n", err)
	} else {
		fmt.Fprintf(out, "\nHosts files matched: %d\n", len(files))
		for _, f := range files {
			if _, err := os.Stat(f); err != nil {
				fmt.Fprintf(out, "  - %s (warning: %v)\n", f, err)
				continue
			}
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}

	return nil
}
