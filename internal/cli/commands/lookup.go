package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/hostparse/pkg/index"
)

// LookupOptions holds command-line options for the lookup command.
type LookupOptions struct {
	SourceOptions

	Addr bool
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand() *cobra.Command {
	opts := &LookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup <name> [hosts-file...]",
		Short: "Show which entries define a name",
		Long: `Show the hosts file entries that list a name, with file and line.

Names match case-insensitively. With --addr the argument is matched against
the address column instead. Nothing is resolved; only the files are read.

Exit codes:
  0 - At least one entry found
  1 - No entry found
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.Addr, "addr", false, "Match the address column instead of names")

	return cmd
}

func runLookup(cmd *cobra.Command, args []string, opts *LookupOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	query := args[0]
	cfg, err := opts.resolveConfig(ctx, cmd, args[1:])
	if err != nil {
		return err
	}

	run := &sourceRun{
		cfg:    cfg,
		logger: newLogger(cfg, cmd.ErrOrStderr()),
	}
	results, err := run.parseSources(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	found := 0
	for _, result := range results {
		idx := index.New(result.Hosts)
		matches := idx.Lookup(query)
		if opts.Addr {
			matches = idx.LookupAddr(query)
		}
		for _, h := range matches {
			fmt.Fprintf(tw, "%s:%d\t%s\t%s\n", result.Source, h.Line(), h.IP(), strings.Join(h.Domains(), " "))
			found++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if found == 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: not found\n", query)
		ExitCode = 1
	}

	return nil
}
