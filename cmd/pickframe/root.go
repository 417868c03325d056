package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/yyxxryrx/pickframe/internal/config"
	"github.com/yyxxryrx/pickframe/internal/diag"
	"github.com/yyxxryrx/pickframe/internal/orchestrator"
	"github.com/yyxxryrx/pickframe/internal/timeexpr"
)

// exitCode values per spec §6: 0 success, 1 parse-diagnostic printed,
// 2 semantic-validation diagnostic printed.
const (
	exitOK            = 0
	exitParseError    = 1
	exitSemanticError = 2
)

func newRootCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "pickframe OUTPUT",
		Short: "Resolve a time-expression range for video frame extraction",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.Output = args[0]
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Input, "input", "i", "", "the video path (required)")
	flags.StringVarP(&cfg.From, "from", "f", cfg.From, "start bound: time expression")
	flags.StringVarP(&cfg.To, "to", "t", cfg.To, "end bound: time expression")
	flags.Var(&cfg.ThreadCount, "thread-count", `codec thread count: "auto" or an integer`)
	flags.StringVar(&cfg.Format, "format", cfg.Format, "printf-style output filename template")
	cmd.MarkFlagRequired("input")

	return cmd
}

// run parses and validates the --from/--to expressions and, on success,
// prints the input, output, filename template and thread count to stdout — a
// stand-in for the native decoder that would otherwise consume this
// *orchestrator.BoundPair across the C ABI (cmd/pickframe/abi).
func run(cmd *cobra.Command, cfg config.Config) error {
	pair, err := orchestrator.Build(cfg.From, cfg.To)
	if err != nil {
		boundErr, ok := err.(*orchestrator.BoundError)
		if !ok {
			return err
		}
		d := diag.FromBoundError(boundErr, cfg.From, cfg.To)
		d.Render(cmd.ErrOrStderr())

		if isParseFailure(boundErr.Err) {
			os.Exit(exitParseError)
		}
		os.Exit(exitSemanticError)
	}

	slog.Info("bounds parsed and validated",
		"input", cfg.Input,
		"output", cfg.Output,
		"from_atoms", len(pair.From.Items),
		"to_atoms", len(pair.To.Items),
		"thread_count", cfg.ThreadCount.Resolve(),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "input=%s output=%s format=%s thread-count=%s\n",
		cfg.Input, cfg.Output, cfg.Format, cfg.ThreadCount.String())
	return nil
}

func isParseFailure(err error) bool {
	_, ok := err.(*timeexpr.ParseError)
	return ok
}
