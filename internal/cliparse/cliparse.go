// Package cliparse parses the frame-picker's argv into a config.Config
// without pulling in cobra's command tree — used by the C ABI entry point
// (cmd/pickframe/abi), which reads process argv directly rather than
// going through the cobra-driven cmd/pickframe CLI. Built directly on
// pflag, the same POSIX flag library gwcli (github.com/gravwell/gravwell's
// CLI) uses without a cobra command wrapping it.
package cliparse

import (
	"github.com/spf13/pflag"

	"github.com/yyxxryrx/pickframe/internal/config"
)

// Parse parses args (conventionally os.Args[1:]) into a Config, applying
// the documented defaults (spec §6) and validating the result.
func Parse(args []string) (config.Config, error) {
	cfg := config.Default()

	fs := pflag.NewFlagSet("pickframe", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Input, "input", "i", "", "the video path (required)")
	fs.StringVarP(&cfg.From, "from", "f", cfg.From, "start bound: time expression")
	fs.StringVarP(&cfg.To, "to", "t", cfg.To, "end bound: time expression")
	fs.Var(&cfg.ThreadCount, "thread-count", `codec thread count: "auto" or an integer`)
	fs.StringVar(&cfg.Format, "format", cfg.Format, "printf-style output filename template")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.Output = rest[0]
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
