// Package config holds the frame-picker CLI's flag-derived configuration
// and its single validation pass, the same "populate a struct, validate
// once" shape the teacher applies to its env-derived server config
// (cmd/prism/main.go's envOr calls followed by explicit checks).
package config

import (
	"errors"
	"fmt"
)

// Config is the fully-parsed CLI configuration (spec §6).
type Config struct {
	Input       string
	Output      string
	From        string
	To          string
	ThreadCount ThreadCount
	Format      string
}

// Default returns the configuration's documented defaults before flags are
// applied: --from the first frame, --to end, --thread-count auto, --format
// "frame-%d.jpg", OUTPUT ".". The --from default is spelled "0f" rather than
// the bare digit "0": the time-expression grammar has no bare-integer atom
// form (a frame index always carries its "f" suffix), so the textual
// default must itself be a valid expression rather than just the numeral
// spec.md's CLI table names for the semantic default (frame zero).
func Default() Config {
	return Config{
		Output:      ".",
		From:        "0f",
		To:          "end",
		ThreadCount: ThreadCount{Auto: true},
		Format:      "frame-%d.jpg",
	}
}

// ErrMissingInput is returned by Validate when --input was not supplied.
var ErrMissingInput = errors.New("config: --input is required")

// Validate checks the fields that the flag layer can't check on its own
// (a required flag with no static default).
func (c Config) Validate() error {
	if c.Input == "" {
		return ErrMissingInput
	}
	return nil
}

// ThreadCount represents --thread-count {auto|N}: auto resolves to a
// codec thread count of 0 (let the decoder choose), matching spec §6.
type ThreadCount struct {
	Auto  bool
	Value uint16
}

// Resolve returns the thread count to pass to the decoder: 0 for auto.
func (t ThreadCount) Resolve() uint16 {
	if t.Auto {
		return 0
	}
	return t.Value
}

func (t ThreadCount) String() string {
	if t.Auto {
		return "auto"
	}
	return fmt.Sprintf("%d", t.Value)
}

// Set implements pflag.Value.
func (t *ThreadCount) Set(s string) error {
	if s == "auto" {
		*t = ThreadCount{Auto: true}
		return nil
	}
	var n uint16
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return fmt.Errorf("config: invalid --thread-count %q: must be \"auto\" or a non-negative integer", s)
	}
	*t = ThreadCount{Value: n}
	return nil
}

// Type implements pflag.Value.
func (t ThreadCount) Type() string { return "auto|N" }
