// Command pickframe parses a --from/--to time-expression range for a video
// frame-picker tool and reports the resolved thread count and output
// naming template. The time-expression front end this CLI exercises also
// ships as a C ABI (see ./abi) for a native video decoder host.
package main

import (
	"log/slog"
	"os"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("pickframe failed", "error", err)
		os.Exit(1)
	}
}
