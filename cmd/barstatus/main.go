// Command barstatus is the App Shell entrypoint (§4.9): it starts the
// GTK event loop, the bar windows, the popup/panel host windows, and
// both IPC servers.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/barstatus/barstatus/internal/app"
	"github.com/barstatus/barstatus/internal/logging"
)

// Build-time variables (set via ldflags), grounded on the teacher's
// cmd/dumber/main.go version/commit/buildDate block.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// GTK requires every GTK call to originate from the thread that
	// created the Application (internal/ui/app.go's runGUI).
	runtime.LockOSThread()

	log := logging.Init(logLevelFromEnv(), isTerminal())
	log.Info().Str("version", version).Str("commit", commit).Msg("starting barstatus")

	enableCrashForensics()
	logCoreDumpLimits(log)

	a, err := app.New(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "barstatus: %v\n", err)
		return 1
	}

	return a.Run(os.Args)
}

func logLevelFromEnv() string {
	if v := os.Getenv("BARSTATUS_LOG_LEVEL"); v != "" {
		return v
	}
	return "info"
}

func isTerminal() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
