//go:build linux || darwin

package main

import (
	"runtime/debug"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// enableCrashForensics raises the process's core-dump limit to its
// hard ceiling and asks the runtime to emit a crash traceback, so a GTK
// segfault on an unsupported desktop leaves a core file behind instead
// of vanishing silently (grounded on the teacher's
// cmd/dumber/main_unix.go).
func enableCrashForensics() {
	debug.SetTraceback("crash")

	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		return
	}
	if limit.Cur >= limit.Max {
		return
	}
	limit.Cur = limit.Max
	_ = unix.Setrlimit(unix.RLIMIT_CORE, &limit)
}

func logCoreDumpLimits(log zerolog.Logger) {
	var limit unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_CORE, &limit); err != nil {
		log.Debug().Err(err).Msg("failed to read RLIMIT_CORE")
		return
	}
	log.Debug().
		Str("soft", formatRlimit(limit.Cur)).
		Str("hard", formatRlimit(limit.Max)).
		Msg("core dump limits")
}

func formatRlimit(value uint64) string {
	if value == unix.RLIM_INFINITY {
		return "infinity"
	}
	return strconv.FormatUint(value, 10)
}
