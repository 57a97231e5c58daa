package modules

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// shellTimeout is the default per-call timeout for shell-backed data
// fetches (§5: "Cancellation/timeouts").
const shellTimeout = 10 * time.Second

// runShell runs command through /bin/sh -c with shellTimeout, killing it
// on timeout, and returns trimmed stdout. Failures (non-zero exit,
// timeout, missing binary) are reported as an error so the caller can
// keep its last published value (§7: "Producer failure").
func runShell(command string) (string, error) {
	if strings.TrimSpace(command) == "" {
		return "", errEmptyCommand
	}
	ctx, cancel := context.WithTimeout(context.Background(), shellTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// spawnDetached runs command without waiting for it to finish, used for
// click_command / right_click_command dispatch (§4.7 step 4/5) so a slow
// or interactive command never blocks the GUI event loop.
func spawnDetached(command string) error {
	if strings.TrimSpace(command) == "" {
		return errEmptyCommand
	}
	cmd := exec.Command("/bin/sh", "-c", command)
	return cmd.Start()
}

// SpawnDetachedShell is spawnDetached exported for the bar view's click
// dispatch (§4.7 steps 4/5: click_command / right_click_command).
func SpawnDetachedShell(command string) error {
	return spawnDetached(command)
}

type shellError string

func (e shellError) Error() string { return string(e) }

const errEmptyCommand = shellError("empty command")
