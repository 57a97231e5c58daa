// Package launchagent manages the macOS launchd user agent that starts
// the bar at login (§6: "Persisted state layout"), grounded on the
// teacher's desktop-integration adapter (internal/infrastructure/desktop/
// adapter.go) which writes/removes a freedesktop.org entry the same way:
// resolve the running executable, template a descriptor file, shell out
// to the OS tool that (re)loads it.
package launchagent

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
)

const filePerm = 0o644

// plistTemplate is the launchd property-list format (§6): label,
// program path, RunAtLoad, KeepAlive, stdout/stderr redirection.
const plistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{.Label}}</string>
	<key>ProgramArguments</key>
	<array>
		<string>{{.ExecPath}}</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<false/>
	<key>StandardOutPath</key>
	<string>{{.StdoutPath}}</string>
	<key>StandardErrorPath</key>
	<string>{{.StderrPath}}</string>
</dict>
</plist>
`

type plistData struct {
	Label      string
	ExecPath   string
	StdoutPath string
	StderrPath string
}

// Agent manages the on-disk plist for one reverse-DNS label.
type Agent struct {
	label string
	log   zerolog.Logger
}

// New creates an Agent for the given reverse-DNS label (e.g.
// "com.barstatus.agent").
func New(label string, log zerolog.Logger) *Agent {
	return &Agent{label: label, log: log.With().Str("component", "launchagent").Logger()}
}

func (a *Agent) plistPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("launchagent: resolve home dir: %w", err)
	}
	return filepath.Join(home, "Library", "LaunchAgents", a.label+".plist"), nil
}

func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("launchagent: resolve executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(execPath)
	if err == nil {
		execPath = resolved
	}
	return execPath, nil
}

func (a *Agent) render(execPath string) (string, error) {
	tmpl, err := template.New("plist").Parse(plistTemplate)
	if err != nil {
		return "", err
	}
	data := plistData{
		Label:      a.label,
		ExecPath:   execPath,
		StdoutPath: filepath.Join("/tmp", a.label+".stdout.log"),
		StderrPath: filepath.Join("/tmp", a.label+".stderr.log"),
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Sync ensures the launch agent plist matches the running binary's path
// (§6: "On each startup, if the plist exists and the binary path differs
// from the running binary, rewrite it and reload the agent"). When
// enabled is false, any existing plist is removed and unloaded instead.
func (a *Agent) Sync(enabled bool) error {
	path, err := a.plistPath()
	if err != nil {
		return err
	}

	if !enabled {
		return a.remove(path)
	}

	execPath, err := executablePath()
	if err != nil {
		return err
	}

	content, err := a.render(execPath)
	if err != nil {
		return err
	}

	existing, statErr := os.ReadFile(path)
	if statErr == nil && string(existing) == content {
		return nil // up to date, nothing to reload
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("launchagent: create LaunchAgents dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("launchagent: write plist: %w", err)
	}

	a.log.Info().Str("path", path).Str("exec_path", execPath).Msg("launch agent plist written")
	return a.reload(path)
}

func (a *Agent) remove(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	a.unload(path)
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("launchagent: remove plist: %w", err)
	}
	a.log.Info().Str("path", path).Msg("launch agent plist removed")
	return nil
}

func (a *Agent) reload(path string) error {
	a.unload(path)
	if err := exec.Command("launchctl", "load", "-w", path).Run(); err != nil {
		a.log.Warn().Err(err).Msg("launchctl load failed (non-fatal outside macOS)")
	}
	return nil
}

func (a *Agent) unload(path string) {
	_ = exec.Command("launchctl", "unload", path).Run()
}
