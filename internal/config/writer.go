package config

import (
	"bytes"
	"os"

	"github.com/BurntSushi/toml"
)

// WriteDefaultConfig marshals DefaultConfig() to TOML and writes it to
// path, creating parent directories as needed. Grounded on the teacher's
// createDefaultConfig flow (internal/infrastructure/config/loader.go),
// using BurntSushi/toml for the encode side since viper itself only
// reads TOML.
func WriteDefaultConfig(path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(DefaultConfig()); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
