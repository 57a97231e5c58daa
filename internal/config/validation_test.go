package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidateAllColorsParse is Invariant P2 (first half): for configs
// where every color parses, Validate yields zero errors.
func TestValidateAllColorsParse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = "#000000"
	cfg.Text = "#ffffff"
	cfg.Accent = "#00ff00"

	result := Validate(cfg)
	assert.Empty(t, result.Errors)
}

// TestValidateMalformedColorIsError is Invariant P2 (second half): a
// malformed color token yields at least one error referencing that path.
func TestValidateMalformedColorIsError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Background = "not-a-color"

	result := Validate(cfg)
	assert.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0], "background")
}

func TestValidateUnknownModuleTypeIsWarningNotError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modules.Left.Outer = []ModuleConfig{{Type: "bogus"}}

	result := Validate(cfg)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.Warnings)
}

func TestValidateNegativeGeometryIsError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bar.Padding = -1

	result := Validate(cfg)
	assert.NotEmpty(t, result.Errors)
}

func TestValidateOutOfRangeThresholdIsWarning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modules.Left.Outer = []ModuleConfig{{Type: ModuleBattery, CriticalThreshold: 150}}

	result := Validate(cfg)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.Warnings)
}

func TestValidateScriptWithoutCommandWarns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modules.Left.Outer = []ModuleConfig{{Type: ModuleScript}}

	result := Validate(cfg)
	assert.NotEmpty(t, result.Warnings)
}

func TestValidateStaticWithoutTextOrIconWarns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Modules.Left.Outer = []ModuleConfig{{Type: ModuleStatic}}

	result := Validate(cfg)
	assert.NotEmpty(t, result.Warnings)
}
