package config

// Default configuration constants, mirrored from the teacher's grouped
// const-block style (internal/infrastructure/config/defaults.go).
const (
	defaultBarPadding      = 6.0
	defaultBarBorderWidth  = 0.0
	defaultBarBorderRadius = 0.0
	defaultBarHeight       = "32"

	defaultFontFamily = "SF Pro Text"
	defaultFontSize   = 13.0

	defaultAppName     = "barstatus"
	defaultLogLevel    = "info"
	defaultHoverEffect = true

	defaultCriticalThreshold = 20.0
	defaultWarningThreshold  = 40.0

	defaultPopupWidth     = 280.0
	defaultPopupMaxHeight = 400.0

	defaultUpdateIntervalSeconds = 600.0 // weather default cadence
)

// DefaultConfig returns the built-in configuration used when no file
// exists on disk, and as the fallback base that setDefaults() seeds into
// viper before a file is read.
func DefaultConfig() *Config {
	return &Config{
		Bar: BarGeometry{
			Height:       defaultBarHeight,
			Padding:      defaultBarPadding,
			BorderWidth:  defaultBarBorderWidth,
			BorderRadius: defaultBarBorderRadius,
		},
		FontFamily:   defaultFontFamily,
		FontSize:     defaultFontSize,
		HoverEffects: defaultHoverEffect,
		App: AppConfig{
			Name:     defaultAppName,
			LogLevel: defaultLogLevel,
		},
		Modules: ModulesTree{
			Left: Half{
				Outer: []ModuleConfig{{Type: ModuleAppName}},
			},
			Right: Half{
				Inner: []ModuleConfig{{Type: ModuleClock, TimeFormat: "%H:%M:%S"}},
			},
		},
	}
}
