// Package config loads, validates, and hot-reloads the bar's on-disk
// configuration (components C1/C2 of the design).
package config

// ModuleType is the closed vocabulary of recognized module kinds (§6).
type ModuleType string

const (
	ModuleClock      ModuleType = "clock"
	ModuleDate       ModuleType = "date"
	ModuleDateTime   ModuleType = "datetime"
	ModuleDemo       ModuleType = "demo"
	ModuleStatic     ModuleType = "static"
	ModuleBattery    ModuleType = "battery"
	ModuleCPU        ModuleType = "cpu"
	ModuleTemp       ModuleType = "temperature"
	ModuleMemory     ModuleType = "memory"
	ModuleDisk       ModuleType = "disk"
	ModuleNetwork    ModuleType = "network"
	ModuleWifi       ModuleType = "wifi"
	ModuleVolume     ModuleType = "volume"
	ModuleAppName    ModuleType = "app_name"
	ModuleWinTitle   ModuleType = "window_title"
	ModuleNowPlaying ModuleType = "now_playing"
	ModuleScript     ModuleType = "script"
	ModuleWeather    ModuleType = "weather"
	ModuleSeparator  ModuleType = "separator"
	ModuleSkeleton   ModuleType = "skeleton"
	ModuleNews       ModuleType = "news"
	ModuleCalendar   ModuleType = "calendar"
	ModuleHisohiso   ModuleType = "hisohiso"
	ModuleExternal   ModuleType = "external"
)

// KnownModuleTypes lists every recognized ModuleType, used by validation
// to flag unknown types with a warning.
var KnownModuleTypes = map[ModuleType]bool{
	ModuleClock: true, ModuleDate: true, ModuleDateTime: true, ModuleDemo: true,
	ModuleStatic: true, ModuleBattery: true, ModuleCPU: true, ModuleTemp: true,
	ModuleMemory: true, ModuleDisk: true, ModuleNetwork: true, ModuleWifi: true,
	ModuleVolume: true, ModuleAppName: true, ModuleWinTitle: true,
	ModuleNowPlaying: true, ModuleScript: true, ModuleWeather: true,
	ModuleSeparator: true, ModuleSkeleton: true, ModuleNews: true,
	ModuleCalendar: true, ModuleHisohiso: true, ModuleExternal: true,
}

// SeparatorType is the closed vocabulary for separator modules (§6).
type SeparatorType string

const (
	SeparatorSpace SeparatorType = "space"
	SeparatorLine  SeparatorType = "line"
	SeparatorDot   SeparatorType = "dot"
	SeparatorIcon  SeparatorType = "icon"
)

var knownSeparatorTypes = map[SeparatorType]bool{
	SeparatorSpace: true, SeparatorLine: true, SeparatorDot: true, SeparatorIcon: true,
}

// PopupKind is the closed vocabulary of popup kinds (§6).
type PopupKind string

const (
	PopupCalendar PopupKind = "calendar"
	PopupDemo     PopupKind = "demo"
	PopupInfo     PopupKind = "info"
	PopupScript   PopupKind = "script"
	PopupPanel    PopupKind = "panel"
	PopupNews     PopupKind = "news"
)

var knownPopupKinds = map[PopupKind]bool{
	PopupCalendar: true, PopupDemo: true, PopupInfo: true,
	PopupScript: true, PopupPanel: true, PopupNews: true,
}

// Align is the closed vocabulary shared by label and popup alignment (§6).
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

var knownAligns = map[Align]bool{AlignLeft: true, AlignCenter: true, AlignRight: true}

// BarGeometry controls the bar window's outer chrome.
type BarGeometry struct {
	Height       string  `mapstructure:"height" toml:"height"` // pixel integer string, or "auto"
	Padding      float64 `mapstructure:"padding" toml:"padding"`
	BorderWidth  float64 `mapstructure:"border_width" toml:"border_width"`
	BorderRadius float64 `mapstructure:"border_radius" toml:"border_radius"`
}

// NotchOverride lets the user force notch geometry instead of querying the
// OS (useful on hardware/OS combinations without safeAreaInsets).
type NotchOverride struct {
	Enabled bool    `mapstructure:"enabled" toml:"enabled"`
	Width   float64 `mapstructure:"width" toml:"width"`
	Color   string  `mapstructure:"color" toml:"color"`
	Radius  float64 `mapstructure:"radius" toml:"radius"`
}

// Config is the root, immutable-once-published configuration snapshot.
type Config struct {
	Bar    BarGeometry `mapstructure:"bar" toml:"bar"`
	Notch  NotchOverride `mapstructure:"notch" toml:"notch"`

	Background      string `mapstructure:"background" toml:"background"`
	Text            string `mapstructure:"text" toml:"text"`
	Border          string `mapstructure:"border" toml:"border"`
	PopupBackground string `mapstructure:"popup_background" toml:"popup_background"`
	PopupText       string `mapstructure:"popup_text" toml:"popup_text"`

	Muted       string `mapstructure:"muted" toml:"muted"`
	Accent      string `mapstructure:"accent" toml:"accent"`
	AccentOn    string `mapstructure:"accent_on" toml:"accent_on"`
	Destructive string `mapstructure:"destructive" toml:"destructive"`
	Success     string `mapstructure:"success" toml:"success"`
	Warning     string `mapstructure:"warning" toml:"warning"`
	Card        string `mapstructure:"card" toml:"card"`
	CardOn      string `mapstructure:"card_on" toml:"card_on"`

	FontFamily string `mapstructure:"font_family" toml:"font_family"`
	FontSize   float64 `mapstructure:"font_size" toml:"font_size"`

	HoverEffects bool `mapstructure:"hover_effects" toml:"hover_effects"`

	Modules ModulesTree `mapstructure:"modules" toml:"modules"`

	// Clock is a legacy top-level table kept for backward compatibility
	// with configs that predate the `modules` tree.
	Clock *ModuleConfig `mapstructure:"clock" toml:"clock,omitempty"`

	App AppConfig `mapstructure:"app" toml:"app"`
}

// AppConfig holds process-level knobs unrelated to bar visuals.
type AppConfig struct {
	Name           string `mapstructure:"name" toml:"name"`
	LaunchAtLogin  bool   `mapstructure:"launch_at_login" toml:"launch_at_login"`
	LogLevel       string `mapstructure:"log_level" toml:"log_level"`
}

// Half identifies a side of the (possibly virtual) notch.
type Half struct {
	Outer []ModuleConfig `mapstructure:"outer" toml:"outer"`
	Inner []ModuleConfig `mapstructure:"inner" toml:"inner"`
}

// ModulesTree is the zone-based module layout from §3.
type ModulesTree struct {
	Left  Half `mapstructure:"left" toml:"left"`
	Right Half `mapstructure:"right" toml:"right"`
}

// ModuleConfig is a tagged record describing one bar module (§3).
type ModuleConfig struct {
	Type ModuleType `mapstructure:"type" toml:"type"`
	ID   string      `mapstructure:"id" toml:"id,omitempty"`

	// Visual overrides
	Color        string  `mapstructure:"color" toml:"color,omitempty"`
	Background   string  `mapstructure:"background" toml:"background,omitempty"`
	BorderColor  string  `mapstructure:"border_color" toml:"border_color,omitempty"`
	BorderWidth  float64 `mapstructure:"border_width" toml:"border_width,omitempty"`
	CornerRadius float64 `mapstructure:"corner_radius" toml:"corner_radius,omitempty"`
	Padding      float64 `mapstructure:"padding" toml:"padding,omitempty"`
	MarginLeft   float64 `mapstructure:"margin_left" toml:"margin_left,omitempty"`
	MarginRight  float64 `mapstructure:"margin_right" toml:"margin_right,omitempty"`

	// Flex sizing
	Flex     bool    `mapstructure:"flex" toml:"flex,omitempty"`
	MinWidth float64 `mapstructure:"min_width" toml:"min_width,omitempty"`
	MaxWidth float64 `mapstructure:"max_width" toml:"max_width,omitempty"`

	// Label
	Label         string `mapstructure:"label" toml:"label,omitempty"`
	LabelFontSize float64 `mapstructure:"label_font_size" toml:"label_font_size,omitempty"`
	LabelAlign    Align  `mapstructure:"label_align" toml:"label_align,omitempty"`

	// Thresholds
	CriticalThreshold float64 `mapstructure:"critical_threshold" toml:"critical_threshold,omitempty"`
	WarningThreshold  float64 `mapstructure:"warning_threshold" toml:"warning_threshold,omitempty"`
	CriticalColor     string  `mapstructure:"critical_color" toml:"critical_color,omitempty"`
	WarningColor      string  `mapstructure:"warning_color" toml:"warning_color,omitempty"`

	// Toggle behavior
	Toggle           bool   `mapstructure:"toggle" toml:"toggle,omitempty"`
	ToggleGroup      string `mapstructure:"toggle_group" toml:"toggle_group,omitempty"`
	ActiveTextColor  string `mapstructure:"active_text_color" toml:"active_text_color,omitempty"`
	ActiveBackground string `mapstructure:"active_background" toml:"active_background,omitempty"`

	// Click actions
	ClickCommand      string `mapstructure:"click_command" toml:"click_command,omitempty"`
	RightClickCommand string `mapstructure:"right_click_command" toml:"right_click_command,omitempty"`

	// Popup hookup
	Popup          PopupKind `mapstructure:"popup" toml:"popup,omitempty"`
	PopupWidth     float64   `mapstructure:"popup_width" toml:"popup_width,omitempty"`
	PopupMaxHeight float64   `mapstructure:"popup_max_height" toml:"popup_max_height,omitempty"`
	PopupAnchor    Align     `mapstructure:"popup_anchor" toml:"popup_anchor,omitempty"`
	PopupCommand   string    `mapstructure:"popup_command" toml:"popup_command,omitempty"`

	// Per-kind fields
	TimeFormat      string        `mapstructure:"format" toml:"format,omitempty"`
	Path            string        `mapstructure:"path" toml:"path,omitempty"`
	Location        string        `mapstructure:"location" toml:"location,omitempty"`
	UpdateInterval  float64       `mapstructure:"update_interval" toml:"update_interval,omitempty"`
	ScriptCommand   string        `mapstructure:"command" toml:"command,omitempty"`
	ScriptIcon      string        `mapstructure:"icon" toml:"icon,omitempty"`
	SeparatorType   SeparatorType `mapstructure:"separator_type" toml:"separator_type,omitempty"`
	SeparatorWidth  float64       `mapstructure:"separator_width" toml:"separator_width,omitempty"`
	SeparatorColor  string        `mapstructure:"separator_color" toml:"separator_color,omitempty"`
	SkeletonWidth   float64       `mapstructure:"skeleton_width" toml:"skeleton_width,omitempty"`
	SkeletonHeight  float64       `mapstructure:"skeleton_height" toml:"skeleton_height,omitempty"`
	StaticText      string        `mapstructure:"text" toml:"text,omitempty"`
	MaxLength       int           `mapstructure:"max_length" toml:"max_length,omitempty"`
	ShowWhileLoading bool         `mapstructure:"show_while_loading" toml:"show_while_loading,omitempty"`

	Timezones []TimezoneConfig `mapstructure:"timezones" toml:"timezones,omitempty"`
}

// TimezoneConfig names one of the calendar popup's secondary clocks (§4.4).
type TimezoneConfig struct {
	Name       string  `mapstructure:"name" toml:"name"`
	OffsetHours float64 `mapstructure:"offset_hours" toml:"offset_hours"`
}
