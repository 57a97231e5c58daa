package modules

import (
	"fmt"
	"time"

	"github.com/barstatus/barstatus/internal/config"
)

// New constructs a Module from a module config entry, dispatching on
// its Type field (§3: "tagged record"). Unknown types return an error;
// validation already warns about these before construction is attempted
// (internal/config/validation.go).
func New(cfg config.ModuleConfig) (Module, error) {
	id := cfg.ID
	if id == "" {
		id = string(cfg.Type)
	}

	switch cfg.Type {
	case config.ModuleClock:
		return NewClock(id, cfg.TimeFormat), nil
	case config.ModuleDate:
		return NewDate(id, cfg.TimeFormat), nil
	case config.ModuleDateTime:
		return NewDateTime(id, cfg.TimeFormat), nil
	case config.ModuleDemo:
		return NewDemo(id, cfg.Label), nil
	case config.ModuleStatic:
		return NewStatic(id, cfg.StaticText, cfg.ScriptIcon), nil
	case config.ModuleBattery:
		return NewBattery(id), nil
	case config.ModuleCPU:
		return NewCPU(id), nil
	case config.ModuleTemp:
		return NewTemperature(id), nil
	case config.ModuleMemory:
		return NewMemory(id), nil
	case config.ModuleDisk:
		return NewDisk(id, cfg.Path), nil
	case config.ModuleNetwork:
		return NewNetwork(id), nil
	case config.ModuleWifi:
		return NewWifi(id), nil
	case config.ModuleVolume:
		return NewVolume(id), nil
	case config.ModuleAppName:
		return NewAppName(id, nil), nil
	case config.ModuleWinTitle:
		return NewWindowTitle(id, cfg.MaxLength), nil
	case config.ModuleNowPlaying:
		return NewNowPlaying(id), nil
	case config.ModuleScript:
		spec := PopupSpec{Width: cfg.PopupWidth, Height: cfg.PopupMaxHeight, Anchor: string(cfg.PopupAnchor), PopupType: PopupTypePopup}
		interval := time.Duration(cfg.UpdateInterval * float64(time.Second))
		return NewScript(id, cfg.ScriptCommand, cfg.ScriptIcon, interval, cfg.PopupCommand, spec), nil
	case config.ModuleWeather:
		interval := time.Duration(cfg.UpdateInterval * float64(time.Second))
		return NewWeather(id, cfg.Location, interval), nil
	case config.ModuleSeparator:
		return NewSeparator(id, cfg.SeparatorType, cfg.SeparatorWidth, cfg.SeparatorColor), nil
	case config.ModuleSkeleton:
		return NewSkeleton(id, cfg.SkeletonWidth, cfg.SkeletonHeight), nil
	case config.ModuleNews:
		return NewNews(id, cfg.PopupWidth), nil
	case config.ModuleCalendar:
		return NewCalendar(id, cfg.Timezones), nil
	case config.ModuleHisohiso:
		return NewHisohiso(id), nil
	case config.ModuleExternal:
		return NewExternal(id), nil
	default:
		return nil, fmt.Errorf("modules: unknown module type %q", cfg.Type)
	}
}
