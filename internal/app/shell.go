// Package app wires every component into a running bar process (§4.9):
// config load -> screen query -> bar windows -> popup/panel host windows
// -> popup manager -> IPC servers -> launch agent sync -> GTK main loop.
// Grounded on the teacher's top-level App (internal/ui/app.go): a single
// struct owning the GTK Application and every subsystem, built in two
// stages (New() before a display exists, onActivate() once GTK is live).
package app

import (
	"fmt"
	"sync"

	"github.com/jwijenbergh/puregotk/v4/adw"
	"github.com/jwijenbergh/puregotk/v4/gio"
	"github.com/jwijenbergh/puregotk/v4/glib"
	"github.com/jwijenbergh/puregotk/v4/gtk"
	"github.com/rs/zerolog"

	"github.com/barstatus/barstatus/internal/bar"
	"github.com/barstatus/barstatus/internal/config"
	"github.com/barstatus/barstatus/internal/ipc"
	"github.com/barstatus/barstatus/internal/launchagent"
	"github.com/barstatus/barstatus/internal/modules"
	"github.com/barstatus/barstatus/internal/popup"
)

// appID is the GTK application id and launchd reverse-DNS label (§6).
const appID = "com.barstatus.agent"

// App owns every subsystem for one running bar process.
type App struct {
	cfgMgr   *config.Manager
	registry *modules.Registry
	popupMgr *popup.Manager
	ctl      *controller
	screen   Screen
	barY     float64

	views   []*bar.View
	windows []*gtk.ApplicationWindow

	server   *ipc.Server
	hisohiso *ipc.HisohisoServer
	agent    *launchagent.Agent

	gtkApp     *gtk.Application
	log        zerolog.Logger
	barVisible bool

	mainThreadMu sync.Mutex
	pendingCbs   []*glib.SourceFunc
}

// New loads config and builds the App's non-GTK dependencies. GTK
// objects are created later in onActivate, once the application has a
// display connection.
func New(log zerolog.Logger) (*App, error) {
	cfgMgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("app: create config manager: %w", err)
	}
	result, err := cfgMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("app: load config: %w", err)
	}
	for _, w := range result.Warnings {
		log.Warn().Str("reason", w).Msg("app: config validation warning")
	}
	for _, e := range result.Errors {
		log.Error().Str("reason", e).Msg("app: config validation error")
	}
	if err := cfgMgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("app: config file watch unavailable, hot reload disabled")
	}

	return &App{
		cfgMgr:     cfgMgr,
		registry:   modules.Global(),
		log:        log,
		barVisible: true,
	}, nil
}

// Run starts the GTK application and blocks until it exits, returning
// the process exit code (grounded on the teacher's App.Run,
// internal/ui/app.go).
func (a *App) Run(args []string) int {
	adw.Init()

	id := appID
	a.gtkApp = gtk.NewApplication(&id, gio.GApplicationFlagsNoneValue)
	if a.gtkApp == nil {
		a.log.Error().Msg("app: failed to create GTK application")
		return 1
	}
	defer a.gtkApp.Unref()

	activateCb := func(gio.Application) { a.onActivate() }
	a.gtkApp.ConnectActivate(&activateCb)

	shutdownCb := func(gio.Application) { a.onShutdown() }
	a.gtkApp.ConnectShutdown(&shutdownCb)

	a.log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(len(args), args)
}

// onActivate builds every GTK-dependent piece: screen geometry, bar
// windows, popup/panel host windows, the popup manager, and the IPC
// servers (§4.9 steps 2-7).
func (a *App) onActivate() {
	cfg := a.cfgMgr.Config()

	a.screen = NewScreenProvider(cfg).Query()
	a.barY = ResolveBarHeight(cfg, a.screen)

	a.ctl = newController(a.gtkApp, a.screen, a.barY, a.registry)
	a.popupMgr = popup.NewManager(a.registry, a.ctl)
	a.ctl.wireBroadcast(a.popupMgr.Subscribe())

	a.buildBarWindows()

	if err := a.startIPC(); err != nil {
		a.log.Error().Err(err).Msg("app: failed to start IPC server")
	}

	a.agent = launchagent.New(appID, a.log)
	if err := a.agent.Sync(cfg.App.LaunchAtLogin); err != nil {
		a.log.Warn().Err(err).Msg("app: launch agent sync failed")
	}

	a.log.Info().
		Bool("has_notch", a.screen.HasNotch).
		Int("bar_windows", len(a.windows)).
		Msg("barstatus activated")
}

// barWindowSlot pairs the layout a window's View should build for with
// the screen-relative frame it occupies.
type barWindowSlot struct {
	layout bar.Layout
	frame  popup.Frame
}

// barWindowFrames computes the window layout for a screen, splitting
// into Left/Right around the notch or a single Full window otherwise
// (§4.7 "Layout", §4.9 step 3). Pure function so the notched/un-notched
// split can be tested without a real GTK display.
func barWindowFrames(screen Screen, barY float64) []barWindowSlot {
	if screen.HasNotch {
		return []barWindowSlot{
			{bar.LayoutLeft, popup.Frame{X: 0, Y: 0, W: screen.LeftAreaWidth, H: barY}},
			{bar.LayoutRight, popup.Frame{
				X: screen.LeftAreaWidth + screen.NotchWidth, Y: 0,
				W: screen.RightAreaWidth, H: barY,
			}},
		}
	}
	return []barWindowSlot{
		{bar.LayoutFull, popup.Frame{X: 0, Y: 0, W: screen.Width, H: barY}},
	}
}

// buildBarWindows creates one Full-layout window, or one Left + one
// Right window around the notch (§4.7 "Layout", §4.9 step 3).
func (a *App) buildBarWindows() {
	for _, slot := range barWindowFrames(a.screen, a.barY) {
		a.addBarWindow(slot.layout, slot.frame)
	}
}

func (a *App) addBarWindow(layout bar.Layout, frame popup.Frame) {
	win := gtk.NewApplicationWindow(a.gtkApp)
	win.SetDecorated(false)
	win.SetResizable(false)
	win.SetDefaultSize(int(frame.W), int(frame.H))

	view := bar.NewView(layout, a.registry, a.popupMgr, a.cfgMgr, a.log)
	win.SetChild(view.Widget())

	frame.Tag = popup.WindowTag{Role: popup.RoleBar}
	a.ctl.registerBarWindow(win, frame)

	a.views = append(a.views, view)
	a.windows = append(a.windows, win)

	win.SetVisible(a.barVisible)
	win.Present()
}

// rebuildViews re-resolves every bar window's modules/theme against the
// current config snapshot, used by the IPC `reload` command.
func (a *App) rebuildViews() {
	cfg := a.cfgMgr.Config()
	for _, v := range a.views {
		v.Rebuild(cfg)
	}
}

// toggleBarVisibility implements the IPC `toggle` command: hide or show
// every bar window, independent of popup/panel visibility.
func (a *App) toggleBarVisibility() {
	a.barVisible = !a.barVisible
	for _, win := range a.windows {
		win.SetVisible(a.barVisible)
	}
}

// startIPC starts the main command socket and the dictation waveform
// socket (§4.5, §6).
func (a *App) startIPC() error {
	a.server = ipc.NewServer(config.SocketPath(), newIPCHandler(a))
	if err := a.server.Start(); err != nil {
		return fmt.Errorf("app: start ipc server: %w", err)
	}

	a.hisohiso = ipc.NewHisohisoServer(config.HisohisoSocketPath(), dictationSink{})
	if err := a.hisohiso.Start(); err != nil {
		return fmt.Errorf("app: start hisohiso server: %w", err)
	}
	return nil
}

// dictationSink adapts the process-wide Hisohiso broadcast helpers
// (internal/modules/hisohiso.go) to ipc.HisohisoSink; the socket carries
// no module id, so every push fans out to every live Hisohiso instance.
type dictationSink struct{}

func (dictationSink) SetState(state modules.DictationState) { modules.BroadcastDictationState(state) }
func (dictationSink) SetLevels(levels []int)                { modules.BroadcastDictationLevels(levels) }

// onMainThread marshals fn onto the GTK main loop via glib.IdleAdd, the
// pattern the teacher uses for any GTK mutation triggered from a
// non-GTK goroutine (internal/ui/app.go's OnClipboardCopied). Each
// callback is heap-allocated individually and retained on a.pendingCbs
// until it fires, the same pointer-stability idiom as
// barWindowBinding in controller.go.
func (a *App) onMainThread(fn func()) {
	cb := new(glib.SourceFunc)
	*cb = func(uintptr) bool {
		fn()
		a.releasePending(cb)
		return false
	}
	a.retainPending(cb)
	glib.IdleAdd(cb, 0)
}

func (a *App) retainPending(cb *glib.SourceFunc) {
	a.mainThreadMu.Lock()
	a.pendingCbs = append(a.pendingCbs, cb)
	a.mainThreadMu.Unlock()
}

func (a *App) releasePending(cb *glib.SourceFunc) {
	a.mainThreadMu.Lock()
	for i, c := range a.pendingCbs {
		if c == cb {
			a.pendingCbs = append(a.pendingCbs[:i], a.pendingCbs[i+1:]...)
			break
		}
	}
	a.mainThreadMu.Unlock()
}

// onShutdown stops the IPC servers and every module's producer thread
// (grounded on the teacher's onShutdown, internal/ui/app.go).
func (a *App) onShutdown() {
	a.log.Debug().Msg("barstatus shutting down")

	if a.server != nil {
		a.server.Stop()
	}
	if a.hisohiso != nil {
		a.hisohiso.Stop()
	}
	for _, v := range a.views {
		v.Stop()
	}
}
