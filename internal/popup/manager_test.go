package popup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barstatus/barstatus/internal/modules"
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// fakeModule is a minimal modules.Module with a fixed popup spec and an
// event log, standing in for a real module in manager tests.
type fakeModule struct {
	id     string
	spec   modules.PopupSpec
	hasPop bool
	events []modules.PopupEventKind
}

func (f *fakeModule) ID() string                               { return f.id }
func (f *fakeModule) Render(theme.Theme) uitree.Node            { return uitree.Node{} }
func (f *fakeModule) Update() bool                              { return false }
func (f *fakeModule) Value() (float64, bool)                    { return 0, false }
func (f *fakeModule) IsLoading() bool                           { return false }
func (f *fakeModule) SetProperty(string, string) bool           { return false }
func (f *fakeModule) Stop()                                     {}
func (f *fakeModule) OnPopupAction(modules.PopupAction)         {}
func (f *fakeModule) OnPopupEvent(ev modules.PopupEvent) {
	f.events = append(f.events, ev.Kind)
}
func (f *fakeModule) PopupSpec() (modules.PopupSpec, bool) {
	return f.spec, f.hasPop
}
func (f *fakeModule) RenderPopup(theme.Theme) (uitree.Node, bool) {
	return uitree.Node{}, f.hasPop
}

// fakeRegistry is a Registry backed by a plain map.
type fakeRegistry struct {
	m map[string]modules.Module
}

func newFakeRegistry(mods ...*fakeModule) *fakeRegistry {
	r := &fakeRegistry{m: make(map[string]modules.Module)}
	for _, mod := range mods {
		r.m[mod.id] = mod
	}
	return r
}

func (r *fakeRegistry) Lookup(id string) (modules.Module, bool) {
	mod, ok := r.m[id]
	return mod, ok
}

// fakeController is a Controller recording calls instead of touching a
// real window system.
type fakeController struct {
	shownPopup    *WindowTag
	shownPanel    *WindowTag
	hideAllCalls  int
	monitorInstalled bool
	cursorInstalled  bool
	frames        []Frame
	clickHandler  func(x, y float64)
}

func (c *fakeController) ShowPopup(tag WindowTag, spec modules.PopupSpec, mouseX, screenWidth, barY float64) {
	t := tag
	c.shownPopup = &t
}
func (c *fakeController) ShowPanel(tag WindowTag, spec modules.PopupSpec) {
	t := tag
	c.shownPanel = &t
}
func (c *fakeController) HideAll() {
	c.hideAllCalls++
	c.shownPopup, c.shownPanel = nil, nil
}
func (c *fakeController) VisibleFrames() []Frame { return c.frames }
func (c *fakeController) InstallClickOutsideMonitor(onClick func(x, y float64)) {
	c.monitorInstalled = true
	c.clickHandler = onClick
}
func (c *fakeController) RemoveClickOutsideMonitor() { c.monitorInstalled = false }
func (c *fakeController) InstallCursorMonitor()      { c.cursorInstalled = true }
func (c *fakeController) RemoveCursorMonitor()       { c.cursorInstalled = false }
func (c *fakeController) MouseX() float64            { return 100 }
func (c *fakeController) ScreenWidth() float64       { return 1440 }
func (c *fakeController) BarY() float64              { return 0 }

func TestToggleShowsThenHidesOnRepeat(t *testing.T) {
	// (R2) toggle(x); toggle(x) is equivalent to no-op on visibility and
	// current_module_id, and produces Opened then Closed in order.
	mod := &fakeModule{id: "calendar", hasPop: true, spec: modules.PopupSpec{PopupType: modules.PopupTypePopup}}
	registry := newFakeRegistry(mod)
	controller := &fakeController{}
	mgr := NewManager(registry, controller)

	shown := mgr.Toggle("calendar")
	assert.True(t, shown)
	assert.True(t, mgr.PopupVisible())
	assert.Equal(t, "calendar", mgr.CurrentModuleID())

	shown = mgr.Toggle("calendar")
	assert.False(t, shown)
	assert.False(t, mgr.PopupVisible())
	assert.Equal(t, "", mgr.CurrentModuleID())

	require.Len(t, mod.events, 2)
	assert.Equal(t, modules.PopupEventOpened, mod.events[0])
	assert.Equal(t, modules.PopupEventClosed, mod.events[1])
}

func TestHideIsIdempotent(t *testing.T) {
	// (R1) hide(); hide() is idempotent.
	mod := &fakeModule{id: "calendar", hasPop: true, spec: modules.PopupSpec{PopupType: modules.PopupTypePopup}}
	registry := newFakeRegistry(mod)
	controller := &fakeController{}
	mgr := NewManager(registry, controller)

	mgr.Toggle("calendar")
	mgr.Hide()
	assert.Len(t, mod.events, 2)

	mgr.Hide()
	assert.Len(t, mod.events, 2, "second hide must not emit another Closed")
	assert.False(t, mgr.PopupVisible())
}

func TestToggleDifferentModulesStaysMutuallyExclusive(t *testing.T) {
	// (P1) at most one of {popup, panel} is visible at any instant.
	calendar := &fakeModule{id: "calendar", hasPop: true, spec: modules.PopupSpec{PopupType: modules.PopupTypePopup}}
	news := &fakeModule{id: "news", hasPop: true, spec: modules.PopupSpec{PopupType: modules.PopupTypePanel}}
	registry := newFakeRegistry(calendar, news)
	controller := &fakeController{}
	mgr := NewManager(registry, controller)

	mgr.Toggle("calendar")
	require.NotNil(t, controller.shownPopup)

	mgr.Toggle("news")
	assert.Nil(t, controller.shownPopup, "switching modules must hide the prior popup window")
	require.NotNil(t, controller.shownPanel)
	assert.Equal(t, "news", controller.shownPanel.ModuleID)

	assert.Equal(t, modules.PopupEventClosed, calendar.events[len(calendar.events)-1])
}

func TestClickInsideBarDoesNotDismissPopup(t *testing.T) {
	// (B1) a click on the bar while a popup is open does not dismiss it.
	mod := &fakeModule{id: "calendar", hasPop: true, spec: modules.PopupSpec{PopupType: modules.PopupTypePopup}}
	registry := newFakeRegistry(mod)
	controller := &fakeController{
		frames: []Frame{{Tag: WindowTag{Role: RoleBar}, X: 0, Y: 0, W: 1440, H: 32}},
	}
	mgr := NewManager(registry, controller)

	mgr.Toggle("calendar")
	require.NotNil(t, controller.clickHandler)

	controller.clickHandler(10, 10) // inside the bar frame
	assert.True(t, mgr.PopupVisible())

	controller.clickHandler(900, 600) // outside every visible frame
	assert.False(t, mgr.PopupVisible())
}

func TestToggleUnknownModuleIsNoop(t *testing.T) {
	registry := newFakeRegistry()
	controller := &fakeController{}
	mgr := NewManager(registry, controller)

	shown := mgr.Toggle("does-not-exist")
	assert.False(t, shown)
	assert.False(t, mgr.PopupVisible())
}

func TestSubscribeReceivesLatestModuleID(t *testing.T) {
	mod := &fakeModule{id: "calendar", hasPop: true, spec: modules.PopupSpec{PopupType: modules.PopupTypePopup}}
	registry := newFakeRegistry(mod)
	controller := &fakeController{}
	mgr := NewManager(registry, controller)

	ch := mgr.Subscribe()
	mgr.Toggle("calendar")

	select {
	case id := <-ch:
		assert.Equal(t, "calendar", id)
	default:
		t.Fatal("expected a broadcast on toggle")
	}
}
