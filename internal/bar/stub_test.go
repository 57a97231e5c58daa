package bar

import (
	"github.com/barstatus/barstatus/internal/modules"
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// stubModule implements modules.Module with inert defaults so tests can
// embed it and override only the method(s) under test.
type stubModule struct{}

func (stubModule) ID() string                                     { return "stub" }
func (stubModule) Render(theme.Theme) uitree.Node                  { return uitree.Text("stub") }
func (stubModule) Update() bool                                    { return false }
func (stubModule) Value() (float64, bool)                          { return 0, false }
func (stubModule) IsLoading() bool                                 { return false }
func (stubModule) PopupSpec() (modules.PopupSpec, bool)             { return modules.PopupSpec{}, false }
func (stubModule) RenderPopup(theme.Theme) (uitree.Node, bool)       { return uitree.Node{}, false }
func (stubModule) OnPopupEvent(modules.PopupEvent)                   {}
func (stubModule) OnPopupAction(modules.PopupAction)                 {}
func (stubModule) SetProperty(string, string) bool                  { return false }
func (stubModule) Stop()                                            {}
