package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler logs every call it receives, returning canned
// replies, so dispatch tests can assert both parsing and routing.
type recordingHandler struct {
	calls []string
}

func (h *recordingHandler) Redraw() string    { h.calls = append(h.calls, "redraw"); return "ok" }
func (h *recordingHandler) Reload() string    { h.calls = append(h.calls, "reload"); return "ok" }
func (h *recordingHandler) Status() string    { h.calls = append(h.calls, "status"); return `{"visible":true}` }
func (h *recordingHandler) ToggleBar() string { h.calls = append(h.calls, "toggle"); return "ok" }
func (h *recordingHandler) Set(id, key, value string) string {
	h.calls = append(h.calls, "set:"+id+":"+key+":"+value)
	return "ok"
}
func (h *recordingHandler) Get(id, property string) string {
	h.calls = append(h.calls, "get:"+id+":"+property)
	return "ok"
}
func (h *recordingHandler) List() string { h.calls = append(h.calls, "list"); return `["clock"]` }
func (h *recordingHandler) Trigger(id, action string) string {
	h.calls = append(h.calls, "trigger:"+id+":"+action)
	return "ok"
}

func TestDispatchKnownCommands(t *testing.T) {
	cases := []struct {
		line     string
		wantCall string
		wantBody string
	}{
		{"redraw", "redraw", "ok"},
		{"reload", "reload", "ok"},
		{"status", "status", `{"visible":true}`},
		{"toggle", "toggle", "ok"},
		{"list", "list", `["clock"]`},
		{"set battery color=#ff0000", "set:battery:color:#ff0000", "ok"},
		{"set battery color #ff0000", "set:battery:color:#ff0000", "ok"},
		{"get battery label", "get:battery:label", "ok"},
		{"get battery", "get:battery:", "ok"},
		{"trigger weather update", "trigger:weather:update", "ok"},
		{"trigger calendar popup", "trigger:calendar:popup", "ok"},
	}

	for _, tc := range cases {
		h := &recordingHandler{}
		reply := Dispatch(h, tc.line)
		assert.Equal(t, tc.wantBody, reply, tc.line)
		require.Len(t, h.calls, 1, tc.line)
		assert.Equal(t, tc.wantCall, h.calls[0], tc.line)
	}
}

func TestDispatchIsCaseInsensitiveOnFirstToken(t *testing.T) {
	cases := []struct {
		line     string
		wantCall string
	}{
		{"REDRAW", "redraw"},
		{"Reload", "reload"},
		{"STATUS", "status"},
		{"Toggle", "toggle"},
		{"LIST", "list"},
		{"SET battery color=#ff0000", "set:battery:color:#ff0000"},
		{"Get battery label", "get:battery:label"},
		{"TRIGGER weather update", "trigger:weather:update"},
	}

	for _, tc := range cases {
		h := &recordingHandler{}
		reply := Dispatch(h, tc.line)
		assert.NotEqual(t, "unknown: "+tc.line, reply, tc.line)
		require.Len(t, h.calls, 1, tc.line)
		assert.Equal(t, tc.wantCall, h.calls[0], tc.line)
	}
}

func TestDispatchUnknownFallsBackToUnknownReply(t *testing.T) {
	h := &recordingHandler{}

	for _, line := range []string{"", "frobnicate", "set onlyone", "get", "trigger id"} {
		reply := Dispatch(h, line)
		assert.Equal(t, "unknown: "+line, reply)
		assert.Empty(t, h.calls)
	}
}

func TestSetJoinsMultiWordValue(t *testing.T) {
	h := &recordingHandler{}
	Dispatch(h, "set battery label 50% left")
	require.Len(t, h.calls, 1)
	assert.Equal(t, "set:battery:label:50% left", h.calls[0])
}
