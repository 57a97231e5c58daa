package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/barstatus/barstatus/internal/modules"
)

type recordingSink struct {
	state  modules.DictationState
	levels []int
}

func (s *recordingSink) SetState(state modules.DictationState) { s.state = state }
func (s *recordingSink) SetLevels(levels []int)                { s.levels = levels }

func TestHandleHisohisoLineState(t *testing.T) {
	sink := &recordingSink{}
	HandleHisohisoLine(sink, "state recording")
	assert.Equal(t, modules.DictationRecording, sink.state)

	HandleHisohisoLine(sink, "state idle")
	assert.Equal(t, modules.DictationIdle, sink.state)
}

func TestHandleHisohisoLineLevels(t *testing.T) {
	sink := &recordingSink{}
	HandleHisohisoLine(sink, "levels 10,20,30,40,50,60,70")
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70}, sink.levels)
}

func TestHandleHisohisoLineMalformedIsDropped(t *testing.T) {
	sink := &recordingSink{}
	HandleHisohisoLine(sink, "levels not-a-number")
	assert.Nil(t, sink.levels)

	HandleHisohisoLine(sink, "state")
	assert.Equal(t, modules.DictationState(""), sink.state)

	HandleHisohisoLine(sink, "state sleeping")
	assert.Equal(t, modules.DictationState(""), sink.state)
}
