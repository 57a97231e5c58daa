package launchagent

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIncludesRunAtLoadAndKeepAliveFalse(t *testing.T) {
	a := New("com.barstatus.agent", zerolog.Nop())
	content, err := a.render("/usr/local/bin/barstatus")
	require.NoError(t, err)

	assert.Contains(t, content, "<key>Label</key>")
	assert.Contains(t, content, "com.barstatus.agent")
	assert.Contains(t, content, "/usr/local/bin/barstatus")
	assert.Contains(t, content, "<key>RunAtLoad</key>\n\t<true/>")
	assert.Contains(t, content, "<key>KeepAlive</key>\n\t<false/>")
	assert.True(t, strings.Contains(content, "barstatus.stdout.log") || strings.Contains(content, ".stdout.log"))
}
