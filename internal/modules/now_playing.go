package modules

import (
	"sync"
	"time"

	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// nowPlayingBackends are tried in order each tick; the first to return a
// non-empty track wins (§4.4: "Multi-backend lookup (Music, Spotify …)").
var nowPlayingBackends = []struct {
	name    string
	command string
}{
	{"Music", `osascript -e 'tell application "Music" to if player state is playing then get artist of current track & " – " & name of current track'`},
	{"Spotify", `osascript -e 'tell application "Spotify" to if player state is playing then get artist of current track & " – " & name of current track'`},
}

// NowPlaying polls every second across multiple media-player backends.
type NowPlaying struct {
	Base

	mu      sync.RWMutex
	track   string
	haveVal bool
}

// NewNowPlaying creates a NowPlaying module and starts its 1s producer.
func NewNowPlaying(id string) *NowPlaying {
	n := &NowPlaying{Base: NewBase(id)}
	n.RunProducer(time.Second, n.fetch)
	return n
}

func (n *NowPlaying) fetch() {
	for _, backend := range nowPlayingBackends {
		track, err := runShell(backend.command)
		if err != nil || track == "" {
			continue
		}
		n.publish(track)
		return
	}
	n.publish("")
}

func (n *NowPlaying) publish(track string) {
	n.mu.Lock()
	changed := !n.haveVal || track != n.track
	n.track = track
	n.haveVal = true
	n.mu.Unlock()
	if changed {
		n.MarkDirty()
	}
}

func (n *NowPlaying) Render(theme.Theme) uitree.Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if !n.haveVal || n.track == "" {
		return uitree.Node{}
	}
	return uitree.Row(4, uitree.Icon("music-note"), uitree.Text(n.track))
}
