package bar

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jwijenbergh/puregotk/v4/gdk"
	"github.com/jwijenbergh/puregotk/v4/gtk"
)

// styleRegistry accumulates ad hoc per-node color classes into a single
// CSS provider, applied display-wide once per process the way the
// teacher's theme manager applies its palette CSS (internal/ui/theme/
// manager.go: ApplyToDisplay / StyleContextAddProviderForDisplay).
type styleRegistry struct {
	mu       sync.Mutex
	provider *gtk.CssProvider
	display  *gdk.Display
	classes  map[string]bool
	rules    strings.Builder
}

var styles = &styleRegistry{classes: make(map[string]bool)}

// InitStyles creates the shared CSS provider and attaches it to display.
// Must be called once by the App shell before any module renders.
func InitStyles(display *gdk.Display) {
	styles.mu.Lock()
	defer styles.mu.Unlock()
	if styles.provider != nil {
		return
	}
	styles.provider = gtk.NewCssProvider()
	styles.display = display
	gtk.StyleContextAddProviderForDisplay(display, styles.provider, uint(gtk.STYLE_PROVIDER_PRIORITY_APPLICATION))
}

// styleClassFor returns (creating if necessary) the CSS class name for
// the given color/background pair.
func styleClassFor(color, background string) string {
	class := fmt.Sprintf("bs-c-%s-%s", sanitizeHex(color), sanitizeHex(background))

	styles.mu.Lock()
	defer styles.mu.Unlock()
	if styles.classes[class] {
		return class
	}
	styles.classes[class] = true

	styles.rules.WriteString("." + class + " {")
	if color != "" {
		styles.rules.WriteString("color:" + color + ";")
	}
	if background != "" {
		styles.rules.WriteString("background-color:" + background + ";")
	}
	styles.rules.WriteString("}\n")

	if styles.provider != nil {
		styles.provider.LoadFromString(styles.rules.String())
	}
	return class
}

func sanitizeHex(s string) string {
	if s == "" {
		return "none"
	}
	return strings.TrimPrefix(s, "#")
}
