package app

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"
)

type markdownRendererKey struct {
	width int
	dark  bool
}

var (
	rendererMu       sync.Mutex
	renderersByStyle = map[markdownRendererKey]*glamour.TermRenderer{}
)

// renderNoteBody renders note content for the main panel. Markdown goes
// through glamour when enabled; plain text is word-wrapped. Rendering
// failures fall back to the wrapped plain text.
func renderNoteBody(content string, width int, dark, markdown bool) string {
	content = strings.TrimRight(content, "\n")
	if content == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	if !markdown {
		return wrapPlain(content, width)
	}
	r := getRenderer(width, dark)
	if r == nil {
		return wrapPlain(content, width)
	}
	out, err := r.Render(content)
	if err != nil {
		return wrapPlain(content, width)
	}
	out = strings.TrimRight(out, "\n")
	out = xansi.Hardwrap(out, width, true)
	return strings.TrimRight(out, "\n")
}

func getRenderer(width int, dark bool) *glamour.TermRenderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	key := markdownRendererKey{width: width, dark: dark}
	if renderer, ok := renderersByStyle[key]; ok && renderer != nil {
		return renderer
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(buildStyleConfig(dark)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderersByStyle[key] = r
	return r
}

func buildStyleConfig(dark bool) glamouransi.StyleConfig {
	base := styles.LightStyleConfig
	if dark {
		base = styles.DarkStyleConfig
	}
	// The panel owns its own padding.
	base.Document.StylePrimitive.BlockPrefix = ""
	base.Document.StylePrimitive.BlockSuffix = ""
	zero := uint(0)
	base.Document.Margin = &zero
	return base
}
