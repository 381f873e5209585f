package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/log"
	te "github.com/muesli/termenv"
)

const helpMarkdown = `# callcopy

Listen to a callsign spoken in the phonetic alphabet and type it back.

## Keys

| Key | Action |
|-----|--------|
| ctrl+n | generate a new callsign |
| tab, ctrl+p | play the current callsign |
| enter | check your answer |
| ], ctrl+right | play faster |
| [, ctrl+left | back towards normal speed |
| ctrl+d | open the symbol pad |
| esc, ctrl+c | quit |

A new callsign cannot be generated and the current one cannot be replayed
while audio is still playing. A correct answer moves on to the next
callsign automatically.

While the symbol pad is open, typing a letter or digit plays it at once.
`

type helpPage struct {
	style    string
	width    int
	visible  bool
	rendered string
}

func newHelpPage(style string) helpPage {
	if style == "" || style == styles.AutoStyle {
		if te.HasDarkBackground() {
			style = styles.DarkStyle
		} else {
			style = styles.LightStyle
		}
	}
	return helpPage{style: style, width: 80}
}

func (h *helpPage) setWidth(w int) {
	if w > 0 && w != h.width {
		h.width = w
		h.rendered = ""
	}
}

func (h *helpPage) View() string {
	if h.rendered == "" {
		h.rendered = h.render()
	}
	return h.rendered
}

func (h *helpPage) render() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(h.style),
		glamour.WithWordWrap(h.width),
	)
	if err != nil {
		log.Error("Unable to create help renderer", "error", err)
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		log.Error("Unable to render help", "error", err)
		return helpMarkdown
	}
	return out
}
