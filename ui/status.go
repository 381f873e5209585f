package ui

import (
	"fmt"
	"strings"

	"github.com/callcopy/callcopy/internal/phonetic"
)

// statusView renders the speed slider and the playback indicator.
func (m model) statusView() string {
	slider := m.deps.Slider
	speed := speedStyle.Render(fmt.Sprintf("speed %s %s",
		m.slider.ViewAs(slider.Fraction()),
		slider.FormatFactor()))

	state := idleStyle.Render("■ idle")
	if m.busy {
		state = playingStyle.Render("▶ playing")
	}
	return speed + "   " + state
}

// padView lists the symbols that can be played one by one.
func (m model) padView() string {
	var rows []string
	for _, set := range []string{phonetic.Letters, phonetic.Digits} {
		var keys []string
		for _, sym := range set {
			keys = append(keys, padKeyStyle.Render(string(sym)))
		}
		rows = append(rows, strings.Join(keys, ""))
	}
	return padTitleStyle.Render("symbol pad: type a letter or digit to hear it") +
		"\n" + strings.Join(rows, "\n")
}
