// Package ui provides the terminal interface of the callsign trainer.
package ui

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/muesli/reflow/truncate"

	"github.com/callcopy/callcopy/internal/audio"
	"github.com/callcopy/callcopy/internal/callsign"
	"github.com/callcopy/callcopy/internal/phonetic"
)

// Label texts.
const (
	msgIntro        = "press ctrl+n to generate a callsign"
	msgNeedCallsign = "generate a callsign first (ctrl+n)"
	msgBusy         = "cannot generate while playing"
	msgReady        = "new callsign ready"
	msgCorrect      = "correct!"
	msgWrong        = "wrong, try again"
	ellipsis        = "…"
)

// Player is the playback side the UI drives.
type Player interface {
	Play(seq []audio.Source) bool
	PlayNow(src audio.Source) error
	IsBusy() bool
	SetSpeed(factor float64) error
	SetVolume(volume float64)
}

// Generator produces callsigns and single symbol clips.
type Generator interface {
	Generate() (callsign.Callsign, error)
	PickClip(sym rune) (*phonetic.Clip, error)
}

// Deps are the collaborators the UI needs.
type Deps struct {
	Player    Player
	Generator Generator
	Slider    *audio.SpeedSlider
}

// VolumeChangedMsg asks the UI to apply a new output volume.
type VolumeChangedMsg float64

type tickMsg time.Time

type labelKind int

const (
	labelInfo labelKind = iota
	labelSuccess
	labelError
)

// NewProgram returns a new Tea program.
func NewProgram(cfg Config, deps Deps) *tea.Program {
	log.Debug("Starting callcopy", "tick", cfg.TickInterval, "debug_pad", cfg.DebugPad)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.EnableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return tea.NewProgram(newModel(cfg, deps), opts...)
}

// FatalError returns the error that ended the program, if any.
func FatalError(m tea.Model) error {
	if mm, ok := m.(model); ok {
		return mm.fatalErr
	}
	return nil
}

type model struct {
	cfg  Config
	deps Deps
	keys keyMap

	input    textinput.Model
	slider   progress.Model
	help     help.Model
	helpPage helpPage

	current   callsign.Callsign
	label     string
	labelKind labelKind
	busy      bool
	debugPad  bool
	width     int
	fatalErr  error
}

func newModel(cfg Config, deps Deps) model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 100 * time.Millisecond
	}
	if cfg.SliderWidth <= 0 {
		cfg.SliderWidth = 24
	}
	if deps.Slider == nil {
		deps.Slider = audio.NewSpeedSlider(audio.DefaultSliderMax)
	}

	in := textinput.New()
	in.Placeholder = "type what you hear"
	in.Prompt = "> "
	in.CharLimit = 16
	in.Focus()

	h := help.New()
	h.ShowAll = cfg.ShowFullHelp

	return model{
		cfg:       cfg,
		deps:      deps,
		keys:      newKeyMap(),
		input:     in,
		slider:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(cfg.SliderWidth)),
		help:      h,
		helpPage:  newHelpPage(cfg.GlamourStyle),
		label:     msgIntro,
		labelKind: labelInfo,
		debugPad:  cfg.DebugPad,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.tick())
}

func (m model) tick() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.fatalErr != nil {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.helpPage.visible {
			m.helpPage.visible = false
			return m, nil
		}
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}

	case tickMsg:
		m.busy = m.deps.Player.IsBusy()
		return m, m.tick()

	case VolumeChangedMsg:
		m.deps.Player.SetVolume(float64(msg))
		m.setLabel(labelInfo, fmt.Sprintf("volume %.0f%%", float64(msg)*100))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.helpPage.setWidth(msg.Width)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey runs the action bound to msg. It reports false for keys that
// belong to the text input.
func (m *model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit, true

	case key.Matches(msg, m.keys.New):
		m.generate()
		return m.quitOnFatal(), true

	case key.Matches(msg, m.keys.Check):
		m.check()
		return m.quitOnFatal(), true

	case key.Matches(msg, m.keys.Play):
		m.play()
		return nil, true

	case key.Matches(msg, m.keys.Faster):
		m.changeSpeed(m.deps.Slider.Increase)
		return nil, true

	case key.Matches(msg, m.keys.Slower):
		m.changeSpeed(m.deps.Slider.Decrease)
		return nil, true

	case key.Matches(msg, m.keys.DebugPad):
		m.debugPad = !m.debugPad
		log.Debug("Toggled symbol pad", "open", m.debugPad)
		return nil, true

	case key.Matches(msg, m.keys.Help):
		m.helpPage.visible = true
		return nil, true
	}

	if m.debugPad && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		sym := unicode.ToUpper(msg.Runes[0])
		if strings.ContainsRune(phonetic.Symbols, sym) {
			m.playSymbol(sym)
			return nil, true
		}
	}
	return nil, false
}

func (m *model) quitOnFatal() tea.Cmd {
	if m.fatalErr != nil {
		return tea.Quit
	}
	return nil
}

func (m *model) setLabel(kind labelKind, text string) {
	m.labelKind = kind
	m.label = text
}

// generate replaces the current callsign unless audio is playing. It
// returns false when the callsign was left unchanged.
func (m *model) generate() bool {
	if m.deps.Player.IsBusy() {
		m.busy = true
		m.setLabel(labelError, msgBusy)
		return false
	}

	c, err := m.deps.Generator.Generate()
	if err != nil {
		log.Error("Failed to generate callsign", "error", err)
		m.fatalErr = err
		return false
	}
	m.current = c
	m.setLabel(labelInfo, msgReady)
	return true
}

// check compares the input with the current callsign and moves on to a new
// one after a match.
func (m *model) check() {
	if m.current.IsZero() {
		m.setLabel(labelError, msgNeedCallsign)
		return
	}
	if !callsign.Check(m.input.Value(), m.current) {
		log.Debug("Wrong answer", "input", m.input.Value())
		m.setLabel(labelError, msgWrong)
		return
	}

	m.input.Reset()
	if m.generate() {
		m.setLabel(labelSuccess, msgCorrect+" "+msgReady)
		return
	}
	if m.fatalErr == nil {
		m.setLabel(labelSuccess, msgCorrect+" "+msgBusy)
	}
}

func (m *model) play() {
	if m.current.IsZero() {
		m.setLabel(labelError, msgNeedCallsign)
		return
	}
	if m.deps.Player.Play(m.current.Sources()) {
		m.busy = true
	}
}

// playSymbol plays one random clip for sym straight away, even while a
// callsign is playing.
func (m *model) playSymbol(sym rune) {
	clip, err := m.deps.Generator.PickClip(sym)
	if err != nil {
		m.setLabel(labelError, err.Error())
		return
	}
	if err := m.deps.Player.PlayNow(clip); err != nil {
		log.Error("Failed to play symbol", "symbol", string(sym), "error", err)
		m.setLabel(labelError, "playback failed")
	}
}

func (m *model) changeSpeed(step func() (float64, error)) {
	factor, err := step()
	if err != nil {
		return
	}
	if err := m.deps.Player.SetSpeed(factor); err != nil {
		log.Error("Failed to set speed", "factor", factor, "error", err)
		m.setLabel(labelError, err.Error())
	}
}

func (m model) View() string {
	if m.helpPage.visible {
		return appStyle.Render(m.helpPage.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("callcopy"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.labelView())
	b.WriteString("\n\n")
	b.WriteString(m.statusView())
	if m.debugPad {
		b.WriteString("\n\n")
		b.WriteString(m.padView())
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return appStyle.Render(b.String())
}

func (m model) labelView() string {
	text := m.label
	if w := m.width - appStyle.GetHorizontalFrameSize(); w > 0 {
		text = truncate.StringWithTail(text, uint(w), ellipsis) //nolint:gosec
	}
	return labelStyles[m.labelKind].Render(text)
}
