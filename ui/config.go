package ui

import "time"

// Config contains TUI-specific configuration.
type Config struct {
	GlamourStyle string        `env:"GLAMOUR_STYLE"            envDefault:"auto"`
	TickInterval time.Duration `env:"CALLCOPY_TICK_INTERVAL"   envDefault:"100ms"`
	SliderWidth  int           `env:"CALLCOPY_SLIDER_WIDTH"    envDefault:"24"`
	ShowFullHelp bool          `env:"CALLCOPY_SHOW_FULL_HELP"  envDefault:"false"`
	EnableMouse  bool          `env:"CALLCOPY_ENABLE_MOUSE"    envDefault:"false"`

	// Start with the debug symbol pad open.
	DebugPad bool
}
