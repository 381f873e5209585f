package audio

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
)

// ControllerConfig configures a Controller.
type ControllerConfig struct {
	// Volume is applied to every player (0.0 to 1.0).
	Volume float64
	// Speed is the initial playback factor.
	Speed float64
}

// DefaultControllerConfig returns full volume at normal speed.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		Volume: 1.0,
		Speed:  1.0,
	}
}

// Controller is the playback sink. It plays one clip sequence at a time and
// refuses new sequences until the current one has finished.
type Controller struct {
	ctx    AudioContext
	format Format
	speed  *rate

	mu       sync.Mutex
	current  Player
	oneShots []Player
	volume   float64
}

// NewController creates a controller over an opened audio context.
func NewController(ctx AudioContext, cfg ControllerConfig) *Controller {
	if cfg.Speed <= 0 {
		cfg.Speed = 1.0
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		cfg.Volume = 1.0
	}
	return &Controller{
		ctx:    ctx,
		format: ctx.Format(),
		speed:  newRate(cfg.Speed),
		volume: cfg.Volume,
	}
}

// Play enqueues the clips for gapless sequential playback. It is a no-op,
// returning false, while earlier audio is still playing or when seq is empty.
func (c *Controller) Play(seq []Source) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busyLocked() {
		log.Debug("Ignoring play request while busy")
		return false
	}
	if len(seq) == 0 {
		return false
	}

	if c.current != nil {
		_ = c.current.Close()
		c.current = nil
	}

	player, err := c.ctx.NewPlayer(newSequenceReader(seq, c.format.Channels, c.speed))
	if err != nil {
		log.Error("Failed to create player", "error", err)
		return false
	}
	player.SetVolume(c.volume)
	player.Play()
	c.current = player

	log.Debug("Playing sequence", "clips", len(seq), "speed", c.speed.Load())
	return true
}

// PlayNow plays one clip immediately on its own player. It neither checks
// nor changes the busy state and always plays at normal speed.
func (c *Controller) PlayNow(src Source) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reapLocked()

	player, err := c.ctx.NewPlayer(newSequenceReader([]Source{src}, c.format.Channels, newRate(1.0)))
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	player.SetVolume(c.volume)
	player.Play()
	c.oneShots = append(c.oneShots, player)
	return nil
}

// reapLocked closes finished one-shot players.
func (c *Controller) reapLocked() {
	live := c.oneShots[:0]
	for _, p := range c.oneShots {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		_ = p.Close()
	}
	c.oneShots = live
}

// IsBusy reports whether a sequence is still playing.
func (c *Controller) IsBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busyLocked()
}

func (c *Controller) busyLocked() bool {
	return c.current != nil && c.current.IsPlaying()
}

// SetSpeed sets the playback rate factor. It applies to audio already
// playing and to every later sequence.
func (c *Controller) SetSpeed(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("%w: %.2f", ErrInvalidSpeed, factor)
	}
	c.speed.Store(factor)
	log.Debug("Playback speed changed", "factor", factor)
	return nil
}

// Speed returns the playback rate factor.
func (c *Controller) Speed() float64 {
	return c.speed.Load()
}

// SetVolume sets the volume of current and future players.
func (c *Controller) SetVolume(volume float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.volume = volume
	if c.current != nil {
		c.current.SetVolume(volume)
	}
	for _, p := range c.oneShots {
		p.SetVolume(volume)
	}
}

// Format returns the device format clips must be in.
func (c *Controller) Format() Format {
	return c.format
}

// Close stops all playback and releases the audio context.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.current != nil {
		_ = c.current.Close()
		c.current = nil
	}
	for _, p := range c.oneShots {
		_ = p.Close()
	}
	c.oneShots = nil
	c.mu.Unlock()

	return c.ctx.Close()
}
