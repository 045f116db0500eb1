package tetris

import "fmt"

// Classic defaults: a 10x20 board ticked 60 times per second, gravity every
// 48 ticks at level 0 and every 5 ticks while soft-dropping, and a 36-tick
// (~600ms) highlight window before completed rows are removed.
const (
	DefaultBoardWidth         = 10
	DefaultBoardHeight        = 20
	DefaultNormalDropInterval = 48
	DefaultSoftDropInterval   = 5
	DefaultClearDelayTicks    = 36

	// TicksPerSecond is the cadence Tick is expected to be driven at.
	TicksPerSecond = 60
)

// minBoardSpan is the widest and tallest extent a piece can take; boards
// smaller than this cannot host a spawn.
const minBoardSpan = 4

// Config carries the session parameters for a Game. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	BoardWidth  int
	BoardHeight int

	// NormalDropInterval is the level-0 gravity period in ticks. Each level
	// shortens the effective period by 5 ticks down to a floor of 1.
	NormalDropInterval int

	// SoftDropInterval is the gravity period in ticks while soft drop is held.
	SoftDropInterval int

	// ClearDelayTicks is how many ticks completed rows stay on the board
	// between the RowsCompleted notification and their removal, giving the
	// presentation layer a window to flash them. Zero removes them on the
	// locking tick.
	ClearDelayTicks int

	// Source draws the kind of each next piece. Nil selects the classic
	// uniform independent draw seeded from the global generator.
	Source KindSource

	// Hooks are the engine's outward event callbacks; the zero value
	// disables them.
	Hooks Hooks
}

// DefaultConfig returns the classic configuration.
func DefaultConfig() Config {
	return Config{
		BoardWidth:         DefaultBoardWidth,
		BoardHeight:        DefaultBoardHeight,
		NormalDropInterval: DefaultNormalDropInterval,
		SoftDropInterval:   DefaultSoftDropInterval,
		ClearDelayTicks:    DefaultClearDelayTicks,
	}
}

// Validate reports the first problem with the configuration. Validation
// happens once at construction; the engine's operations are total afterward.
func (c Config) Validate() error {
	if c.BoardWidth < minBoardSpan {
		return fmt.Errorf("board width %d is below the minimum of %d", c.BoardWidth, minBoardSpan)
	}
	if c.BoardHeight < minBoardSpan {
		return fmt.Errorf("board height %d is below the minimum of %d", c.BoardHeight, minBoardSpan)
	}
	if c.NormalDropInterval < 1 {
		return fmt.Errorf("normal drop interval %d must be at least 1 tick", c.NormalDropInterval)
	}
	if c.SoftDropInterval < 1 {
		return fmt.Errorf("soft drop interval %d must be at least 1 tick", c.SoftDropInterval)
	}
	if c.ClearDelayTicks < 0 {
		return fmt.Errorf("clear delay %d must not be negative", c.ClearDelayTicks)
	}
	return nil
}
