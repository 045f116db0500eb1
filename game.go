package tetris

import (
	"slices"
	"time"
)

// State is the phase of a session's state machine.
type State int

const (
	// StateFalling is normal play: an active piece descends under gravity.
	StateFalling State = iota
	// StateClearing is the window between a lock that completed rows and
	// their removal. There is no active piece while clearing.
	StateClearing
	// StateGameOver is terminal: a freshly spawned piece collided.
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateFalling:
		return "falling"
	case StateClearing:
		return "clearing"
	case StateGameOver:
		return "game over"
	}
	return "unknown"
}

// Hooks are optional callbacks the engine fires toward presentation
// collaborators such as audio or animation. They run synchronously inside
// Tick; implementations must not call back into the engine.
type Hooks struct {
	// PieceLocked fires when the active piece is committed to the board.
	PieceLocked func()

	// RowsCompleted fires when a lock completes one or more rows, before
	// those rows are removed from the board. Row indices are ascending.
	// Removal follows ClearDelayTicks ticks later, so a collaborator can
	// highlight the rows it was handed here.
	RowsCompleted func(rows []int)
}

// Game is one falling-block session. It exclusively owns its board and both
// pieces; presentation layers read state through Snapshot and never mutate
// it. Every operation is total: invalid commands degrade to no-ops and the
// only terminal condition is the game-over transition, which is a normal
// outcome rather than an error.
//
// The engine is single-threaded and cooperative. One driver calls Tick at a
// fixed cadence and issues commands between ticks; no method may be called
// concurrently with another.
type Game struct {
	cfg   Config
	board *Board
	src   KindSource

	current Piece
	next    Piece

	score int
	lines int
	level int

	normalInterval int // level-derived gravity period in ticks
	softDrop       bool
	frames         int // ticks since the last gravity step

	state          State
	pendingRows    []int
	clearCountdown int

	stats TickStats
}

// NewGame creates a session from cfg and spawns the first piece immediately.
// The only failure mode is an invalid configuration.
func NewGame(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	src := cfg.Source
	if src == nil {
		src = NewUniformSource(nil)
	}

	g := &Game{
		cfg:            cfg,
		board:          NewBoard(cfg.BoardWidth, cfg.BoardHeight),
		src:            src,
		normalInterval: cfg.NormalDropInterval,
	}
	g.next = NewPiece(src.Next())
	g.spawn()
	return g, nil
}

// Running reports whether the session still accepts ticks and commands.
func (g *Game) Running() bool { return g.state != StateGameOver }

// State returns the current phase of the session.
func (g *Game) State() State { return g.state }

// Score returns the accumulated score.
func (g *Game) Score() int { return g.score }

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Level returns the current level, one per ten cleared rows.
func (g *Game) Level() int { return g.level }

// Stats returns a copy of the session's tick timing statistics.
func (g *Game) Stats() TickStats { return g.stats }

// dropInterval is the effective gravity period for the current tick.
func (g *Game) dropInterval() int {
	if g.softDrop {
		return g.cfg.SoftDropInterval
	}
	return g.normalInterval
}

// Tick advances the session by one frame and must be driven at a fixed
// cadence (TicksPerSecond by convention). Commands issued since the previous
// call have already been applied in order; Tick only performs gravity and
// the transitions that follow from it. After game over, Tick is a no-op.
func (g *Game) Tick() {
	start := time.Now()
	defer func() { g.stats.record(time.Since(start)) }()

	switch g.state {
	case StateGameOver:
		return
	case StateClearing:
		g.clearCountdown--
		if g.clearCountdown <= 0 {
			g.board.ClearRows(g.pendingRows)
			g.pendingRows = nil
			g.spawn()
		}
		return
	}

	g.frames++
	if g.frames < g.dropInterval() {
		return
	}
	g.frames = 0

	if !g.board.Collides(g.current.X, g.current.Y+1, g.current.Offsets) {
		g.current.Y++
		return
	}
	g.lock()
}

// MoveLeft shifts the active piece one column left. A blocked shift is a
// silent no-op, as is any shift while rows are clearing or after game over.
func (g *Game) MoveLeft() { g.shift(-1) }

// MoveRight shifts the active piece one column right under the same rules as
// MoveLeft.
func (g *Game) MoveRight() { g.shift(1) }

func (g *Game) shift(dx int) {
	if g.state != StateFalling {
		return
	}
	if !g.board.Collides(g.current.X+dx, g.current.Y, g.current.Offsets) {
		g.current.X += dx
	}
}

// RotateCW turns the active piece 90 degrees clockwise around its pivot if
// the rotated cells are free at the current position. There is no wall-kick
// fallback: a blocked rotation is a silent no-op.
func (g *Game) RotateCW() {
	if g.state != StateFalling {
		return
	}
	rotated := RotateClockwise(g.current.Kind, g.current.Offsets)
	if !g.board.Collides(g.current.X, g.current.Y, rotated) {
		g.current.Offsets = rotated
	}
}

// SoftDrop toggles the accelerated fall rate. It swaps the gravity period
// between SoftDropInterval and the level-derived normal period and never
// moves the piece by itself. The flag survives spawns, matching a held key.
func (g *Game) SoftDrop(active bool) {
	if g.state == StateGameOver {
		return
	}
	g.softDrop = active
}

// lock commits the active piece, scores any completed rows, and either opens
// the clear window or spawns the next piece.
func (g *Game) lock() {
	g.board.Commit(g.current.X, g.current.Y, g.current.Offsets, Color(g.current.Kind))
	if g.cfg.Hooks.PieceLocked != nil {
		g.cfg.Hooks.PieceLocked()
	}

	rows := g.board.FullRows()
	if len(rows) == 0 {
		g.spawn()
		return
	}

	// Score and progression are awarded at lock time, before the delayed
	// removal.
	g.score += 100 * len(rows)
	g.lines += len(rows)
	if lvl := g.lines / 10; lvl > g.level {
		g.level = lvl
		g.normalInterval = max(1, g.cfg.NormalDropInterval-5*g.level)
	}

	if g.cfg.Hooks.RowsCompleted != nil {
		g.cfg.Hooks.RowsCompleted(slices.Clone(rows))
	}

	if g.cfg.ClearDelayTicks <= 0 {
		g.board.ClearRows(rows)
		g.spawn()
		return
	}
	g.pendingRows = rows
	g.clearCountdown = g.cfg.ClearDelayTicks
	g.state = StateClearing
}

// spawn promotes the next piece to the top middle of the board and draws a
// fresh next kind. A spawn that collides immediately ends the session; the
// colliding piece stays observable in snapshots.
func (g *Game) spawn() {
	g.state = StateFalling
	g.frames = 0
	g.current = g.next
	g.current.X = g.board.Width()/2 - 2
	g.current.Y = 0
	g.next = NewPiece(g.src.Next())

	if g.board.Collides(g.current.X, g.current.Y, g.current.Offsets) {
		g.state = StateGameOver
	}
}
