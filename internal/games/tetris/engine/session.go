// Package engine implements the tetris rules: the board matrix, the block
// arena, fall and lock timers, scoring, and the per-piece phase machine that
// ties them together. It is a closed, single-threaded simulation advanced by
// Session.Tick and knows nothing about terminals or key codes.
package engine

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/model"
)

// SpawnPos is the anchor every new piece appears at.
var SpawnPos = model.P(5, 21)

// Config holds the tunables of a session.
type Config struct {
	FallNormal     time.Duration
	FallSoft       time.Duration
	LockDelay      time.Duration
	ClearAnimation time.Duration // zero skips the Animate phase
	StartLevel     int
	TSpin          bool // award T-spin bonuses
}

// DefaultConfig returns the guideline timings at level 1.
func DefaultConfig() Config {
	return Config{
		FallNormal: 1000 * time.Millisecond,
		FallSoft:   50 * time.Millisecond,
		LockDelay:  500 * time.Millisecond,
		StartLevel: 1,
		TSpin:      true,
	}
}

// Input is the set of edge-triggered actions for one tick.
type Input struct {
	MoveLeft         bool
	MoveRight        bool
	RotateCW         bool
	RotateCCW        bool
	SoftDropPressed  bool
	SoftDropReleased bool
	HardDrop         bool
}

// Piece is the active tetrimino and its anchor.
type Piece struct {
	model.Tetrimino
	Pos model.Pos
}

// Cells returns the four board cells the piece covers.
func (p Piece) Cells() [4]model.Pos {
	return p.BlockPositions(p.Pos)
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Phase   Phase
	Events  []ScoreEvent
	Cleared []int // rows removed this tick, ascending
}

type tspinKind int

const (
	tspinNone tspinKind = iota
	tspinMini
	tspinFull
)

// Session owns all state of one game: board, arena, bag, timers, score and
// the current phase.
type Session struct {
	id     string
	cfg    Config
	logger *log.Logger

	bag    *model.Bag
	matrix Matrix
	blocks *Blocks
	timers Timers
	score  Score

	phase     Phase
	scheduled Phase // applied at the start of the next Tick; Noop when none

	current    Piece
	hasCurrent bool
	preview    model.Kind

	lastRotated bool
	tspin       tspinKind
	clearing    []int
	animLeft    time.Duration
	lines       int

	// per-tick output
	events  []ScoreEvent
	cleared []int
}

// NewSession creates an idle session. rng drives the bag; a nil logger
// discards output. Call Start to begin play.
func NewSession(cfg Config, rng *rand.Rand, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.StartLevel < 1 {
		cfg.StartLevel = 1
	}
	id := uuid.NewString()
	return &Session{
		id:     id,
		cfg:    cfg,
		logger: logger.With("session", id),
		bag:    model.NewBag(rng),
		blocks: NewBlocks(),
		timers: NewTimers(cfg),
	}
}

// Start resets the score to the configured level and spawns the first piece.
// The returned events include the LevelStart.
func (s *Session) Start() TickResult {
	s.beginTick()
	s.logger.Info("game started", "level", s.cfg.StartLevel)
	s.emit(LevelStart(s.cfg.StartLevel))
	s.enter(Generation)
	return s.result()
}

// Tick advances the session by dt with the given input.
func (s *Session) Tick(in Input, dt time.Duration) TickResult {
	s.beginTick()

	if next := s.scheduled; next != Noop {
		s.scheduled = Noop
		s.enter(next)
	}

	switch s.phase {
	case Falling:
		s.tickFalling(in, dt)
	case Animate:
		s.animLeft -= dt
		if s.animLeft <= 0 {
			s.enter(Eliminate)
		}
	}

	return s.result()
}

func (s *Session) beginTick() {
	s.events = nil
	s.cleared = nil
}

func (s *Session) result() TickResult {
	return TickResult{Phase: s.phase, Events: s.events, Cleared: s.cleared}
}

func (s *Session) emit(e ScoreEvent) {
	s.score.HandleEvent(e)
	s.events = append(s.events, e)
}

// enter switches to p and runs its entry action.
func (s *Session) enter(p Phase) {
	prev := s.phase
	s.phase = p

	switch p {
	case Generation:
		s.enterGeneration()
	case Falling:
		s.enterFalling(prev)
	case Lock:
		s.enterLock()
	case Pattern:
		s.enterPattern()
	case Animate:
		s.animLeft = s.cfg.ClearAnimation
	case Eliminate:
		s.enterEliminate()
	case Completion:
		s.hasCurrent = false
		s.logger.Info("game over", "score", s.score.Points(), "lines", s.lines)
	}
}

func (s *Session) enterGeneration() {
	kind := s.bag.PopNext()
	s.preview = s.bag.PeekNext()
	s.current = Piece{Tetrimino: model.NewTetrimino(kind), Pos: SpawnPos}
	s.hasCurrent = true
	s.lastRotated = false
	s.tspin = tspinNone
	s.logger.Debug("generating piece", "kind", kind, "next", s.preview)

	if !s.matrix.IsPosValid(s.current.Tetrimino, s.current.Pos) {
		s.logger.Debug("block out", "kind", kind)
		s.enter(Completion)
		return
	}
	s.scheduled = Falling
}

func (s *Session) enterFalling(prev Phase) {
	if prev == Generation && s.hasCurrent {
		// First drop: the piece starts one row lower when there is room.
		if down := s.current.Pos.Down(); s.matrix.IsPosValid(s.current.Tetrimino, down) {
			s.current.Pos = down
		}
	}
	s.timers.ResetForPiece()
}

func (s *Session) enterLock() {
	if !s.hasCurrent {
		s.logger.Warn("lock without an active piece")
		s.scheduled = Pattern
		return
	}
	piece := s.current
	s.logger.Debug("locking piece", "kind", piece.Kind, "pos", piece.Pos, "facing", piece.Facing)

	if s.cfg.TSpin {
		s.tspin = s.detectTSpin(piece)
	}

	lockOut := true
	for _, c := range piece.Cells() {
		id := s.blocks.Spawn(piece.Kind, c)
		s.matrix.Insert(c, id)
		if c.Y < model.VisibleHeight {
			lockOut = false
		}
	}
	s.hasCurrent = false

	if lockOut {
		s.logger.Debug("lock out", "pos", piece.Pos)
		s.enter(Completion)
		return
	}
	s.scheduled = Pattern
}

func (s *Session) enterPattern() {
	s.clearing = s.matrix.FullLines()
	for _, id := range s.matrix.BlocksToDelete(s.clearing) {
		s.blocks.MarkClearing(id)
	}

	switch {
	case len(s.clearing) == 0:
		switch s.tspin {
		case tspinFull:
			s.emit(ScoreEvent{Kind: EventTSpin})
		case tspinMini:
			s.emit(ScoreEvent{Kind: EventMiniTSpin})
		}
		s.scheduled = Generation
	case s.cfg.ClearAnimation > 0:
		s.scheduled = Animate
	default:
		s.scheduled = Eliminate
	}
}

func (s *Session) enterEliminate() {
	rows := s.clearing
	s.clearing = nil

	for _, id := range s.matrix.BlocksToDelete(rows) {
		s.blocks.Despawn(id)
	}
	desc := slices.Clone(rows)
	slices.Sort(desc)
	slices.Reverse(desc)
	for _, row := range desc {
		s.logger.Debug("removing line", "row", row)
		s.matrix.DeleteLine(row)
	}
	for _, slot := range s.matrix.NonEmpty() {
		s.blocks.SetPos(slot.ID, slot.Pos)
	}

	if ev, ok := s.lineClearEvent(len(rows)); ok {
		s.emit(ev)
		s.lines += len(rows)
		s.cleared = rows
	} else {
		s.logger.Warn("unexpected line clear count", "rows", len(rows))
	}
	s.scheduled = Generation
}

// lineClearEvent picks the event for n rows, upgraded by a pending T-spin.
func (s *Session) lineClearEvent(n int) (ScoreEvent, bool) {
	ev, ok := LineClear(n)
	if !ok {
		return ev, false
	}
	switch {
	case s.tspin == tspinFull && n == 1:
		ev.Kind = EventTSpinSingle
	case s.tspin == tspinFull && n == 2:
		ev.Kind = EventTSpinDouble
	case s.tspin == tspinFull && n == 3:
		ev.Kind = EventTSpinTriple
	case s.tspin == tspinMini && n == 1:
		ev.Kind = EventMiniTSpinSingle
	}
	return ev, true
}

func (s *Session) tickFalling(in Input, dt time.Duration) {
	if !s.hasCurrent {
		s.logger.Warn("falling without an active piece")
		return
	}
	s.timers.Tick(dt)

	if s.timers.Lock.JustFinished() {
		s.enter(Lock)
		return
	}

	if s.timers.Lock.Paused() {
		moved := 0
		for range s.timers.Fall.TimesFinishedThisTick() {
			if !s.tryMove(s.current.Pos.Down()) {
				break
			}
			moved++
		}
		if moved > 0 && s.timers.Fall.SoftDropping() {
			s.emit(SoftDrop(moved))
		}
	}

	switch {
	case in.RotateCCW:
		s.tryRotate(s.current.RotatedCCW())
	case in.RotateCW:
		s.tryRotate(s.current.RotatedCW())
	}

	switch {
	case in.MoveLeft:
		pos := s.current.Pos.Left()
		if s.current.MinX(pos) >= 0 {
			s.tryMove(pos)
		}
	case in.MoveRight:
		pos := s.current.Pos.Right()
		if s.current.MaxX(pos) <= model.Width-1 {
			s.tryMove(pos)
		}
	}

	if in.HardDrop {
		target := s.matrix.LowestValidPos(s.current.Tetrimino, s.current.Pos)
		if dist := s.current.Pos.Y - target.Y; dist > 0 {
			s.current.Pos = target
			s.lastRotated = false
			s.emit(HardDrop(dist))
		}
		s.enter(Lock)
		return
	}

	if in.SoftDropPressed {
		s.timers.Fall.SetSoftDrop()
	}
	if in.SoftDropReleased {
		s.timers.Fall.SetNormal()
	}

	grounded := s.matrix.IsOnSurface(s.current.Tetrimino, s.current.Pos)
	switch {
	case grounded && s.timers.Lock.Paused():
		s.timers.Fall.Pause()
		s.timers.Lock.Reset()
		s.timers.Lock.Unpause()
	case !grounded && !s.timers.Lock.Paused():
		s.timers.Lock.Pause()
		s.timers.Fall.SetNormal()
		s.timers.Fall.Unpause()
	}
}

// tryMove commits pos if the current piece fits there.
func (s *Session) tryMove(pos model.Pos) bool {
	if !s.matrix.IsPosValid(s.current.Tetrimino, pos) {
		return false
	}
	s.current.Pos = pos
	s.lastRotated = false
	return true
}

// tryRotate commits a new facing in place. There are no wall kicks.
func (s *Session) tryRotate(t model.Tetrimino) bool {
	if !s.matrix.IsPosValid(t, s.current.Pos) {
		return false
	}
	s.current.Tetrimino = t
	s.lastRotated = true
	return true
}

// tspinFront lists the two diagonal corners on the side a T points to.
var tspinFront = [4][2]model.Pos{
	model.North: {{X: -1, Y: 1}, {X: 1, Y: 1}},
	model.East:  {{X: 1, Y: 1}, {X: 1, Y: -1}},
	model.South: {{X: -1, Y: -1}, {X: 1, Y: -1}},
	model.West:  {{X: -1, Y: 1}, {X: -1, Y: -1}},
}

// detectTSpin applies the three-corner rule to a T that was last rotated.
func (s *Session) detectTSpin(p Piece) tspinKind {
	if p.Kind != model.KindT || !s.lastRotated {
		return tspinNone
	}
	occupied := func(off model.Pos) bool {
		return !s.matrix.isFree(p.Pos.Add(off))
	}

	corners := 0
	for _, off := range []model.Pos{{X: -1, Y: 1}, {X: 1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}} {
		if occupied(off) {
			corners++
		}
	}
	if corners < 3 {
		return tspinNone
	}
	front := tspinFront[p.Facing]
	if occupied(front[0]) && occupied(front[1]) {
		return tspinFull
	}
	return tspinMini
}

// SetFallNormal changes the gravity period. The current piece keeps its
// speed; the change applies from the next piece or soft-drop release.
func (s *Session) SetFallNormal(d time.Duration) {
	if d <= 0 {
		return
	}
	s.cfg.FallNormal = d
	s.timers.Fall.SetNormalPeriod(d)
}

// ID returns the session's unique id.
func (s *Session) ID() string { return s.id }

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }

// Phase returns the active phase.
func (s *Session) Phase() Phase { return s.phase }

// Matrix returns the board. Callers must not modify it.
func (s *Session) Matrix() *Matrix { return &s.matrix }

// Blocks returns the arena of locked blocks. Callers must not modify it.
func (s *Session) Blocks() *Blocks { return s.blocks }

// Current returns the active piece, if any.
func (s *Session) Current() (Piece, bool) { return s.current, s.hasCurrent }

// Preview returns the kind that will spawn next.
func (s *Session) Preview() model.Kind { return s.preview }

// Ghost returns the active piece projected onto its landing position.
func (s *Session) Ghost() (Piece, bool) {
	if !s.hasCurrent {
		return Piece{}, false
	}
	g := s.current
	g.Pos = s.matrix.LowestValidPos(g.Tetrimino, g.Pos)
	return g, true
}

// Score returns the current score.
func (s *Session) Score() Score { return s.score }

// LinesCleared returns the total number of rows removed.
func (s *Session) LinesCleared() int { return s.lines }

// GameOver reports whether the session reached Completion.
func (s *Session) GameOver() bool { return s.phase == Completion }

// Timers exposes the timers for inspection.
func (s *Session) Timers() *Timers { return &s.timers }
