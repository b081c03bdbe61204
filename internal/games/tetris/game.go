// Package tetris adapts the tetris engine to the platform: it registers the
// game, turns platform actions into engine input, and draws the board, ghost,
// preview and HUD into a core.Screen.
package tetris

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the rule variant.
type Mode int

const (
	ModeGuideline Mode = iota // ghost piece and T-spin bonuses
	ModeClassic               // no ghost, no T-spin bonuses
)

// flashTicks is how long a clear label stays in the HUD (~1.5 seconds at 60 FPS).
const flashTicks = 90

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives engine diagnostics; nil discards them.
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes engine logging to l.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game implements registry.Game on top of an engine.Session.
type Game struct {
	mode Mode

	runtime    core.RuntimeConfig
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	session    *engine.Session
	dt         time.Duration

	tick      uint64 // frames stepped, paused or not
	played    uint64 // frames the session actually ticked
	paused    bool
	softHeld  bool
	flash     string
	flashLeft int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a guideline tetris game.
func New() *Game {
	return &Game{mode: ModeGuideline}
}

// NewClassic creates a tetris game without ghost piece or T-spin bonuses.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "tetris_classic"
	}
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tetris (Classic)"
	}
	return "Tetris"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.dt = runtime.TickDuration()

	// Load game config
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultTetrisConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}

	if g.mode == ModeClassic {
		cfg.Display.Ghost = false
		cfg.Scoring.TSpin = false
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.minScreenW = layoutWidth
	g.minScreenH = layoutHeight
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.session = engine.NewSession(engineConfig(cfg), g.rng, logger)
	g.session.SetFallNormal(g.difficulty.FallInterval(cfg.Timing.FallNormal(), 0, 0))
	g.session.Start()

	g.tick = 0
	g.played = 0
	g.paused = false
	g.softHeld = false
	g.flash = ""
	g.flashLeft = 0
}

// engineConfig converts the YAML config into engine tunables.
func engineConfig(cfg config.TetrisConfig) engine.Config {
	return engine.Config{
		FallNormal:     cfg.Timing.FallNormal(),
		FallSoft:       cfg.Timing.FallSoft(),
		LockDelay:      cfg.Timing.LockDelay(),
		ClearAnimation: cfg.Timing.ClearAnimation(),
		StartLevel:     cfg.Scoring.StartLevel,
		TSpin:          cfg.Scoring.TSpin,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.session.GameOver() || g.paused) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}

	if g.flashLeft > 0 {
		g.flashLeft--
	}

	if g.paused || g.screenTooSmall || g.session.GameOver() {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Tick(g.engineInput(input), g.dt)
	g.played++

	events := make([]string, 0, len(res.Events))
	for _, ev := range res.Events {
		events = append(events, ev.String())
		if label := clearLabel(ev.Kind); label != "" {
			g.flash = label
			g.flashLeft = flashTicks
		}
	}

	if g.difficulty.IsEnabled() {
		lines := g.session.LinesCleared()
		g.session.SetFallNormal(g.difficulty.FallInterval(g.cfg.Timing.FallNormal(), lines, int(g.played)))
	}

	return core.StepResult{State: g.State(), Events: events}
}

// engineInput turns platform actions into engine edges. Soft drop repeats
// while held do not re-trigger the press.
func (g *Game) engineInput(input core.InputFrame) engine.Input {
	in := engine.Input{
		MoveLeft:  input.Has(core.ActionLeft),
		MoveRight: input.Has(core.ActionRight),
		RotateCW:  input.Has(core.ActionRotateCW),
		RotateCCW: input.Has(core.ActionRotateCCW),
		HardDrop:  input.Has(core.ActionHardDrop),
	}

	if input.Has(core.ActionSoftDrop) && !g.softHeld {
		g.softHeld = true
		in.SoftDropPressed = true
	}
	if input.WasReleased(core.ActionSoftDrop) && g.softHeld {
		g.softHeld = false
		in.SoftDropReleased = true
	}
	return in
}

// clearLabel returns the HUD text for a line clear or T-spin event.
func clearLabel(k engine.ScoreEventKind) string {
	switch k {
	case engine.EventSingle:
		return "SINGLE"
	case engine.EventDouble:
		return "DOUBLE"
	case engine.EventTriple:
		return "TRIPLE"
	case engine.EventTetris:
		return "TETRIS!"
	case engine.EventMiniTSpin:
		return "MINI T-SPIN"
	case engine.EventMiniTSpinSingle:
		return "MINI T-SPIN 1"
	case engine.EventTSpin:
		return "T-SPIN"
	case engine.EventTSpinSingle:
		return "T-SPIN SINGLE"
	case engine.EventTSpinDouble:
		return "T-SPIN DOUBLE"
	case engine.EventTSpinTriple:
		return "T-SPIN TRIPLE"
	default:
		return ""
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	score := g.session.Score()
	return core.GameState{
		Score:    int(score.Points()),
		Level:    score.Level(),
		Lines:    g.session.LinesCleared(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
	}
}

// Session exposes the running engine session.
func (g *Game) Session() *engine.Session {
	return g.session
}

// Config returns the effective configuration.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}

// MinSize returns the smallest screen the layout fits in.
func (g *Game) MinSize() (w, h int) {
	return layoutWidth, layoutHeight
}

// SoftDropHold returns how long the platform keeps soft drop held after the
// last key repeat.
func (g *Game) SoftDropHold() time.Duration {
	return g.cfg.Input.SoftDropHold()
}

// Register the games with the registry
func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_classic", func() registry.Game {
		return NewClassic()
	})
}
