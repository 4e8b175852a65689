// Package looper provides the Looper pipe rotation puzzle for the platform.
package looper

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/looper/internal/config"
	platformcore "github.com/vovakirdan/looper/internal/core"
	"github.com/vovakirdan/looper/internal/games/looper/core"
	"github.com/vovakirdan/looper/internal/games/looper/levels"
	"github.com/vovakirdan/looper/internal/registry"
)

// Mode selects where levels come from.
type Mode int

const (
	ModeEndless Mode = iota // Random levels generated from the board config
	ModePack                // Levels from a pack, in ID order
)

// Game IDs registered by this package.
const (
	EndlessID = "looper"
	PackID    = "looper_pack"
)

// Game implements the Looper puzzle.
type Game struct {
	mode     Mode
	cfg      config.LooperConfig
	rng      *rand.Rand // Session source; seeds one source per level
	tickRate int

	puzzle    *core.Puzzle
	analysis  core.Analysis
	levelSeed int64
	levelID   string
	levelName string

	// Pack mode
	pack       []levels.Level
	levelIndex int
	startAt    int // Per-instance start level, overrides SetStartLevel

	// Screen dimensions
	screenW int
	screenH int

	cursorX int
	cursorY int

	// Status
	ticks      int // Unpaused ticks spent on the current level
	levelScore int
	totalScore int
	solved     bool
	won        bool
	paused     bool
	tooSmall   bool
	err        error

	layout layout
}

// Package-level settings shared by every new game instance.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultLooperConfig()
	levelDir   string // Empty means the built-in pack
	startLevel int
	onSkip     func(path string, err error)
)

// SetConfig sets the configuration used by games created after the call.
func SetConfig(cfg config.LooperConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// SetLevelDir makes pack mode read levels from dir. Empty restores the
// built-in pack.
func SetLevelDir(dir string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	levelDir = dir
}

// SetSkipHandler installs fn to hear about level files pack mode skips.
func SetSkipHandler(fn func(path string, err error)) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	onSkip = fn
}

// SetStartLevel sets the starting pack level (1-indexed). 0 means start from the beginning.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	startLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return startLevel
}

func currentSettings() (config.LooperConfig, string, int) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings, levelDir, startLevel
}

// PackLevels loads the levels pack mode plays.
func PackLevels() ([]levels.Level, error) {
	_, dir, _ := currentSettings()
	return loadPack(dir)
}

func loadPack(dir string) ([]levels.Level, error) {
	loader := levels.Builtin()
	if dir != "" {
		loader = levels.NewLoader(dir)
	}
	settingsMu.RLock()
	loader.OnSkip = onSkip
	settingsMu.RUnlock()
	all, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no levels found in %s", loader.Root)
	}
	return all, nil
}

var (
	_ registry.Game          = (*Game)(nil)
	_ registry.Resizer       = (*Game)(nil)
	_ registry.LevelSelector = (*Game)(nil)
)

func init() {
	registry.Register(EndlessID, func() registry.Game {
		return New(ModeEndless)
	})
	registry.Register(PackID, func() registry.Game {
		return New(ModePack)
	})
}

// SelectLevel sets the 1-indexed pack level the next Reset starts from for
// this instance only.
func (g *Game) SelectLevel(level int) {
	g.startAt = level
}

// New creates a new Looper game in the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePack {
		return PackID
	}
	return EndlessID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePack {
		return "Looper: Level Pack"
	}
	return "Looper"
}

// Reset initializes or restarts the game session.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.totalScore = 0
	g.won = false
	g.paused = false
	g.err = nil
	g.puzzle = nil

	var dir string
	var start int
	g.cfg, dir, start = currentSettings()
	if g.startAt > 0 {
		start = g.startAt
	}

	if g.mode == ModePack {
		pack, err := loadPack(dir)
		if err != nil {
			g.err = err
			return
		}
		g.pack = pack
		g.levelIndex = 0
		if start > 0 && start <= len(pack) {
			g.levelIndex = start - 1
		}
	}

	g.startLevel()
}

// startLevel loads a fresh level: the next generated board in endless mode,
// the current pack entry in pack mode.
func (g *Game) startLevel() {
	g.levelSeed = g.rng.Int63()
	params := core.GenParams{
		Width:  g.cfg.Board.Width,
		Height: g.cfg.Board.Height,
		Fill:   g.cfg.Board.Fill,
	}
	puzzle := core.NewPuzzle(rand.New(rand.NewSource(g.levelSeed)), params)

	switch g.mode {
	case ModePack:
		lvl := g.pack[g.levelIndex]
		puzzle.Load(lvl.Grid)
		g.levelID = lvl.ID
		g.levelName = lvl.Name
	default:
		if err := puzzle.NewLevel(); err != nil {
			g.err = err
			return
		}
		g.levelID = ""
		g.levelName = ""
	}

	g.puzzle = puzzle
	g.err = nil
	g.cursorX, g.cursorY = 0, 0
	g.ticks = 0
	g.levelScore = 0
	g.solved = false
	g.analysis = core.Analyze(puzzle)
	g.calculateLayout()
}

// restartLevel scrambles the current level again.
func (g *Game) restartLevel() {
	g.puzzle.Load(g.puzzle.Level())
	g.ticks = 0
	g.analysis = core.Analyze(g.puzzle)
}

// advance moves past the current level.
func (g *Game) advance() {
	if g.mode == ModePack {
		g.levelIndex++
		if g.levelIndex >= len(g.pack) {
			g.won = true
			return
		}
	}
	g.startLevel()
}

// Resize adapts the layout to a new screen size, keeping the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.puzzle != nil {
		g.calculateLayout()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	switch {
	case g.won:
		if input.Has(platformcore.ActionRestart) {
			g.won = false
			g.totalScore = 0
			g.levelIndex = 0
			g.startLevel()
		}
		return platformcore.StepResult{State: g.State()}

	case g.err != nil:
		if g.mode == ModeEndless && (input.Has(platformcore.ActionRestart) || input.Has(platformcore.ActionNewLevel)) {
			g.startLevel()
		}
		return platformcore.StepResult{State: g.State()}

	case g.puzzle == nil:
		return platformcore.StepResult{State: g.State()}

	case g.solved:
		if input.Has(platformcore.ActionRestart) || input.Has(platformcore.ActionNewLevel) || input.Has(platformcore.ActionRotate) {
			g.advance()
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionNewLevel) {
		g.advance()
		return platformcore.StepResult{State: g.State()}
	}
	if input.Has(platformcore.ActionRestart) {
		g.restartLevel()
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(input)

	if input.Has(platformcore.ActionRotate) {
		g.puzzle.Rotate(g.cursorX, g.cursorY)
		g.analysis = core.Analyze(g.puzzle)
	}

	g.ticks++

	if !g.puzzle.IsSolved() {
		return platformcore.StepResult{State: g.State()}
	}

	g.solved = true
	report := g.solveReport()
	g.levelScore = report.Score
	g.totalScore += report.Score
	return platformcore.StepResult{State: g.State(), Solved: report}
}

func (g *Game) moveCursor(input platformcore.InputFrame) {
	if input.Has(platformcore.ActionUp) {
		g.cursorY--
	}
	if input.Has(platformcore.ActionDown) {
		g.cursorY++
	}
	if input.Has(platformcore.ActionLeft) {
		g.cursorX--
	}
	if input.Has(platformcore.ActionRight) {
		g.cursorX++
	}
	g.cursorX = platformcore.Clamp(g.cursorX, 0, g.puzzle.Width()-1)
	g.cursorY = platformcore.Clamp(g.cursorY, 0, g.puzzle.Height()-1)
}

// pipeTiles counts the non-empty tiles of the current level.
func (g *Game) pipeTiles() int {
	counts := g.puzzle.Level().ShapeCounts()
	return g.puzzle.Width()*g.puzzle.Height() - counts[core.ShapeNone]
}

func (g *Game) solveReport() *platformcore.SolveReport {
	params := g.puzzle.Params()
	duration := platformcore.RuntimeConfig{TickRate: g.tickRate}.TickDuration(g.ticks)
	r := &platformcore.SolveReport{
		LevelID:  g.levelID,
		Width:    g.puzzle.Width(),
		Height:   g.puzzle.Height(),
		Fill:     params.Fill,
		Seed:     g.levelSeed,
		Moves:    g.puzzle.Moves(),
		Duration: duration,
		Score:    g.cfg.Scoring.Score(g.pipeTiles(), g.puzzle.Moves(), duration),
	}
	if g.mode == ModePack {
		r.Fill = 0
	}
	return r
}

// State returns the current game state. Score is the score of the level
// just solved, zero while it is still in play.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.levelScore,
		GameOver: g.solved || g.won,
		Paused:   g.paused,
	}
}

// Puzzle exposes the active puzzle, nil before Reset or after a failed
// generation.
func (g *Game) Puzzle() *core.Puzzle {
	return g.puzzle
}

// Cursor returns the tile under the cursor.
func (g *Game) Cursor() core.Coord {
	return core.C(g.cursorX, g.cursorY)
}
