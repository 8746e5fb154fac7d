package rush

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tilerush/internal/config"
	"github.com/vovakirdan/tilerush/internal/core"
	"github.com/vovakirdan/tilerush/internal/registry"
)

// Mode represents the active ruleset.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeHardcore Mode = "hardcore"
)

// MutationResult reports the outcome of a single engine operation so the
// presentation layer can decide what to animate or announce without
// re-deriving it. Invalid operations return the zero value.
type MutationResult struct {
	Changed    bool
	ScoreDelta int
	GameOver   bool // The game ended with this mutation
}

// Game implements the TileRush puzzle. All operations are synchronous and
// run to completion; the board, score, and history are exclusively owned by
// one live Game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	rules  config.RulesConfig
	policy SpawnPolicy

	board  Board
	score  int
	moves  int
	nextID TileID

	best      int // Best score on record for this ruleset
	startBest int // Best score at game start, for the new-best flag
	newBest   bool

	hist history

	gameOver bool
	paused   bool
	tooSmall bool

	started time.Time
	result  *GameResult

	screenW int
	screenH int
}

// Package-level configuration applied at the next Reset.
var (
	configPath     string
	selectedPreset config.RulesPreset
	gridOverride   int
)

// SetConfigPath sets a custom configuration file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects the ruleset preset applied on top of the loaded config.
func SetPreset(preset string) {
	selectedPreset = config.RulesPreset(preset)
}

// SetGridSize overrides the configured grid side length. 0 keeps the
// configured value; out-of-range values are clamped.
func SetGridSize(size int) {
	gridOverride = size
}

// New creates a classic-mode game: powerups spawn, undo/redo available.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewHardcore creates a hardcore-mode game: no powerups, no undo/redo.
func NewHardcore() *Game {
	return &Game{mode: ModeHardcore}
}

func init() {
	registry.Register("tilerush", func() registry.Game {
		return New()
	})
	registry.Register("tilerush_hardcore", func() registry.Game {
		return NewHardcore()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeHardcore {
		return "tilerush_hardcore"
	}
	return "tilerush"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeHardcore {
		return "TileRush (Hardcore)"
	}
	return "TileRush"
}

// Reset initializes or restarts the game: empty board of the configured
// size, two spawned tiles, cleared history. The previous game's result, if
// any, is discarded; callers wanting it must read it before resetting.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	rc, err := config.LoadRush(configPath)
	if err != nil {
		rc = config.DefaultRushConfig()
	}
	if selectedPreset != "" {
		config.ApplyPreset(&rc, selectedPreset)
	}
	if g.mode == ModeHardcore {
		config.ApplyPreset(&rc, config.PresetHardcore)
	}
	if gridOverride != 0 {
		rc.Board.Size = gridOverride
		rc.Normalize()
	}
	g.applyConfig(rc)

	g.board = NewBoard(rc.Board.Size)
	g.score = 0
	g.moves = 0
	g.nextID = 0
	g.newBest = false
	g.startBest = g.best
	g.hist.clear()
	g.gameOver = false
	g.paused = false
	g.started = time.Now()
	g.result = nil

	g.spawnOne()
	g.spawnOne()

	g.checkScreenSize()
}

// applyConfig maps the loaded configuration into engine-native types.
func (g *Game) applyConfig(rc config.RushConfig) {
	g.rules = rc.Rules
	g.policy = SpawnPolicy{
		Master:      rc.Spawn.Master,
		Probability: rc.Spawn.Probability,
		Bomb:        PowerupSpawn(rc.Spawn.Powerups.Bomb),
		Joker:       PowerupSpawn(rc.Spawn.Powerups.Joker),
		Surge:       PowerupSpawn(rc.Spawn.Powerups.Surge),
		Shuffle:     PowerupSpawn(rc.Spawn.Powerups.Shuffle),
		Glass:       PowerupSpawn(rc.Spawn.Powerups.Glass),
	}
}

// SetBest seeds the best-score bookkeeping from persisted results.
// Call after Reset; scores above this value raise the new-best flag.
func (g *Game) SetBest(score int) {
	g.best = score
	g.startBest = score
	g.newBest = false
}

// mintTile allocates a tile with a fresh ID.
func (g *Game) mintTile(k Kind, value int) Tile {
	g.nextID++
	return Tile{ID: g.nextID, Value: value, Kind: k}
}

// mintNumber allocates a Number tile; used by the compactor for merges.
func (g *Game) mintNumber(value int) Tile {
	return g.mintTile(KindNumber, value)
}

// undoAllowed reports whether snapshots are recorded and undo/redo accepted.
func (g *Game) undoAllowed() bool {
	return g.rules.UndoRedo
}

// spawnOne runs the spawner once against the live board.
func (g *Game) spawnOne() {
	spawn(&g.board, g.policy, g.rules.UndoRedo, g.rng, g.mintTile)
}

// rememberForUndo records the current state for undo, subject to the
// ruleset gate.
func (g *Game) rememberForUndo(label string) {
	if !g.undoAllowed() {
		return
	}
	g.hist.record(makeSnapshot(g.board, g.score, label))
}

// trackBest updates best-score bookkeeping after a score change.
func (g *Game) trackBest() {
	if g.score > g.best {
		g.best = g.score
	}
	if g.score > g.startBest {
		g.newBest = true
	}
}

// Move slides the board in the given direction. A move that changes
// nothing is a no-op: no snapshot, no spawn, no score change, no terminal
// check.
func (g *Game) Move(dir Direction) MutationResult {
	if g.gameOver || g.paused {
		return MutationResult{}
	}

	next, delta, changed := Slide(g.board, dir, g.mintNumber)
	if !changed {
		return MutationResult{}
	}

	g.rememberForUndo("move " + dir.String())
	g.board = next
	g.score += delta
	g.moves++
	g.trackBest()
	g.spawnOne()
	ended := g.checkGameOver()

	return MutationResult{Changed: true, ScoreDelta: delta, GameOver: ended}
}

// Activate taps the given cell. Only Bomb, Surge, Shuffle, and Glass tiles
// respond; tapping a Number, a Joker, an empty cell, or out of bounds is a
// no-op. Activation never spawns a tile and never changes score.
func (g *Game) Activate(cell int) MutationResult {
	if g.gameOver || g.paused {
		return MutationResult{}
	}
	if !g.board.InBounds(cell) {
		return MutationResult{}
	}

	t := g.board.At(cell)
	if t.Empty() || !t.Kind.Activatable() {
		return MutationResult{}
	}

	g.rememberForUndo("tap " + t.Kind.String())

	switch t.Kind {
	case KindBomb:
		applyBomb(&g.board, cell)
	case KindSurge:
		applySurge(&g.board, cell)
	case KindShuffle:
		applyShuffle(&g.board, cell, g.rng)
	case KindGlass:
		applyGlass(&g.board, cell)
	}

	// Clearing cells cannot end the game, but every mutation is followed
	// by a terminal check.
	ended := g.checkGameOver()

	return MutationResult{Changed: true, GameOver: ended}
}

// Undo reverts the last recorded mutation. No-op when the stack is empty,
// the ruleset forbids it, or the game is paused or over.
func (g *Game) Undo() MutationResult {
	if g.gameOver || g.paused || !g.undoAllowed() {
		return MutationResult{}
	}

	snap, ok := g.hist.popUndo()
	if !ok {
		return MutationResult{}
	}

	g.hist.pushRedo(makeSnapshot(g.board, g.score, snap.Label))
	delta := snap.Score - g.score
	g.board = snap.Board
	g.score = snap.Score
	if g.moves > 0 {
		g.moves--
	}

	return MutationResult{Changed: true, ScoreDelta: delta}
}

// Redo reapplies the last undone mutation. Symmetric to Undo.
func (g *Game) Redo() MutationResult {
	if g.gameOver || g.paused || !g.undoAllowed() {
		return MutationResult{}
	}

	snap, ok := g.hist.popRedo()
	if !ok {
		return MutationResult{}
	}

	g.hist.pushUndo(makeSnapshot(g.board, g.score, snap.Label))
	delta := snap.Score - g.score
	g.board = snap.Board
	g.score = snap.Score
	g.moves++
	g.trackBest()

	return MutationResult{Changed: true, ScoreDelta: delta}
}

// checkGameOver runs the terminal-state detector and, on the first
// transition into game over, freezes the game and emits its result.
func (g *Game) checkGameOver() bool {
	if g.gameOver || !IsGameOver(g.board) {
		return false
	}
	g.gameOver = true
	res := g.Summary()
	g.result = &res
	return true
}

// Summary captures the game's running totals. Valid at any time; used for
// the terminal result and for results saved on explicit reset.
func (g *Game) Summary() GameResult {
	return GameResult{
		RulesetID: g.ID(),
		Score:     g.score,
		MoveCount: g.moves,
		MaxTile:   g.board.MaxValue(),
		GridSize:  g.board.Size,
		Duration:  time.Since(g.started),
		Timestamp: time.Now(),
	}
}

// Result returns the terminal result, valid once the game is over.
func (g *Game) Result() (GameResult, bool) {
	if g.result == nil {
		return GameResult{}, false
	}
	return *g.result, true
}

// Over reports whether the game has reached its terminal state.
func (g *Game) Over() bool {
	return g.gameOver
}

// Moves returns the current move counter.
func (g *Game) Moves() int {
	return g.moves
}

// Board returns a copy of the live board for observers.
func (g *Game) Board() Board {
	return g.board.Clone()
}

// NextGoal returns the tile value to chase: double the current max tile,
// floored at 2048.
func (g *Game) NextGoal() int {
	goal := 2 * g.board.MaxValue()
	if goal < 2048 {
		goal = 2048
	}
	return goal
}

// Step advances the game by one tick, consuming the frame's input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform via Reset.
		return core.StepResult{State: g.State()}
	}

	var dir Direction
	moved := false
	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
		moved = true
	case in.Has(core.ActionDown):
		dir = DirDown
		moved = true
	case in.Has(core.ActionLeft):
		dir = DirLeft
		moved = true
	case in.Has(core.ActionRight):
		dir = DirRight
		moved = true
	}

	switch {
	case moved:
		g.Move(dir)
	case in.Has(core.ActionUndo):
		g.Undo()
	case in.Has(core.ActionRedo):
		g.Redo()
	}

	if cell, ok := in.Tap(); ok {
		g.Activate(cell)
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		NewBest:  g.newBest,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// checkScreenSize checks whether the board plus HUD fits the terminal.
func (g *Game) checkScreenSize() {
	minW, minH := minScreenSize(g.board.Size)
	g.tooSmall = g.screenW < minW || g.screenH < minH
}
