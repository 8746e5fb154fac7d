package rush

// Phase represents the current game phase.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseGameOver    Phase = "game_over"
	PhaseSmallWindow Phase = "paused_small_window"
)

// StateSnapshot captures the complete observable game state for determinism
// testing and replay. Unlike the undo history's Snapshot it carries counters
// and phase, not just board and score.
type StateSnapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Moves     int
	Board     Board
	MaxTile   int
	UndoDepth int
	RedoDepth int
	Phase     Phase
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() StateSnapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhaseSmallWindow
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	return StateSnapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Score:     g.score,
		Moves:     g.moves,
		Board:     g.board.Clone(),
		MaxTile:   g.board.MaxValue(),
		UndoDepth: g.hist.UndoDepth(),
		RedoDepth: g.hist.RedoDepth(),
		Phase:     phase,
	}
}
