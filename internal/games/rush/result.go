package rush

import "time"

// GameResult is the terminal summary emitted once per finished game,
// whether the game ended by loss or by explicit reset. Never mutated after
// emission; cross-game aggregation is the storage layer's concern.
type GameResult struct {
	RulesetID string
	Score     int
	MoveCount int
	MaxTile   int
	GridSize  int
	Duration  time.Duration
	Timestamp time.Time
}
