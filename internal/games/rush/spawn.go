package rush

import "math/rand"

// spawnFourProb is the chance a spawned Number tile is a 4 instead of a 2.
const spawnFourProb = 0.10

// PowerupSpawn enables one powerup kind and sets its relative spawn weight.
type PowerupSpawn struct {
	Enabled bool
	Weight  float64
}

// SpawnPolicy controls what appears in empty cells after a move.
type SpawnPolicy struct {
	Master      bool    // Master switch for powerup spawning
	Probability float64 // Chance a spawn is a powerup instead of a Number

	Bomb    PowerupSpawn
	Joker   PowerupSpawn
	Surge   PowerupSpawn
	Shuffle PowerupSpawn
	Glass   PowerupSpawn
}

// DefaultSpawnPolicy returns the built-in spawn tuning.
func DefaultSpawnPolicy() SpawnPolicy {
	return SpawnPolicy{
		Master:      true,
		Probability: 0.15,
		Bomb:        PowerupSpawn{Enabled: true, Weight: 3},
		Joker:       PowerupSpawn{Enabled: true, Weight: 4},
		Surge:       PowerupSpawn{Enabled: true, Weight: 2},
		Shuffle:     PowerupSpawn{Enabled: true, Weight: 2},
		Glass:       PowerupSpawn{Enabled: true, Weight: 5},
	}
}

// weightedKinds returns the powerup kinds in roll order with their
// effective weights. Disabled kinds contribute 0 and can never be drawn.
func (p SpawnPolicy) weightedKinds() []struct {
	Kind   Kind
	Weight float64
} {
	entries := []struct {
		Kind   Kind
		Weight float64
	}{
		{KindBomb, 0},
		{KindJoker, 0},
		{KindSurge, 0},
		{KindShuffle, 0},
		{KindGlass, 0},
	}
	configs := []PowerupSpawn{p.Bomb, p.Joker, p.Surge, p.Shuffle, p.Glass}
	for i, cfg := range configs {
		if cfg.Enabled {
			entries[i].Weight = cfg.Weight
		}
	}
	return entries
}

// rollPowerupKind selects a powerup kind by cumulative-weight scan.
// Falls back to KindNumber when the total weight is zero.
func rollPowerupKind(p SpawnPolicy, rng *rand.Rand) Kind {
	entries := p.weightedKinds()

	total := 0.0
	for _, e := range entries {
		total += e.Weight
	}
	if total <= 0 {
		return KindNumber
	}

	roll := rng.Float64() * total
	cumulative := 0.0
	for _, e := range entries {
		cumulative += e.Weight
		if roll < cumulative {
			return e.Kind
		}
	}
	return KindNumber
}

// spawn writes a new tile into a uniformly chosen empty cell. When
// allowPowerups is false (hardcore ruleset) or the policy's master switch
// is off, the tile is always a Number. Otherwise a draw below the policy's
// probability produces a powerup selected by weighted roll. Returns the
// chosen cell and tile; ok is false when the board is full.
func spawn(b *Board, policy SpawnPolicy, allowPowerups bool, rng *rand.Rand, mint func(Kind, int) Tile) (cell int, t Tile, ok bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return 0, Tile{}, false
	}

	cell = empty[rng.Intn(len(empty))]

	kind := KindNumber
	if allowPowerups && policy.Master && rng.Float64() < policy.Probability {
		kind = rollPowerupKind(policy, rng)
	}

	value := 0
	if kind == KindNumber {
		value = 2
		if rng.Float64() < spawnFourProb {
			value = 4
		}
	}

	t = mint(kind, value)
	b.Put(cell, t)
	return cell, t, true
}
