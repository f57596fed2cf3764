package assignment

import (
	"math/rand/v2"

	"github.com/pitchside/matchday/internal/domain/player"
)

// Shuffler permutes n elements through swap. Injectable so callers can pin
// the permutation in tests.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type randShuffler struct{}

func (randShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// NewShuffler returns the default uniform (Fisher-Yates) shuffler.
func NewShuffler() Shuffler {
	return randShuffler{}
}

// Split partitions the eligible pool into two sides: a uniform random
// permutation cut according to the sizing policy. Degenerate input (empty
// pool, non-positive team size) yields two empty sides. Players beyond
// sizeA+sizeB stay unassigned, which happens when the pool exceeds twice
// the requested size.
func Split(eligible []player.Player, teamSize int, shuffler Shuffler) Assignment {
	if len(eligible) == 0 || teamSize <= 0 {
		return Assignment{
			SideA:    []player.Player{},
			SideB:    []player.Player{},
			TeamSize: max(teamSize, 0),
		}
	}
	if shuffler == nil {
		shuffler = randShuffler{}
	}

	pool := make([]player.Player, len(eligible))
	copy(pool, eligible)
	shuffler.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	total := len(pool)
	sizeA := total / 2
	sizeB := total - sizeA
	if teamSize*2 <= total {
		sizeA = min(teamSize, total)
		sizeB = min(teamSize, total-sizeA)
		// Guard against leaving side B one player short of the request when
		// leftovers exist. Kept verbatim from the legacy sizing rules.
		if sizeB < teamSize-1 && total-teamSize > 0 {
			sizeA = teamSize
			sizeB = total - teamSize
		}
	}

	return Assignment{
		SideA:    pool[:sizeA],
		SideB:    pool[sizeA : sizeA+sizeB],
		TeamSize: teamSize,
	}
}

// Move places the player on the target side, removing it from wherever it
// currently sits. Moving a player already on the target side is a no-op
// beyond repositioning it at the end; no side ever holds duplicates.
func Move(a Assignment, p player.Player, target Side) Assignment {
	sideA := withoutPlayer(a.SideA, p.ID)
	sideB := withoutPlayer(a.SideB, p.ID)

	switch target {
	case SideA:
		sideA = append(sideA, p)
	case SideB:
		sideB = append(sideB, p)
	}

	return Assignment{
		SideA:    sideA,
		SideB:    sideB,
		TeamSize: a.TeamSize,
	}
}

// Clear empties both sides, returning every eligible player to the
// unassigned pool. The requested team size is kept.
func Clear(a Assignment) Assignment {
	return Assignment{
		SideA:    []player.Player{},
		SideB:    []player.Player{},
		TeamSize: a.TeamSize,
	}
}

func withoutPlayer(side []player.Player, playerID string) []player.Player {
	out := make([]player.Player, 0, len(side))
	for _, p := range side {
		if p.ID == playerID {
			continue
		}
		out = append(out, p)
	}

	return out
}
