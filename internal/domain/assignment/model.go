package assignment

import "github.com/pitchside/matchday/internal/domain/player"

// Side identifies one of the two teams being assembled.
type Side string

const (
	SideA Side = "sideA"
	SideB Side = "sideB"
)

func ParseSide(raw string) (Side, bool) {
	switch Side(raw) {
	case SideA, SideB:
		return Side(raw), true
	default:
		return "", false
	}
}

// Assignment is the live partition of eligible players into two disjoint
// sides. Order within a side reflects shuffle order and carries no meaning.
type Assignment struct {
	SideA    []player.Player
	SideB    []player.Player
	TeamSize int
}

// Snapshot is the persisted form of an Assignment: id lists only, so the
// record survives roster edits and is re-hydrated on load.
type Snapshot struct {
	SideAPlayerIDs []string
	SideBPlayerIDs []string
	TeamSize       int
}

func (a Assignment) Snapshot() Snapshot {
	return Snapshot{
		SideAPlayerIDs: playerIDs(a.SideA),
		SideBPlayerIDs: playerIDs(a.SideB),
		TeamSize:       a.TeamSize,
	}
}

// Hydrate resolves a persisted snapshot against the current roster. Ids with
// no matching roster entry are dropped silently.
func Hydrate(snap Snapshot, roster []player.Player) Assignment {
	index := make(map[string]player.Player, len(roster))
	for _, p := range roster {
		index[p.ID] = p
	}

	resolve := func(ids []string) []player.Player {
		out := make([]player.Player, 0, len(ids))
		for _, id := range ids {
			p, ok := index[id]
			if !ok {
				continue
			}
			out = append(out, p)
		}
		return out
	}

	return Assignment{
		SideA:    resolve(snap.SideAPlayerIDs),
		SideB:    resolve(snap.SideBPlayerIDs),
		TeamSize: snap.TeamSize,
	}
}

// Unassigned returns the eligible players on neither side.
func Unassigned(a Assignment, eligible []player.Player) []player.Player {
	assigned := make(map[string]struct{}, len(a.SideA)+len(a.SideB))
	for _, p := range a.SideA {
		assigned[p.ID] = struct{}{}
	}
	for _, p := range a.SideB {
		assigned[p.ID] = struct{}{}
	}

	out := make([]player.Player, 0, len(eligible))
	for _, p := range eligible {
		if _, ok := assigned[p.ID]; ok {
			continue
		}
		out = append(out, p)
	}

	return out
}

func playerIDs(players []player.Player) []string {
	out := make([]string, 0, len(players))
	for _, p := range players {
		out = append(out, p.ID)
	}

	return out
}
