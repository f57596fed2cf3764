package player

import (
	"fmt"
	"strings"
)

// Player is one person on the session roster. IsIn marks attendance for the
// upcoming session; HasPaid marks settlement of this week's fee.
type Player struct {
	ID      string
	Name    string
	IsIn    bool
	HasPaid bool
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}

// Eligible filters the roster down to players attending the session.
func Eligible(roster []Player) []Player {
	out := make([]Player, 0, len(roster))
	for _, p := range roster {
		if p.IsIn {
			out = append(out, p)
		}
	}

	return out
}
