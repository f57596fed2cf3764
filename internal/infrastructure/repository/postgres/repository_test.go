package postgres

import (
	"github.com/pitchside/matchday/internal/domain/assignment"
	"github.com/pitchside/matchday/internal/domain/game"
	"github.com/pitchside/matchday/internal/domain/player"
)

var (
	_ player.Repository     = (*PlayerRepository)(nil)
	_ assignment.Repository = (*AssignmentRepository)(nil)
	_ game.Repository       = (*GameRepository)(nil)
)
