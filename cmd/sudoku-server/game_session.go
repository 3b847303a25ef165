package main

import (
	"encoding/json"
	"time"

	"sudoku-server/internal/sudoku"
)

type GameSession struct {
	SessionId string
	PlayerId  *int
	State     sudoku.GameState
	StartedAt time.Time
	EndedAt   time.Time
}

type GameSessionJSON struct {
	SessionId  string            `json:"session_id"`
	Order      int               `json:"order"`
	Givens     int               `json:"givens"`
	Grid       sudoku.Grid       `json:"grid"`
	Given      []bool            `json:"given"`
	Notes      []sudoku.NoteMask `json:"notes"`
	EmptyCells int               `json:"empty_cells"`
	Solved     bool              `json:"solved"`
	StartedAt  int64             `json:"started_at"`
	EndedAt    *int64            `json:"ended_at,omitempty"`
}

func (s GameSession) MarshalJSON() ([]byte, error) {
	var endedAt *int64
	if !s.EndedAt.IsZero() {
		e := s.EndedAt.UnixMilli()
		endedAt = &e
	}
	return json.Marshal(GameSessionJSON{
		SessionId:  s.SessionId,
		Order:      s.State.Order,
		Givens:     s.State.Givens,
		Grid:       s.State.Cells,
		Given:      s.State.Given,
		Notes:      s.State.Notes,
		EmptyCells: s.State.EmptyCells(),
		Solved:     s.State.IsSolved(),
		StartedAt:  s.StartedAt.UnixMilli(),
		EndedAt:    endedAt,
	})
}

// finish stamps the end of a completed game; filing the win record is the
// handler's job.
func (s *GameSession) finish() {
	if s.EndedAt.IsZero() {
		s.EndedAt = time.Now().UTC()
	}
}
