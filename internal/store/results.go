package store

import (
	"sort"

	"github.com/gophergolf/scorecard/internal/models"
)

// PlayerResult is one player's standing in a finished (or in-progress) game.
type PlayerResult struct {
	PlayerID        uint        `json:"player_id"`
	Name            string      `json:"name"`
	Total           int         `json:"total"`
	Scores          map[int]int `json:"scores"`
	CompletedTracks int         `json:"completed_tracks"`
	IsWinner        bool        `json:"is_winner"`
	IsTie           bool        `json:"is_tie"`
}

// ComputeResults derives the standings for a game's players.
//
// Players are partitioned by total: a total above zero means "has recorded
// strokes", zero means "hasn't started" — never "won with a perfect zero".
// Among the scored players the minimum total wins; everyone sharing the
// minimum is a winner, and more than one winner means a tie (ties are
// reported, never broken). Ordering: scored players ascending by total, then
// unscored players in id order. Re-computed on every read; nothing here is
// persisted.
func ComputeResults(players []models.Player) []PlayerResult {
	scored := make([]PlayerResult, 0, len(players))
	unscored := make([]PlayerResult, 0)

	for _, p := range players {
		completed := 0
		for _, sc := range p.Scores {
			if sc.Value > 0 {
				completed++
			}
		}
		r := PlayerResult{
			PlayerID:        p.ID,
			Name:            p.Name,
			Total:           p.TotalScore(),
			Scores:          p.ScoreMap(),
			CompletedTracks: completed,
		}
		if r.Total > 0 {
			scored = append(scored, r)
		} else {
			unscored = append(unscored, r)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Total < scored[j].Total })
	sort.SliceStable(unscored, func(i, j int) bool { return unscored[i].PlayerID < unscored[j].PlayerID })

	if len(scored) > 0 {
		minTotal := scored[0].Total
		winners := 0
		for _, r := range scored {
			if r.Total == minTotal {
				winners++
			}
		}
		for i := range scored {
			if scored[i].Total == minTotal {
				scored[i].IsWinner = true
				scored[i].IsTie = winners > 1
			}
		}
	}

	return append(scored, unscored...)
}

// Results loads a game and computes its standings.
func (s *Store) Results(gameID uint) (*models.Game, []PlayerResult, error) {
	game, err := s.GetGame(gameID)
	if err != nil {
		return nil, nil, err
	}
	return game, ComputeResults(game.Players), nil
}
