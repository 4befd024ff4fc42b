package store

import (
	"testing"

	"github.com/gophergolf/scorecard/internal/models"
)

// playerWithTotal builds an in-memory player whose scores sum to the given
// total, spread over the first tracks one stroke at a time plus a remainder.
func playerWithTotal(id uint, name string, total int) models.Player {
	p := models.Player{ID: id, Name: name}
	if total > 0 {
		p.Scores = []models.Score{{PlayerID: id, TrackNumber: 1, Value: total}}
	}
	return p
}

func TestComputeResultsWinnerAndTie(t *testing.T) {
	// Totals [3,5,3,0]: the two 3s win as a tie, the 0 is unscored.
	players := []models.Player{
		playerWithTotal(1, "Anna", 3),
		playerWithTotal(2, "Ben", 5),
		playerWithTotal(3, "Carla", 3),
		playerWithTotal(4, "Dani", 0),
	}

	results := ComputeResults(players)
	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}

	winners := map[string]bool{}
	for _, r := range results {
		if r.IsWinner {
			winners[r.Name] = r.IsTie
		}
	}
	if len(winners) != 2 {
		t.Fatalf("expected 2 winners, got %d (%v)", len(winners), winners)
	}
	for _, name := range []string{"Anna", "Carla"} {
		isTie, ok := winners[name]
		if !ok {
			t.Errorf("%s should be a winner", name)
		}
		if !isTie {
			t.Errorf("%s should be flagged as tied", name)
		}
	}

	// The unscored player sorts last and is never a winner.
	last := results[len(results)-1]
	if last.Name != "Dani" || last.IsWinner {
		t.Errorf("unscored player misplaced or marked winner: %+v", last)
	}
}

func TestComputeResultsSingleWinnerNoTie(t *testing.T) {
	players := []models.Player{
		playerWithTotal(1, "Anna", 7),
		playerWithTotal(2, "Ben", 4),
	}

	results := ComputeResults(players)
	if results[0].Name != "Ben" || !results[0].IsWinner || results[0].IsTie {
		t.Errorf("expected Ben as sole untied winner, got %+v", results[0])
	}
	if results[1].IsWinner {
		t.Errorf("Anna should not win: %+v", results[1])
	}
}

func TestComputeResultsOrdering(t *testing.T) {
	players := []models.Player{
		playerWithTotal(1, "Anna", 0),
		playerWithTotal(2, "Ben", 9),
		playerWithTotal(3, "Carla", 0),
		playerWithTotal(4, "Dani", 2),
	}

	results := ComputeResults(players)
	got := make([]string, len(results))
	for i, r := range results {
		got[i] = r.Name
	}

	// Scored ascending by total, then unscored in id order.
	want := []string{"Dani", "Ben", "Anna", "Carla"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestComputeResultsAllUnscored(t *testing.T) {
	players := []models.Player{
		playerWithTotal(1, "Anna", 0),
		playerWithTotal(2, "Ben", 0),
	}

	for _, r := range ComputeResults(players) {
		if r.IsWinner || r.IsTie {
			t.Errorf("no winner should exist in an unscored game: %+v", r)
		}
	}
}

func TestComputeResultsEmpty(t *testing.T) {
	if results := ComputeResults(nil); len(results) != 0 {
		t.Errorf("expected no results for no players, got %d", len(results))
	}
}

func TestResultsFromStore(t *testing.T) {
	s := newTestStore(t)
	game := createTestGame(t, s, "Anna", "Ben")

	if _, err := s.SetScore(game.Players[0].ID, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetScore(game.Players[1].ID, 1, 4); err != nil {
		t.Fatal(err)
	}

	_, results, err := s.Results(game.ID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if results[0].Name != "Anna" || !results[0].IsWinner {
		t.Errorf("expected Anna to lead, got %+v", results[0])
	}
	if results[0].CompletedTracks != 1 {
		t.Errorf("completed tracks = %d, want 1", results[0].CompletedTracks)
	}
}
