package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gophergolf/scorecard/internal/models"
)

// SetScore records a player's stroke count for one track: an existing row for
// (player, track) is overwritten, otherwise one is inserted. Idempotent and
// safe to retry. Zero is a stored value — "no strokes recorded yet" — not a
// delete.
//
// Returns the fresh totals of every player in the same game, so the score grid
// can update all columns from one response.
func (s *Store) SetScore(playerID uint, trackNumber, value int) (map[uint]int, error) {
	if value < models.MinScoreValue || value > models.MaxScoreValue {
		return nil, invalidInput("value must be between %d and %d", models.MinScoreValue, models.MaxScoreValue)
	}

	var gameID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var player models.Player
		if err := tx.First(&player, playerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "player", ID: playerID}
			}
			return err
		}

		var game models.Game
		if err := tx.First(&game, player.GameID).Error; err != nil {
			return err
		}
		if trackNumber < 1 || trackNumber > game.TrackCount {
			return invalidInput("track must be between 1 and %d", game.TrackCount)
		}
		gameID = game.ID

		score := models.Score{PlayerID: playerID, TrackNumber: trackNumber, Value: value}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "track"}},
			DoUpdates: clause.Assignments(map[string]any{"value": value, "updated_at": time.Now()}),
		}).Create(&score).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GameTotals(gameID)
}

// GameTotals computes the current total per player in a game. Always derived
// with SUM over the stored scores — totals are never cached or persisted, so
// they cannot go stale. Players with no scores yet total 0.
func (s *Store) GameTotals(gameID uint) (map[uint]int, error) {
	type row struct {
		ID    uint
		Total int
	}
	var rows []row
	err := s.db.Table("players").
		Select("players.id AS id, COALESCE(SUM(scores.value), 0) AS total").
		Joins("LEFT JOIN scores ON scores.player_id = players.id").
		Where("players.game_id = ?", gameID).
		Group("players.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]int, len(rows))
	for _, r := range rows {
		totals[r.ID] = r.Total
	}
	return totals, nil
}
