package store

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gophergolf/scorecard/internal/models"
)

// NewGame describes a round to be created: where, when, and who plays.
type NewGame struct {
	Date       string   // "YYYY-MM-DD"
	PlaceName  string   // free-text; resolved to a Place by find-or-create
	TrackCount int      // ignored when the named place already exists
	Players    []string // at least one non-empty name
}

// CreateGame records a new round as one atomic unit: the place resolution, the
// game row, its players, and a zeroed initial score per player per track all
// commit together or not at all.
//
// When the named place already exists, its stored track count overrides the
// requested one — every game at a named place shares one configuration.
func (s *Store) CreateGame(req NewGame) (*models.Game, error) {
	placeName := strings.TrimSpace(req.PlaceName)
	if placeName == "" {
		return nil, invalidInput("place is required")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, invalidInput("date must be in YYYY-MM-DD format")
	}
	if len(req.Players) == 0 {
		return nil, invalidInput("at least one player is required")
	}
	trackCount := req.TrackCount
	if trackCount == 0 {
		trackCount = models.DefaultTrackCount
	}
	if !validTrackCount(trackCount) {
		return nil, invalidInput("track_count must be between %d and %d", models.MinTrackCount, models.MaxTrackCount)
	}

	names := make([]string, 0, len(req.Players))
	for _, n := range req.Players {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, invalidInput("player name cannot be empty")
		}
		names = append(names, n)
	}

	var game models.Game
	err = s.db.Transaction(func(tx *gorm.DB) error {
		place, err := findOrCreatePlace(tx, placeName, trackCount)
		if err != nil {
			return err
		}
		// Existing place wins over the request's count.
		trackCount = place.TrackCount

		game = models.Game{
			Date:       date,
			PlaceName:  place.Name,
			PlaceID:    &place.ID,
			TrackCount: trackCount,
		}
		if err := tx.Create(&game).Error; err != nil {
			return err
		}

		for _, name := range names {
			player := models.Player{GameID: game.ID, Name: name}
			if err := tx.Create(&player).Error; err != nil {
				return err
			}

			scores := make([]models.Score, 0, trackCount)
			for track := 1; track <= trackCount; track++ {
				scores = append(scores, models.Score{PlayerID: player.ID, TrackNumber: track, Value: 0})
			}
			if err := tx.Create(&scores).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetGame(game.ID)
}

// GetGame loads a game with its place (and track assignments), players, and
// scores.
func (s *Store) GetGame(id uint) (*models.Game, error) {
	var game models.Game
	err := s.db.
		Preload("Place.Tracks.TrackType").
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("players.id ASC") }).
		Preload("Players.Scores", func(db *gorm.DB) *gorm.DB { return db.Order("scores.track ASC") }).
		First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "game", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// ListGames returns all games, newest first, loaded deeply enough for the
// history page (players with scores, place with track assignments).
func (s *Store) ListGames() ([]models.Game, error) {
	var games []models.Game
	err := s.db.
		Preload("Place.Tracks.TrackType").
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("players.id ASC") }).
		Preload("Players.Scores").
		Order("id DESC").
		Find(&games).Error
	return games, err
}

// DeleteGame removes a game together with all of its players and their scores.
// The cascade runs explicitly inside one transaction — no orphan row survives
// under any failure path, regardless of database-level FK settings.
func (s *Store) DeleteGame(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "game", ID: id}
			}
			return err
		}

		if err := tx.Where("player_id IN (?)",
			tx.Model(&models.Player{}).Select("id").Where("game_id = ?", id),
		).Delete(&models.Score{}).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", id).Delete(&models.Player{}).Error; err != nil {
			return err
		}
		return tx.Delete(&game).Error
	})
}

// MigrateLegacyGames attaches place references to games recorded before the
// places table existed, find-or-creating a Place from each game's free-text
// name. Runs once at startup; returns how many games were migrated.
func (s *Store) MigrateLegacyGames() (int, error) {
	migrated := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var legacy []models.Game
		if err := tx.Where("place_id IS NULL").Find(&legacy).Error; err != nil {
			return err
		}
		for i := range legacy {
			game := &legacy[i]
			place, err := findOrCreatePlace(tx, game.PlaceName, game.TrackCount)
			if err != nil {
				return err
			}
			game.PlaceID = &place.ID
			if err := tx.Model(game).Update("place_id", place.ID).Error; err != nil {
				return err
			}
			migrated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return migrated, nil
}
