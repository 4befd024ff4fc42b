package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gophergolf/scorecard/internal/models"
)

// PlaceInfo is a Place plus its derived custom-configuration flag.
type PlaceInfo struct {
	models.Place
	HasCustomConfig bool
}

// CreatePlace adds a new course. The name must be unique (exact,
// case-sensitive match) and the track count within bounds; on success the
// place's default track configuration is populated in the same transaction.
func (s *Store) CreatePlace(name string, trackCount int, isDefault bool) (*models.Place, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("name is required")
	}
	if !validTrackCount(trackCount) {
		return nil, invalidInput("track_count must be between %d and %d", models.MinTrackCount, models.MaxTrackCount)
	}

	place := &models.Place{Name: name, TrackCount: trackCount, IsDefault: isDefault}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Place{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEntity
		}
		if err := tx.Create(place).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateEntity
			}
			return err
		}
		return ensureDefaultTracks(tx, place)
	})
	if err != nil {
		return nil, err
	}
	return place, nil
}

// findOrCreatePlace resolves a free-text place name to a row, creating the
// place (with its default tracks) when it doesn't exist yet. When the place
// already exists its stored track count wins over the requested one, so every
// game at a named place shares one configuration.
//
// The insert uses ON CONFLICT DO NOTHING followed by a re-select: two requests
// racing to create the same name both end up with the surviving row instead of
// one of them surfacing a raw integrity error.
func findOrCreatePlace(tx *gorm.DB, name string, trackCount int) (*models.Place, error) {
	var place models.Place
	err := tx.Where("name = ?", name).First(&place).Error
	if err == nil {
		return &place, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	place = models.Place{Name: name, TrackCount: trackCount}
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&place)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race — someone else inserted it; use their row.
		if err := tx.Where("name = ?", name).First(&place).Error; err != nil {
			return nil, err
		}
		return &place, nil
	}
	if err := ensureDefaultTracks(tx, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

// GetPlace loads one place with its track assignments.
func (s *Store) GetPlace(id uint) (*models.Place, error) {
	var place models.Place
	err := s.db.Preload("Tracks.TrackType").First(&place, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "place", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// ListPlaces returns all places, defaults first then alphabetically, each with
// its derived HasCustomConfig flag.
func (s *Store) ListPlaces() ([]PlaceInfo, error) {
	var places []models.Place
	err := s.db.Preload("Tracks").
		Order("is_default DESC").Order("name ASC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}

	infos := make([]PlaceInfo, 0, len(places))
	for _, p := range places {
		infos = append(infos, PlaceInfo{Place: p, HasCustomConfig: p.HasCustomConfig()})
	}
	return infos, nil
}

// PlacePatch carries optional field updates for UpdatePlace; nil means leave
// the field unchanged.
type PlacePatch struct {
	Name       *string
	TrackCount *int
	IsDefault  *bool
}

// UpdatePlace applies a partial update. Note that shrinking or growing the
// track count never touches games already played there — their counts are
// snapshots.
func (s *Store) UpdatePlace(id uint, patch PlacePatch) (*models.Place, error) {
	var place models.Place
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&place, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "place", ID: id}
			}
			return err
		}

		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return invalidInput("name is required")
			}
			place.Name = name
		}
		if patch.TrackCount != nil {
			if !validTrackCount(*patch.TrackCount) {
				return invalidInput("track_count must be between %d and %d", models.MinTrackCount, models.MaxTrackCount)
			}
			place.TrackCount = *patch.TrackCount
		}
		if patch.IsDefault != nil {
			place.IsDefault = *patch.IsDefault
		}

		if err := tx.Save(&place).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateEntity
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// DeletePlace removes a place and its track assignments. Refused with an
// InUseError (reporting the count) while any game references the place;
// nothing is deleted in that case.
func (s *Store) DeletePlace(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var place models.Place
		if err := tx.First(&place, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "place", ID: id}
			}
			return err
		}

		var gameCount int64
		if err := tx.Model(&models.Game{}).Where("place_id = ?", id).Count(&gameCount).Error; err != nil {
			return err
		}
		if gameCount > 0 {
			return &InUseError{Entity: "place", By: "games", Count: gameCount}
		}

		if err := tx.Where("place_id = ?", id).Delete(&models.PlaceTrack{}).Error; err != nil {
			return err
		}
		return tx.Delete(&place).Error
	})
}
