package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gophergolf/scorecard/internal/models"
)

// ensureDefaultTracks populates the place's track configuration with the
// catalog's default type (first-by-sort-order when none is marked default),
// one row per track number. Idempotent: numbers that already have a row —
// including previously customized ones — are left alone, so running twice
// never duplicates or overwrites anything. A completely empty catalog makes
// this a no-op; the place simply renders with placeholder icons.
func ensureDefaultTracks(tx *gorm.DB, place *models.Place) error {
	var defaultType models.TrackType
	err := tx.Where("is_default = ?", true).First(&defaultType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = tx.Order("sort_order ASC").First(&defaultType).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	var existing []models.PlaceTrack
	if err := tx.Where("place_id = ?", place.ID).Find(&existing).Error; err != nil {
		return err
	}
	taken := make(map[int]bool, len(existing))
	for _, pt := range existing {
		taken[pt.TrackNumber] = true
	}

	var missing []models.PlaceTrack
	for n := 1; n <= place.TrackCount; n++ {
		if taken[n] {
			continue
		}
		missing = append(missing, models.PlaceTrack{
			PlaceID:     place.ID,
			TrackNumber: n,
			TrackTypeID: defaultType.ID,
		})
	}
	if len(missing) == 0 {
		return nil
	}
	return tx.Create(&missing).Error
}

// EnsureDefaultTracks is the exported, self-transacting form used by the
// legacy backfill and by operators re-running setup.
func (s *Store) EnsureDefaultTracks(placeID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var place models.Place
		if err := tx.First(&place, placeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "place", ID: placeID}
			}
			return err
		}
		return ensureDefaultTracks(tx, &place)
	})
}

// SetTrackType assigns a track type to one track number at a place. Upsert on
// (place_id, track_number): an existing assignment is overwritten, otherwise a
// row is inserted. Idempotent and safe to retry.
func (s *Store) SetTrackType(placeID uint, trackNumber int, trackTypeID uint) (*models.PlaceTrack, error) {
	var pt models.PlaceTrack
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var place models.Place
		if err := tx.First(&place, placeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "place", ID: placeID}
			}
			return err
		}
		if trackNumber < 1 || trackNumber > place.TrackCount {
			return invalidInput("track_number must be between 1 and %d", place.TrackCount)
		}

		var trackType models.TrackType
		if err := tx.First(&trackType, trackTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "track type", ID: trackTypeID}
			}
			return err
		}

		pt = models.PlaceTrack{PlaceID: placeID, TrackNumber: trackNumber, TrackTypeID: trackTypeID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}, {Name: "track_number"}},
			DoUpdates: clause.Assignments(map[string]any{"track_type_id": trackTypeID}),
		}).Create(&pt).Error; err != nil {
			return err
		}

		pt.TrackType = trackType
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// TrackConfigUpdate is one entry of a bulk configuration write.
type TrackConfigUpdate struct {
	TrackNumber int  `json:"track_number"`
	TrackTypeID uint `json:"track_type_id"`
}

// ApplyTrackConfig upserts a whole set of track assignments for a place in one
// transaction and returns how many entries were applied. Entries with an
// out-of-range track number or an unknown track type are skipped rather than
// failing the batch, matching the tolerant behaviour the settings UI expects.
func (s *Store) ApplyTrackConfig(placeID uint, updates []TrackConfigUpdate) (int, error) {
	applied := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var place models.Place
		if err := tx.First(&place, placeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "place", ID: placeID}
			}
			return err
		}

		for _, u := range updates {
			if u.TrackNumber < 1 || u.TrackNumber > place.TrackCount || u.TrackTypeID == 0 {
				continue
			}
			var count int64
			if err := tx.Model(&models.TrackType{}).Where("id = ?", u.TrackTypeID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				continue
			}

			pt := models.PlaceTrack{PlaceID: placeID, TrackNumber: u.TrackNumber, TrackTypeID: u.TrackTypeID}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "place_id"}, {Name: "track_number"}},
				DoUpdates: clause.Assignments(map[string]any{"track_type_id": u.TrackTypeID}),
			}).Create(&pt).Error; err != nil {
				return err
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return applied, nil
}

// TrackConfigEntry is the resolved view of one track at a place: either its
// explicit assignment or the catalog default standing in for a missing row.
type TrackConfigEntry struct {
	TrackNumber   int    `json:"track_number"`
	TrackTypeID   uint   `json:"track_type_id,omitempty"`
	TrackTypeName string `json:"track_type_name"`
	IconURL       string `json:"icon_url"`
}

// TrackConfig returns the full resolved configuration for a place, one entry
// per track number 1..TrackCount.
func (s *Store) TrackConfig(placeID uint) (*models.Place, []TrackConfigEntry, error) {
	place, err := s.GetPlace(placeID)
	if err != nil {
		return nil, nil, err
	}

	assigned := make(map[int]models.PlaceTrack, len(place.Tracks))
	for _, pt := range place.Tracks {
		assigned[pt.TrackNumber] = pt
	}

	var defaultType *models.TrackType
	var dt models.TrackType
	if err := s.db.Where("is_default = ?", true).First(&dt).Error; err == nil {
		defaultType = &dt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	entries := make([]TrackConfigEntry, 0, place.TrackCount)
	for n := 1; n <= place.TrackCount; n++ {
		if pt, ok := assigned[n]; ok {
			entries = append(entries, TrackConfigEntry{
				TrackNumber:   n,
				TrackTypeID:   pt.TrackTypeID,
				TrackTypeName: pt.TrackType.Name,
				IconURL:       pt.TrackType.IconURL(),
			})
			continue
		}
		entry := TrackConfigEntry{TrackNumber: n, TrackTypeName: "Standard", IconURL: models.PlaceholderIcon}
		if defaultType != nil {
			entry.TrackTypeID = defaultType.ID
			entry.TrackTypeName = defaultType.Name
			entry.IconURL = defaultType.IconURL()
		}
		entries = append(entries, entry)
	}
	return place, entries, nil
}

// ListTrackTypes returns the catalog in display order.
func (s *Store) ListTrackTypes() ([]models.TrackType, error) {
	var types []models.TrackType
	err := s.db.Order("sort_order ASC").Order("name ASC").Find(&types).Error
	return types, err
}
