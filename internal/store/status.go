package store

import (
	"context"

	"github.com/gophergolf/scorecard/internal/models"
)

// Status is the health probe's view of the persistence layer. It distinguishes
// an unreachable database from one that is reachable but missing tables, and
// carries row counts when everything is in place.
type Status struct {
	Connected   bool
	TablesExist bool
	Games       int64
	Places      int64
	TrackTypes  int64
	Players     int64
	Scores      int64
}

// Healthy reports whether the store can serve requests.
func (st Status) Healthy() bool {
	return st.Connected && st.TablesExist
}

// CheckStatus probes the database. Re-derived on every call — the probe never
// caches, so it reflects the store's state right now.
func (s *Store) CheckStatus(ctx context.Context) Status {
	st := Status{}

	db := s.db.WithContext(ctx)
	if err := db.Exec("SELECT 1").Error; err != nil {
		return st
	}
	st.Connected = true

	m := db.Migrator()
	for _, model := range models.All() {
		if !m.HasTable(model) {
			return st
		}
	}
	st.TablesExist = true

	// Best effort: a count failing after the table checks passed is unusual
	// enough to just report zeros.
	db.Model(&models.Game{}).Count(&st.Games)
	db.Model(&models.Place{}).Count(&st.Places)
	db.Model(&models.TrackType{}).Count(&st.TrackTypes)
	db.Model(&models.Player{}).Count(&st.Players)
	db.Model(&models.Score{}).Count(&st.Scores)
	return st
}

// Stats aggregates entity counts for the settings page.
type Stats struct {
	Places     int64 `json:"places_count"`
	TrackTypes int64 `json:"track_types_count"`
	Games      int64 `json:"games_count"`
	Players    int64 `json:"players_count"`
	Scores     int64 `json:"scores_count"`
}

// CollectStats counts every entity kind.
func (s *Store) CollectStats() (Stats, error) {
	var st Stats
	for _, c := range []struct {
		model any
		dst   *int64
	}{
		{&models.Place{}, &st.Places},
		{&models.TrackType{}, &st.TrackTypes},
		{&models.Game{}, &st.Games},
		{&models.Player{}, &st.Players},
		{&models.Score{}, &st.Scores},
	} {
		if err := s.db.Model(c.model).Count(c.dst).Error; err != nil {
			return st, err
		}
	}
	return st, nil
}
