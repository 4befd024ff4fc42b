package database

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/gophergolf/scorecard/internal/models"
)

// defaultTrackTypes is the catalog seeded at first startup. Exactly one entry
// is the default (used to auto-populate new places) and exactly one is the
// placeholder (the fallback for unknown track types).
var defaultTrackTypes = []models.TrackType{
	{Name: "Standard", Description: "Standard Minigolf Bahn", IconFilename: "bahn_placeholder.png", IsDefault: true, SortOrder: 1},
	{Name: "Kurve Links", Description: "Linkskurve", IconFilename: "bahn_kurve_links.png", SortOrder: 2},
	{Name: "Kurve Rechts", Description: "Rechtskurve", IconFilename: "bahn_kurve_rechts.png", SortOrder: 3},
	{Name: "Hindernis", Description: "Bahn mit Hindernis", IconFilename: "bahn_hindernis.png", SortOrder: 4},
	{Name: "Brücke", Description: "Brücken-Bahn", IconFilename: "bahn_bruecke.png", SortOrder: 5},
	{Name: "Windmühle", Description: "Bahn mit Windmühle", IconFilename: "windmill.png", SortOrder: 6},
	{Name: "Rampe", Description: "Rampen-Bahn", IconFilename: "ramp.png", SortOrder: 7},
	{Name: "Tunnel", Description: "Tunnel-Bahn", IconFilename: "tunnel.png", SortOrder: 8},
	{Name: "Unbekannt", Description: "Platzhalter für unbekannte Bahn-Typen", IconFilename: "bahn_placeholder.png", IsPlaceholder: true, SortOrder: 99},
}

// demoPlaces are only seeded in development when SEED_DEMO_PLACES is set.
var demoPlaces = []models.Place{
	{Name: "Bülach", TrackCount: 18, IsDefault: true},
	{Name: "Zürich Minigolf", TrackCount: 18, IsDefault: true},
	{Name: "Winterthur Adventure Golf", TrackCount: 14},
	{Name: "Rapperswil Minigolf", TrackCount: 18},
}

// Seed inserts the track type catalog, and optionally a handful of demo
// places. Idempotent: existing rows (matched by name) are left untouched, so
// running on every startup never duplicates or overwrites anything.
func Seed(db *gorm.DB, includeDemoPlaces bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, tt := range defaultTrackTypes {
			var count int64
			if err := tx.Model(&models.TrackType{}).Where("name = ?", tt.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			tt := tt
			if err := tx.Create(&tt).Error; err != nil {
				return err
			}
		}

		if !includeDemoPlaces {
			return nil
		}
		for _, p := range demoPlaces {
			var count int64
			if err := tx.Model(&models.Place{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}
			p := p
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			slog.Info("seeded demo place", "name", p.Name, "tracks", p.TrackCount)
		}
		return nil
	})
}
