package store

import (
	"testing"

	"github.com/gophergolf/scorecard/internal/models"
)

func TestTrackIconsLegacyGameAllPlaceholder(t *testing.T) {
	game := &models.Game{TrackCount: 5, PlaceName: "Irgendwo"} // no place reference

	icons := TrackIcons(game)
	if len(icons) != 5 {
		t.Fatalf("expected 5 icons, got %d", len(icons))
	}
	for n, icon := range icons {
		if icon != models.PlaceholderIcon {
			t.Errorf("track %d: icon = %q, want placeholder", n, icon)
		}
	}
	if HasTrackConfig(game) {
		t.Error("legacy game must not report a track config")
	}
}

func TestTrackIconsUnconfiguredPlace(t *testing.T) {
	game := &models.Game{
		TrackCount: 3,
		Place:      &models.Place{Name: "Leer", TrackCount: 3}, // no PlaceTrack rows
	}

	for n, icon := range TrackIcons(game) {
		if icon != models.PlaceholderIcon {
			t.Errorf("track %d: icon = %q, want placeholder", n, icon)
		}
	}
}

func TestTrackIconsCustomConfigWithFallback(t *testing.T) {
	windmill := models.TrackType{ID: 6, Name: "Windmühle", IconFilename: "windmill.png"}
	game := &models.Game{
		TrackCount: 3,
		Place: &models.Place{
			Name:       "Konfiguriert",
			TrackCount: 3,
			Tracks: []models.PlaceTrack{
				{TrackNumber: 2, TrackTypeID: windmill.ID, TrackType: windmill},
			},
		},
	}

	icons := TrackIcons(game)
	if icons[2] != "/static/track-icons/windmill.png" {
		t.Errorf("track 2: icon = %q, want windmill", icons[2])
	}
	// Numbers without an assignment fall back to the placeholder.
	for _, n := range []int{1, 3} {
		if icons[n] != models.PlaceholderIcon {
			t.Errorf("track %d: icon = %q, want placeholder", n, icons[n])
		}
	}
	if !HasTrackConfig(game) {
		t.Error("configured place should report a track config")
	}
}

func TestTrackIconsEndToEnd(t *testing.T) {
	s := newTestStore(t)
	game := createTestGame(t, s, "Anna")

	// The auto-created place was populated with the default type, whose icon
	// is the placeholder file.
	icons := TrackIcons(game)
	if len(icons) != game.TrackCount {
		t.Fatalf("expected %d icons, got %d", game.TrackCount, len(icons))
	}

	// Customize track 1 and re-read.
	var windmill models.TrackType
	if err := s.db.Where("name = ?", "Windmühle").First(&windmill).Error; err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetTrackType(*game.PlaceID, 1, windmill.ID); err != nil {
		t.Fatal(err)
	}

	game, err := s.GetGame(game.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got := TrackIcons(game)[1]; got != "/static/track-icons/windmill.png" {
		t.Errorf("track 1 icon = %q, want windmill", got)
	}
}
