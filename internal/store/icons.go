package store

import "github.com/gophergolf/scorecard/internal/models"

// TrackIcons maps every track number of a game (1..TrackCount) to a display
// icon path.
//
// Games whose place has a custom configuration resolve each number through the
// PlaceTrack → TrackType chain; numbers without an assignment, games at places
// with no configuration at all, and legacy games without a place reference all
// fall back to the fixed placeholder icon. Expects the game's Place (with
// Tracks and their TrackTypes) to be preloaded, as GetGame and ListGames do.
func TrackIcons(game *models.Game) map[int]string {
	icons := make(map[int]string, game.TrackCount)
	for n := 1; n <= game.TrackCount; n++ {
		icons[n] = models.PlaceholderIcon
	}

	if game.Place == nil || !game.Place.HasCustomConfig() {
		return icons
	}
	for _, pt := range game.Place.Tracks {
		if pt.TrackNumber >= 1 && pt.TrackNumber <= game.TrackCount {
			icons[pt.TrackNumber] = pt.TrackType.IconURL()
		}
	}
	return icons
}

// HasTrackConfig reports whether a game's place carries any custom track
// configuration. Derived, never stored.
func HasTrackConfig(game *models.Game) bool {
	return game.Place != nil && game.Place.HasCustomConfig()
}
