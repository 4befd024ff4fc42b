// Package models defines the data structures that map to database tables.
// GORM uses these structs to generate SQL and map rows back to Go values; the
// struct field tags tell it about column types, constraints, and relationships.
//
// The data model represents a minigolf scorekeeping tool:
//   - A Place is a physical course with a fixed number of tracks.
//   - A TrackType is a reusable icon/category from a small seeded catalog.
//   - A PlaceTrack assigns a TrackType to one track number at one Place.
//   - A Game is one played round; it owns Players, which own Scores.
//
// Place and TrackType are long-lived configuration; Game/Player/Score are
// created together when a round starts and deleted together when it's removed.
package models

import "time"

// Track count and score bounds shared by validation and the SQL check
// constraints. A "track" is one lane/hole on the course.
const (
	MinTrackCount = 1
	MaxTrackCount = 50

	MinScoreValue = 0 // 0 is stored as a real value ("no strokes recorded yet")
	MaxScoreValue = 20

	DefaultTrackCount = 18
)

// PlaceholderIcon is served for any track whose type is unknown — places
// without a custom configuration, legacy games without a place reference, and
// track numbers an operator never customized.
const PlaceholderIcon = "/static/track-icons/bahn_placeholder.png"

// Place is a minigolf course. The name is unique; two courses with the same
// name are the same course as far as the app is concerned.
//
// Whether a place has a custom track configuration is always derived from the
// existence of PlaceTrack rows — it is deliberately not stored as a column, so
// there is a single source of truth.
type Place struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"size:100;not null;uniqueIndex"`
	TrackCount int       `gorm:"not null;default:18;check:track_count >= 1 AND track_count <= 50"`
	IsDefault  bool      `gorm:"not null;default:false;index"` // pre-selected / listed first in the UI
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Games  []Game       `gorm:"foreignKey:PlaceID"`
	Tracks []PlaceTrack `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
}

// HasCustomConfig reports whether any per-track type assignments exist.
// Only meaningful when Tracks was preloaded.
func (p Place) HasCustomConfig() bool {
	return len(p.Tracks) > 0
}

// TrackType is one entry in the shared catalog of track categories
// ("Standard", "Kurve Links", "Brücke", ...). Seeded once at first startup and
// never deleted by normal flows.
type TrackType struct {
	ID            uint      `gorm:"primaryKey"`
	Name          string    `gorm:"size:50;not null;uniqueIndex"`
	Description   string    `gorm:"size:200"`
	IconFilename  string    `gorm:"size:100;not null"`
	IsDefault     bool      `gorm:"not null;default:false"` // the type used to auto-populate new places
	IsPlaceholder bool      `gorm:"not null;default:false"` // the fallback "unknown" type
	SortOrder     int       `gorm:"not null;default:0"`     // display ordering, ascending
	CreatedAt     time.Time
}

// IconURL returns the served path of this type's icon.
func (tt TrackType) IconURL() string {
	return "/static/track-icons/" + tt.IconFilename
}

// PlaceTrack assigns a TrackType to one (place, track number) pair. Rows for
// the catalog default type are created with the place; absence means "use the
// default/fallback type". At most one row exists per pair.
type PlaceTrack struct {
	ID          uint `gorm:"primaryKey"`
	PlaceID     uint `gorm:"not null;uniqueIndex:idx_place_track_number"`
	TrackNumber int  `gorm:"not null;uniqueIndex:idx_place_track_number;check:track_number >= 1 AND track_number <= 50"`
	TrackTypeID uint `gorm:"not null"`
	CreatedAt   time.Time

	TrackType TrackType `gorm:"foreignKey:TrackTypeID"`
}

// Game is one played round. TrackCount is a snapshot taken at creation time:
// changing a Place's track count later never retroactively changes games that
// were already played.
//
// PlaceName plus the nullable PlaceID exist because old rounds predate the
// Place table ("legacy" games). Callers never consult the two fields directly;
// Venue resolves them once.
type Game struct {
	ID         uint      `gorm:"primaryKey"`
	Date       time.Time `gorm:"type:date;not null;index"`
	PlaceName  string    `gorm:"column:place;size:100;not null;index"`
	PlaceID    *uint     `gorm:"index"`
	TrackCount int       `gorm:"not null;default:18;check:track_count >= 1 AND track_count <= 50"`
	CreatedAt  time.Time

	Place   *Place   `gorm:"foreignKey:PlaceID"`
	Players []Player `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// Venue returns the display name of where this game was played: the referenced
// Place's name when the reference exists (and was preloaded), otherwise the
// legacy free-text name.
func (g Game) Venue() string {
	if g.Place != nil {
		return g.Place.Name
	}
	return g.PlaceName
}

// DateString formats the game date for forms and JSON payloads.
func (g Game) DateString() string {
	return g.Date.Format("2006-01-02")
}

// Player is one participant in exactly one Game.
type Player struct {
	ID        uint   `gorm:"primaryKey"`
	GameID    uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	CreatedAt time.Time

	Scores []Score `gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

// TotalScore sums the player's stroke counts. Only meaningful when Scores was
// preloaded. Totals are always derived — never stored.
func (p Player) TotalScore() int {
	total := 0
	for _, s := range p.Scores {
		total += s.Value
	}
	return total
}

// ScoreMap returns the player's scores keyed by track number.
func (p Player) ScoreMap() map[int]int {
	m := make(map[int]int, len(p.Scores))
	for _, s := range p.Scores {
		m[s.TrackNumber] = s.Value
	}
	return m
}

// Score is one player's stroke count on one track. At most one row exists per
// (player, track number); updates overwrite in place.
type Score struct {
	ID          uint `gorm:"primaryKey"`
	PlayerID    uint `gorm:"not null;uniqueIndex:idx_player_track"`
	TrackNumber int  `gorm:"column:track;not null;uniqueIndex:idx_player_track;check:track >= 1 AND track <= 50"`
	Value       int  `gorm:"not null;default:0;check:value >= 0 AND value <= 20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// All lists every model for schema setup (AutoMigrate in tests; the real
// server applies the SQL files under migrations/).
func All() []any {
	return []any{&Place{}, &TrackType{}, &PlaceTrack{}, &Game{}, &Player{}, &Score{}}
}
