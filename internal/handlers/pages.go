package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gophergolf/scorecard/internal/store"
)

// The page handlers render the server-side HTML views. They are browser-facing
// and use htmlError instead of the JSON contract.

// Index handles GET /: the new-game form, with known places offered for
// completion.
func Index(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		places, err := st.ListPlaces()
		if err != nil {
			return htmlError(c, err)
		}
		return c.Render("index", fiber.Map{
			"Title":  "Neues Spiel",
			"Places": places,
			"Today":  time.Now().Format("2006-01-02"),
		}, "layout")
	}
}

// scoreCell is one input field in the score grid.
type scoreCell struct {
	PlayerID uint
	Track    int
	Value    int
}

// scoreRow is one track's row: its icon plus a cell per player.
type scoreRow struct {
	Number int
	Icon   string
	Cells  []scoreCell
}

// ScorePage handles GET /score/:id: the per-player, per-track input grid.
func ScorePage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return htmlError(c, &store.NotFoundError{Entity: "game"})
		}
		game, err := st.GetGame(id)
		if err != nil {
			return htmlError(c, err)
		}

		icons := store.TrackIcons(game)
		scoreMaps := make([]map[int]int, len(game.Players))
		for i, p := range game.Players {
			scoreMaps[i] = p.ScoreMap()
		}

		rows := make([]scoreRow, 0, game.TrackCount)
		for n := 1; n <= game.TrackCount; n++ {
			row := scoreRow{Number: n, Icon: icons[n]}
			for i, p := range game.Players {
				row.Cells = append(row.Cells, scoreCell{
					PlayerID: p.ID,
					Track:    n,
					Value:    scoreMaps[i][n],
				})
			}
			rows = append(rows, row)
		}

		return c.Render("score", fiber.Map{
			"Title":   game.Venue(),
			"Game":    game,
			"Players": game.Players,
			"Tracks":  rows,
		}, "layout")
	}
}

// historyPlayer and historyGame are the view models for the history list.
type historyPlayer struct {
	Name  string
	Total int
}

type historyGame struct {
	ID         uint
	Venue      string
	Date       string
	TrackCount int
	Players    []historyPlayer
	Icons      []string // ordered by track number
}

// HistoryPage handles GET /history: every game, newest first, with totals and
// track icons.
func HistoryPage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		games, err := st.ListGames()
		if err != nil {
			return htmlError(c, err)
		}

		view := make([]historyGame, 0, len(games))
		for i := range games {
			g := &games[i]
			icons := store.TrackIcons(g)
			ordered := make([]string, 0, g.TrackCount)
			for n := 1; n <= g.TrackCount; n++ {
				ordered = append(ordered, icons[n])
			}

			players := make([]historyPlayer, 0, len(g.Players))
			for _, p := range g.Players {
				players = append(players, historyPlayer{Name: p.Name, Total: p.TotalScore()})
			}

			view = append(view, historyGame{
				ID:         g.ID,
				Venue:      g.Venue(),
				Date:       g.DateString(),
				TrackCount: g.TrackCount,
				Players:    players,
				Icons:      ordered,
			})
		}

		return c.Render("history", fiber.Map{
			"Title": "Verlauf",
			"Games": view,
		}, "layout")
	}
}

// ResultsPage handles GET /results/:id: the sorted standings with winner and
// tie flags.
func ResultsPage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return htmlError(c, &store.NotFoundError{Entity: "game"})
		}
		game, results, err := st.Results(id)
		if err != nil {
			return htmlError(c, err)
		}
		return c.Render("results", fiber.Map{
			"Title":   "Ergebnis",
			"Game":    game,
			"Results": results,
		}, "layout")
	}
}

// SettingsPage handles GET /settings: entity counts, places, and the track
// type catalog.
func SettingsPage(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := st.CollectStats()
		if err != nil {
			return htmlError(c, err)
		}
		places, err := st.ListPlaces()
		if err != nil {
			return htmlError(c, err)
		}
		types, err := st.ListTrackTypes()
		if err != nil {
			return htmlError(c, err)
		}
		return c.Render("settings", fiber.Map{
			"Title":      "Einstellungen",
			"Stats":      stats,
			"Places":     places,
			"TrackTypes": types,
		}, "layout")
	}
}
