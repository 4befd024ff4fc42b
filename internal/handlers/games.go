package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gophergolf/scorecard/internal/middleware"
	"github.com/gophergolf/scorecard/internal/store"
)

// SaveGameRequest is the JSON body for POST /save.
type SaveGameRequest struct {
	Date       string `json:"date"`
	Place      string `json:"place"`
	TrackCount int    `json:"track_count"`
	Players    []struct {
		Name string `json:"name"`
	} `json:"players"`
}

// SaveGame handles POST /save: create a round with its players and zeroed
// scores in one shot.
func SaveGame(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SaveGameRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "invalid request body",
			})
		}

		names := make([]string, 0, len(req.Players))
		for _, p := range req.Players {
			names = append(names, p.Name)
		}

		game, err := st.CreateGame(store.NewGame{
			Date:       req.Date,
			PlaceName:  req.Place,
			TrackCount: req.TrackCount,
			Players:    names,
		})
		if err != nil {
			return jsonError(c, err)
		}

		middleware.Logger(c).Info("game created",
			"game_id", game.ID, "place", game.Venue(),
			"players", len(game.Players), "tracks", game.TrackCount)

		return c.JSON(fiber.Map{
			"status":   "success",
			"game_id":  game.ID,
			"place_id": game.PlaceID,
		})
	}
}

// DeleteGame handles POST /delete_game/:id. The store removes the game's
// players and scores in the same transaction.
func DeleteGame(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return jsonError(c, err)
		}
		if err := st.DeleteGame(id); err != nil {
			return jsonError(c, err)
		}

		middleware.Logger(c).Info("game deleted", "game_id", id)
		return c.JSON(fiber.Map{"status": "success"})
	}
}
