package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gophergolf/scorecard/internal/middleware"
	"github.com/gophergolf/scorecard/internal/store"
)

// UpdateScoreRequest is the JSON body for POST /update_score. Pointers
// distinguish "field missing" from a legitimate zero value — 0 is a valid
// score.
type UpdateScoreRequest struct {
	PlayerID *uint `json:"player_id"`
	Track    *int  `json:"track"`
	Value    *int  `json:"value"`
}

// UpdateScore handles POST /update_score: upsert one stroke count and return
// the fresh totals for every player in the game.
func UpdateScore(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpdateScoreRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "invalid request body",
			})
		}
		if req.PlayerID == nil || req.Track == nil || req.Value == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "player_id, track, and value are required",
			})
		}

		totals, err := st.SetScore(*req.PlayerID, *req.Track, *req.Value)
		if err != nil {
			return jsonError(c, err)
		}

		middleware.Logger(c).Info("score updated",
			"player_id", *req.PlayerID, "track", *req.Track, "value", *req.Value)

		return c.JSON(fiber.Map{"status": "success", "totals": totals})
	}
}
