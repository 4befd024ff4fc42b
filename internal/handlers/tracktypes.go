package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gophergolf/scorecard/internal/store"
)

// TrackTypeResponse is the JSON shape of one catalog entry.
type TrackTypeResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	IconURL       string `json:"icon_url"`
	IconFilename  string `json:"icon_filename"`
	IsDefault     bool   `json:"is_default"`
	IsPlaceholder bool   `json:"is_placeholder"`
	SortOrder     int    `json:"sort_order"`
}

// ListTrackTypes handles GET /api/track-types, ordered by sort_order.
func ListTrackTypes(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types, err := st.ListTrackTypes()
		if err != nil {
			return jsonError(c, err)
		}

		out := make([]TrackTypeResponse, 0, len(types))
		for _, tt := range types {
			out = append(out, TrackTypeResponse{
				ID:            tt.ID,
				Name:          tt.Name,
				Description:   tt.Description,
				IconURL:       tt.IconURL(),
				IconFilename:  tt.IconFilename,
				IsDefault:     tt.IsDefault,
				IsPlaceholder: tt.IsPlaceholder,
				SortOrder:     tt.SortOrder,
			})
		}
		return c.JSON(fiber.Map{"status": "success", "track_types": out, "count": len(out)})
	}
}
