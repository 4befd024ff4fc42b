package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gophergolf/scorecard/internal/middleware"
	"github.com/gophergolf/scorecard/internal/store"
)

// PlaceResponse is the JSON shape of one place, including the derived
// custom-configuration flag.
type PlaceResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	TrackCount      int    `json:"track_count"`
	IsDefault       bool   `json:"is_default"`
	HasCustomConfig bool   `json:"has_custom_config"`
}

func placeResponse(p store.PlaceInfo) PlaceResponse {
	return PlaceResponse{
		ID:              p.ID,
		Name:            p.Name,
		TrackCount:      p.TrackCount,
		IsDefault:       p.IsDefault,
		HasCustomConfig: p.HasCustomConfig,
	}
}

// ListPlaces handles GET /api/places.
func ListPlaces(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		places, err := st.ListPlaces()
		if err != nil {
			return jsonError(c, err)
		}
		out := make([]PlaceResponse, 0, len(places))
		for _, p := range places {
			out = append(out, placeResponse(p))
		}
		return c.JSON(fiber.Map{"status": "success", "places": out, "count": len(out)})
	}
}

// GetPlace handles GET /api/places/:id.
func GetPlace(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return jsonError(c, err)
		}
		place, err := st.GetPlace(id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(fiber.Map{"status": "success", "place": PlaceResponse{
			ID:              place.ID,
			Name:            place.Name,
			TrackCount:      place.TrackCount,
			IsDefault:       place.IsDefault,
			HasCustomConfig: place.HasCustomConfig(),
		}})
	}
}

// CreatePlaceRequest is the JSON body for POST /api/places.
type CreatePlaceRequest struct {
	Name       string `json:"name"`
	TrackCount int    `json:"track_count"`
	IsDefault  bool   `json:"is_default"`
}

// CreatePlace handles POST /api/places.
func CreatePlace(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreatePlaceRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "invalid request body",
			})
		}
		if req.TrackCount == 0 {
			req.TrackCount = 18
		}

		place, err := st.CreatePlace(req.Name, req.TrackCount, req.IsDefault)
		if err != nil {
			return jsonError(c, err)
		}

		middleware.Logger(c).Info("place created", "place", place.Name, "tracks", place.TrackCount)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "place_id": place.ID})
	}
}

// UpdatePlaceRequest is the JSON body for PUT /api/places/:id. All fields are
// optional; only the ones present are changed.
type UpdatePlaceRequest struct {
	Name       *string `json:"name"`
	TrackCount *int    `json:"track_count"`
	IsDefault  *bool   `json:"is_default"`
}

// UpdatePlace handles PUT /api/places/:id.
func UpdatePlace(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return jsonError(c, err)
		}
		var req UpdatePlaceRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "invalid request body",
			})
		}

		place, err := st.UpdatePlace(id, store.PlacePatch{
			Name:       req.Name,
			TrackCount: req.TrackCount,
			IsDefault:  req.IsDefault,
		})
		if err != nil {
			return jsonError(c, err)
		}

		middleware.Logger(c).Info("place updated", "place", place.Name)
		return c.JSON(fiber.Map{"status": "success"})
	}
}

// DeletePlace handles DELETE /api/places/:id. Refused while games still
// reference the place.
func DeletePlace(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return jsonError(c, err)
		}
		if err := st.DeletePlace(id); err != nil {
			return jsonError(c, err)
		}

		middleware.Logger(c).Info("place deleted", "place_id", id)
		return c.JSON(fiber.Map{"status": "success"})
	}
}

// GetTrackConfig handles GET /api/places/:id/tracks: the fully resolved
// per-track configuration, defaults filled in for unassigned numbers.
func GetTrackConfig(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return jsonError(c, err)
		}
		place, entries, err := st.TrackConfig(id)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(fiber.Map{
			"status": "success",
			"place": fiber.Map{
				"id":          place.ID,
				"name":        place.Name,
				"track_count": place.TrackCount,
			},
			"track_config": entries,
		})
	}
}

// UpdateTrackConfigRequest is the JSON body for PUT /api/places/:id/tracks.
type UpdateTrackConfigRequest struct {
	TrackConfig []store.TrackConfigUpdate `json:"track_config"`
}

// UpdateTrackConfig handles the bulk PUT /api/places/:id/tracks.
func UpdateTrackConfig(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return jsonError(c, err)
		}
		var req UpdateTrackConfigRequest
		if err := c.BodyParser(&req); err != nil || req.TrackConfig == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "track_config required",
			})
		}

		applied, err := st.ApplyTrackConfig(id, req.TrackConfig)
		if err != nil {
			return jsonError(c, err)
		}

		middleware.Logger(c).Info("track config updated", "place_id", id, "tracks", applied)
		return c.JSON(fiber.Map{"status": "success", "updated_tracks": applied})
	}
}

// SetTrackTypeRequest is the JSON body for PUT /api/places/:id/tracks/:number.
type SetTrackTypeRequest struct {
	TrackTypeID uint `json:"track_type_id"`
}

// SetTrackType handles the single-track PUT /api/places/:id/tracks/:number.
func SetTrackType(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return jsonError(c, err)
		}
		number, err := c.ParamsInt("number")
		if err != nil {
			return jsonError(c, store.ErrInvalidInput)
		}
		var req SetTrackTypeRequest
		if err := c.BodyParser(&req); err != nil || req.TrackTypeID == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status": "error", "message": "track_type_id required",
			})
		}

		pt, err := st.SetTrackType(id, number, req.TrackTypeID)
		if err != nil {
			return jsonError(c, err)
		}

		middleware.Logger(c).Info("track type set",
			"place_id", id, "track", number, "track_type", pt.TrackType.Name)

		return c.JSON(fiber.Map{
			"status": "success",
			"track": fiber.Map{
				"track_number":    pt.TrackNumber,
				"track_type_id":   pt.TrackTypeID,
				"track_type_name": pt.TrackType.Name,
				"icon_url":        pt.TrackType.IconURL(),
			},
		})
	}
}
