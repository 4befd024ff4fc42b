package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/gophergolf/scorecard/internal/models"
	"github.com/gophergolf/scorecard/internal/store"
)

func TestPlacesAPI(t *testing.T) {
	app, _ := newTestApp(t)

	var created struct {
		Status  string `json:"status"`
		PlaceID uint   `json:"place_id"`
	}
	resp := doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/places", fiber.Map{
		"name": "Dietikon", "track_count": 12,
	}), &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status = %d, want 201", resp.StatusCode)
	}
	if created.PlaceID == 0 {
		t.Fatal("create: no place_id returned")
	}

	// Same name again is rejected.
	resp = doJSON(t, app, jsonRequest(t, http.MethodPost, "/api/places", fiber.Map{
		"name": "Dietikon",
	}), nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("duplicate create: status = %d, want 400", resp.StatusCode)
	}

	var list struct {
		Places []PlaceResponse `json:"places"`
		Count  int             `json:"count"`
	}
	doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/places", nil), &list)
	if list.Count != 1 || len(list.Places) != 1 {
		t.Fatalf("list: count = %d, want 1", list.Count)
	}
	if p := list.Places[0]; p.Name != "Dietikon" || p.TrackCount != 12 {
		t.Errorf("list: unexpected place %+v", p)
	}
	// CreatePlace populated the default track rows, so the flag is set.
	if !list.Places[0].HasCustomConfig {
		t.Error("list: expected has_custom_config after default population")
	}

	var single struct {
		Place PlaceResponse `json:"place"`
	}
	resp = doJSON(t, app, jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/places/%d", created.PlaceID), nil), &single)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: status = %d, want 200", resp.StatusCode)
	}
	if single.Place.ID != created.PlaceID || single.Place.Name != "Dietikon" {
		t.Errorf("get: unexpected place %+v", single.Place)
	}

	resp = doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/places/99999", nil), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get unknown: status = %d, want 404", resp.StatusCode)
	}

	resp = doJSON(t, app, jsonRequest(t, http.MethodPut, fmt.Sprintf("/api/places/%d", created.PlaceID), fiber.Map{
		"track_count": 14,
	}), nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("update: status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, app, jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/places/%d", created.PlaceID), nil), nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("delete: status = %d, want 200", resp.StatusCode)
	}

	resp = doJSON(t, app, jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/places/%d", created.PlaceID), nil), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", resp.StatusCode)
	}
}

func TestDeletePlaceInUse(t *testing.T) {
	app, st := newTestApp(t)

	game, err := st.CreateGame(store.NewGame{
		Date: "2026-08-29", PlaceName: "Bülach", TrackCount: 18, Players: []string{"Anna"},
	})
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	resp := doJSON(t, app, jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/places/%d", *game.PlaceID), nil), &out)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if out.Message == "" {
		t.Error("expected an explanatory message")
	}
}

func TestTrackConfigRoundTrip(t *testing.T) {
	app, st := newTestApp(t)

	place, err := st.CreatePlace("Uster", 6, false)
	if err != nil {
		t.Fatal(err)
	}
	types, err := st.ListTrackTypes()
	if err != nil {
		t.Fatal(err)
	}
	var windmill models.TrackType
	for _, tt := range types {
		if tt.Name == "Windmühle" {
			windmill = tt
		}
	}
	if windmill.ID == 0 {
		t.Fatal("seed catalog has no Windmühle type")
	}

	var setOut struct {
		Track struct {
			TrackNumber   int    `json:"track_number"`
			TrackTypeID   uint   `json:"track_type_id"`
			TrackTypeName string `json:"track_type_name"`
			IconURL       string `json:"icon_url"`
		} `json:"track"`
	}
	resp := doJSON(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/places/%d/tracks/3", place.ID),
		fiber.Map{"track_type_id": windmill.ID}), &setOut)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("set track type: status = %d, want 200", resp.StatusCode)
	}
	if setOut.Track.TrackNumber != 3 || setOut.Track.TrackTypeName != "Windmühle" {
		t.Errorf("unexpected track payload: %+v", setOut.Track)
	}
	if setOut.Track.IconURL == "" {
		t.Error("expected an icon url")
	}

	var cfg struct {
		Place struct {
			TrackCount int `json:"track_count"`
		} `json:"place"`
		TrackConfig []store.TrackConfigEntry `json:"track_config"`
	}
	doJSON(t, app, jsonRequest(t, http.MethodGet,
		fmt.Sprintf("/api/places/%d/tracks", place.ID), nil), &cfg)
	if cfg.Place.TrackCount != 6 || len(cfg.TrackConfig) != 6 {
		t.Fatalf("config: track_count = %d, entries = %d, want 6/6",
			cfg.Place.TrackCount, len(cfg.TrackConfig))
	}
	if got := cfg.TrackConfig[2].TrackTypeID; got != windmill.ID {
		t.Errorf("track 3 type = %d, want %d", got, windmill.ID)
	}

	// Bulk update with one bad entry: the valid ones are applied.
	var bulk struct {
		UpdatedTracks int `json:"updated_tracks"`
	}
	resp = doJSON(t, app, jsonRequest(t, http.MethodPut,
		fmt.Sprintf("/api/places/%d/tracks", place.ID),
		fiber.Map{"track_config": []fiber.Map{
			{"track_number": 1, "track_type_id": windmill.ID},
			{"track_number": 99, "track_type_id": windmill.ID},
		}}), &bulk)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bulk update: status = %d, want 200", resp.StatusCode)
	}
	if bulk.UpdatedTracks != 1 {
		t.Errorf("updated_tracks = %d, want 1", bulk.UpdatedTracks)
	}
}

func TestTrackTypesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	var out struct {
		TrackTypes []TrackTypeResponse `json:"track_types"`
	}
	resp := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/track-types", nil), &out)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if len(out.TrackTypes) == 0 {
		t.Fatal("no track types returned")
	}
	if out.TrackTypes[0].Name != "Standard" {
		t.Errorf("first type = %q, want Standard", out.TrackTypes[0].Name)
	}
	for _, tt := range out.TrackTypes {
		if tt.IconURL == "" {
			t.Errorf("type %q has no icon url", tt.Name)
		}
	}
}
