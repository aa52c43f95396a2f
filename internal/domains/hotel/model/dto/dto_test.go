package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stay/internal/domains/hotel/model"
	"stay/internal/domains/hotel/model/dto"
	gModel "stay/shared/model"
)

func metadataAt(ts time.Time) gModel.Metadata {
	return gModel.Metadata{CreatedAt: ts, UpdatedAt: ts}
}

func TestHotelResponse_FromModel(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	hotel := model.Hotel{
		ID:       1,
		Name:     "Driven Resort",
		Image:    "https://example.org/driven.png",
		Metadata: metadataAt(ts),
	}

	var res dto.HotelResponse
	res.FromModel(hotel)

	payload, err := json.Marshal(res)
	assert.NoError(t, err)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(payload, &body))

	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Driven Resort", body["name"])
	assert.Equal(t, "https://example.org/driven.png", body["image"])
	assert.Contains(t, body, "createdAt")
	assert.Contains(t, body, "updatedAt")
	assert.NotContains(t, body, "created_at")
}

func TestHotelWithRoomsResponse_FromModel(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	hotel := model.HotelWithRooms{
		Hotel: model.Hotel{ID: 2, Name: "Palms Hotel", Metadata: metadataAt(ts)},
		Rooms: []model.Room{
			{ID: 10, Name: "101", Capacity: 3, HotelID: 2, Metadata: metadataAt(ts)},
		},
	}

	var res dto.HotelWithRoomsResponse
	res.FromModel(hotel)

	payload, err := json.Marshal(res)
	assert.NoError(t, err)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(payload, &body))

	rooms, ok := body["Rooms"].([]any)
	assert.True(t, ok, "room list must be keyed as Rooms")
	assert.Len(t, rooms, 1)

	room, ok := rooms[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, float64(2), room["hotelId"])
	assert.Equal(t, "101", room["name"])
}

func TestHotelWithRoomsResponse_EmptyRooms(t *testing.T) {
	hotel := model.HotelWithRooms{
		Hotel: model.Hotel{ID: 3, Name: "Empty Inn"},
		Rooms: []model.Room{},
	}

	var res dto.HotelWithRoomsResponse
	res.FromModel(hotel)

	payload, err := json.Marshal(res)
	assert.NoError(t, err)

	// A hotel without rooms renders an empty list, never null.
	assert.Contains(t, string(payload), `"Rooms":[]`)
}

func TestHotelsFromModels(t *testing.T) {
	hotels := []model.Hotel{
		{ID: 1, Name: "Driven Resort"},
		{ID: 2, Name: "Palms Hotel"},
	}

	res := dto.HotelsFromModels(hotels)

	assert.Len(t, res, 2)
	assert.Equal(t, int64(1), res[0].ID)
	assert.Equal(t, "Palms Hotel", res[1].Name)
}
