package dto

import (
	"stay/internal/domains/hotel/model"
	gDto "stay/shared/dto"
)

type HotelResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(hotel model.Hotel) {
	r.ID = hotel.ID
	r.Name = hotel.Name
	r.Image = hotel.Image
	r.Metadata.FromModel(hotel.Metadata)
}

type HotelsResponse []HotelResponse

func HotelsFromModels(hotels []model.Hotel) HotelsResponse {
	responses := make(HotelsResponse, len(hotels))

	for i, hotel := range hotels {
		responses[i].FromModel(hotel)
	}

	return responses
}

type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int64  `json:"capacity"`
	HotelID  int64  `json:"hotelId"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Name = room.Name
	r.Capacity = room.Capacity
	r.HotelID = room.HotelID
	r.Metadata.FromModel(room.Metadata)
}

// HotelWithRoomsResponse keys the room list as "Rooms" to stay wire
// compatible with the clients of the previous version of this API.
type HotelWithRoomsResponse struct {
	HotelResponse
	Rooms []RoomResponse `json:"Rooms"`
}

func (r *HotelWithRoomsResponse) FromModel(hotel model.HotelWithRooms) {
	r.HotelResponse.FromModel(hotel.Hotel)

	r.Rooms = make([]RoomResponse, len(hotel.Rooms))
	for i, room := range hotel.Rooms {
		r.Rooms[i].FromModel(room)
	}
}
