package model

import "stay/shared/model"

const (
	TableName      = "hotels"
	EntityName     = "hotel"
	RoomTableName  = "rooms"
	RoomEntityName = "room"

	FieldID          = "id"
	RoomFieldID      = "id"
	RoomFieldHotelID = "hotel_id"
)

type Hotel struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Image string `db:"image"`
	model.Metadata
}

type Room struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Capacity int64  `db:"capacity"`
	HotelID  int64  `db:"hotel_id"`
	model.Metadata
}

// HotelWithRooms is the detail aggregate. Rooms is empty, not nil, for a
// hotel without rooms so the payload renders as an empty list.
type HotelWithRooms struct {
	Hotel
	Rooms []Room
}
