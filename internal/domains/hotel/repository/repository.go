package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/hotel/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gRepo "stay/shared/repository"
)

const otelScopeName = "domains.hotel.repository"

type Hotel interface {
	GetAll(ctx context.Context) ([]model.Hotel, error)
	GetWithRooms(ctx context.Context, hotelID int64) (model.HotelWithRooms, error)
}

type repositoryImpl struct {
	hotels gRepo.Repository[model.Hotel]
	rooms  gRepo.Repository[model.Room]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		hotels: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		rooms:  gRepo.NewRepository[model.Room](model.RoomEntityName, model.RoomTableName, model.RoomFieldID, db, otel),
		db:     db,
		otel:   otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context) ([]model.Hotel, error) {
	hotels, err := r.hotels.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.FieldID,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to get hotels: %w", err)
	}

	return hotels, nil
}

// GetWithRooms returns the zero aggregate when the hotel does not exist.
// Rooms are always fetched fresh, no cache sits on this path.
func (r *repositoryImpl) GetWithRooms(ctx context.Context, hotelID int64) (hotelWithRooms model.HotelWithRooms, err error) {
	ctx, scope := r.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetWithRooms")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := r.hotels.Exist(ctx, shared.FilterByID(hotelID, model.FieldID, model.TableName))
	if err != nil {
		return hotelWithRooms, fmt.Errorf("failed to check hotel: %w", err)
	}

	if !exist {
		return model.HotelWithRooms{}, nil
	}

	hotel, err := r.hotels.Get(ctx, shared.FilterByID(hotelID, model.FieldID, model.TableName))
	if err != nil {
		return hotelWithRooms, fmt.Errorf("failed to get hotel: %w", err)
	}

	rooms, err := r.rooms.GetAll(ctx, gDto.QueryParams{
		SortBy:  model.RoomFieldID,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterByID(hotelID, model.RoomFieldHotelID, model.RoomTableName))
	if err != nil {
		return hotelWithRooms, fmt.Errorf("failed to get rooms: %w", err)
	}

	if rooms == nil {
		rooms = []model.Room{}
	}

	return model.HotelWithRooms{
		Hotel: hotel,
		Rooms: rooms,
	}, nil
}
