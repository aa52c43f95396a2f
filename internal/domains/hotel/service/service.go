package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"fmt"
	"stay/infras/otel"
	enrollmentRepository "stay/internal/domains/enrollment/repository"
	"stay/internal/domains/hotel/model/dto"
	"stay/internal/domains/hotel/repository"
	ticketModel "stay/internal/domains/ticket/model"
	ticketRepository "stay/internal/domains/ticket/repository"
	"stay/shared/failure"

	"github.com/rs/zerolog/log"
)

const otelScopeName = "domains.hotel.service"

// Hotel lists hotels for eligible users and resolves single hotels with
// their rooms. Eligibility requires an enrollment with a paid, in-person
// ticket; the detail lookup is gated by authentication only.
type Hotel interface {
	ListHotels(ctx context.Context, userID int64) (dto.HotelsResponse, error)
	GetHotel(ctx context.Context, hotelID int64) (dto.HotelWithRoomsResponse, error)
}

type serviceImpl struct {
	hotelRepository      repository.Hotel
	enrollmentRepository enrollmentRepository.Enrollment
	ticketRepository     ticketRepository.Ticket
	otel                 otel.Otel
}

func New(
	hotelRepo repository.Hotel,
	enrollmentRepo enrollmentRepository.Enrollment,
	ticketRepo ticketRepository.Ticket,
	otl otel.Otel,
) Hotel {
	return &serviceImpl{
		hotelRepository:      hotelRepo,
		enrollmentRepository: enrollmentRepo,
		ticketRepository:     ticketRepo,
		otel:                 otl,
	}
}

func (s *serviceImpl) ListHotels(ctx context.Context, userID int64) (res dto.HotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".ListHotels")
	defer scope.End()

	scope.SetAttribute("user_id", userID)

	enrollment, err := s.enrollmentRepository.GetByUserID(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("userId", userID).Msg("[ListHotels] failed to get enrollment")

		return res, fmt.Errorf("failed to get enrollment: %w", err)
	}

	if enrollment.ID == 0 {
		return res, failure.NotFound("enrollment not found")
	}

	ticket, err := s.ticketRepository.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("enrollmentId", enrollment.ID).Msg("[ListHotels] failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID == 0 {
		return res, failure.NotFound("ticket not found")
	}

	ticketType, err := s.ticketRepository.GetTypeByTicketID(ctx, ticket.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("ticketId", ticket.ID).Msg("[ListHotels] failed to get ticket type")

		return res, fmt.Errorf("failed to get ticket type: %w", err)
	}

	// Remote attendees and unpaid tickets never unlock the hotel listing.
	if ticketType.IsRemote || ticket.Status == ticketModel.TicketStatusReserved {
		return res, failure.Conflict("you don't have authorization")
	}

	hotels, err := s.hotelRepository.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("[ListHotels] failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	if len(hotels) == 0 {
		return res, failure.NotFound("no hotels found")
	}

	return dto.HotelsFromModels(hotels), nil
}

func (s *serviceImpl) GetHotel(ctx context.Context, hotelID int64) (res dto.HotelWithRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetHotel")
	defer scope.End()

	scope.SetAttribute("hotel_id", hotelID)

	hotel, err := s.hotelRepository.GetWithRooms(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("hotelId", hotelID).Msg("[GetHotel] failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == 0 {
		return res, failure.NotFound("hotel not found")
	}

	res.FromModel(hotel)

	return res, nil
}
