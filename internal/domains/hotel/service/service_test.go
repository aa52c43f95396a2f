package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"stay/infras/otel/mocks"
	enrollmentMocks "stay/internal/domains/enrollment/mocks"
	enrollmentModel "stay/internal/domains/enrollment/model"
	hotelMocks "stay/internal/domains/hotel/mocks"
	"stay/internal/domains/hotel/model"
	"stay/internal/domains/hotel/service"
	ticketMocks "stay/internal/domains/ticket/mocks"
	ticketModel "stay/internal/domains/ticket/model"
	"stay/shared/failure"
)

func TestHotelService_ListHotels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockEnrollmentRepo := enrollmentMocks.NewMockEnrollment(ctrl)
	mockTicketRepo := ticketMocks.NewMockTicket(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockHotelRepo, mockEnrollmentRepo, mockTicketRepo, mockOtel)

	const userID = int64(7)

	enrollment := enrollmentModel.Enrollment{ID: 21, UserID: userID}
	paidTicket := ticketModel.Ticket{ID: 3, EnrollmentID: 21, Status: ticketModel.TicketStatusPaid}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
		wantErr   bool
		wantLen   int
	}{
		{
			name: "user without enrollment",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(enrollmentModel.Enrollment{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "enrollment lookup fails",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(enrollmentModel.Enrollment{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
		{
			name: "enrollment without ticket",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(enrollment, nil)
				mockTicketRepo.EXPECT().
					GetByEnrollmentID(gomock.Any(), enrollment.ID).
					Return(ticketModel.Ticket{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "remote ticket type",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(enrollment, nil)
				mockTicketRepo.EXPECT().
					GetByEnrollmentID(gomock.Any(), enrollment.ID).
					Return(paidTicket, nil)
				mockTicketRepo.EXPECT().
					GetTypeByTicketID(gomock.Any(), paidTicket.ID).
					Return(ticketModel.TicketType{ID: 1, IsRemote: true}, nil)
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
		{
			name: "unpaid ticket",
			setupMock: func() {
				reserved := paidTicket
				reserved.Status = ticketModel.TicketStatusReserved

				mockEnrollmentRepo.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(enrollment, nil)
				mockTicketRepo.EXPECT().
					GetByEnrollmentID(gomock.Any(), enrollment.ID).
					Return(reserved, nil)
				mockTicketRepo.EXPECT().
					GetTypeByTicketID(gomock.Any(), reserved.ID).
					Return(ticketModel.TicketType{ID: 1, IsRemote: false}, nil)
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
		{
			name: "no hotels registered",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(enrollment, nil)
				mockTicketRepo.EXPECT().
					GetByEnrollmentID(gomock.Any(), enrollment.ID).
					Return(paidTicket, nil)
				mockTicketRepo.EXPECT().
					GetTypeByTicketID(gomock.Any(), paidTicket.ID).
					Return(ticketModel.TicketType{ID: 1, IsRemote: false}, nil)
				mockHotelRepo.EXPECT().
					GetAll(gomock.Any()).
					Return([]model.Hotel{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "paid in-person ticket lists hotels",
			setupMock: func() {
				mockEnrollmentRepo.EXPECT().
					GetByUserID(gomock.Any(), userID).
					Return(enrollment, nil)
				mockTicketRepo.EXPECT().
					GetByEnrollmentID(gomock.Any(), enrollment.ID).
					Return(paidTicket, nil)
				mockTicketRepo.EXPECT().
					GetTypeByTicketID(gomock.Any(), paidTicket.ID).
					Return(ticketModel.TicketType{ID: 1, IsRemote: false}, nil)
				mockHotelRepo.EXPECT().
					GetAll(gomock.Any()).
					Return([]model.Hotel{
						{ID: 1, Name: "Driven Resort", Image: "https://example.org/driven.png"},
						{ID: 2, Name: "Palms Hotel", Image: "https://example.org/palms.png"},
					}, nil)
			},
			wantErr: false,
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ListHotels(context.Background(), userID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res, tt.wantLen)
			assert.Equal(t, "Driven Resort", res[0].Name)
		})
	}
}

func TestHotelService_GetHotel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockEnrollmentRepo := enrollmentMocks.NewMockEnrollment(ctrl)
	mockTicketRepo := ticketMocks.NewMockTicket(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockHotelRepo, mockEnrollmentRepo, mockTicketRepo, mockOtel)

	tests := []struct {
		name      string
		hotelID   int64
		setupMock func()
		wantErr   bool
		wantRooms int
	}{
		{
			name:    "hotel not found",
			hotelID: 99,
			setupMock: func() {
				mockHotelRepo.EXPECT().
					GetWithRooms(gomock.Any(), int64(99)).
					Return(model.HotelWithRooms{}, nil)
			},
			wantErr: true,
		},
		{
			name:    "repository error",
			hotelID: 1,
			setupMock: func() {
				mockHotelRepo.EXPECT().
					GetWithRooms(gomock.Any(), int64(1)).
					Return(model.HotelWithRooms{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:    "hotel with rooms",
			hotelID: 1,
			setupMock: func() {
				mockHotelRepo.EXPECT().
					GetWithRooms(gomock.Any(), int64(1)).
					Return(model.HotelWithRooms{
						Hotel: model.Hotel{ID: 1, Name: "Driven Resort"},
						Rooms: []model.Room{
							{ID: 10, Name: "101", Capacity: 3, HotelID: 1},
							{ID: 11, Name: "102", Capacity: 2, HotelID: 1},
						},
					}, nil)
			},
			wantRooms: 2,
		},
		{
			name:    "hotel without rooms",
			hotelID: 2,
			setupMock: func() {
				mockHotelRepo.EXPECT().
					GetWithRooms(gomock.Any(), int64(2)).
					Return(model.HotelWithRooms{
						Hotel: model.Hotel{ID: 2, Name: "Palms Hotel"},
						Rooms: []model.Room{},
					}, nil)
			},
			wantRooms: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetHotel(context.Background(), tt.hotelID)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.hotelID, res.ID)
			assert.NotNil(t, res.Rooms)
			assert.Len(t, res.Rooms, tt.wantRooms)
		})
	}
}
