package hotel

import (
	"net/http"
	"stay/infras/otel"
	"stay/internal/domains/hotel/service"
	"stay/shared/constant"
	"stay/shared/failure"
	"stay/shared/validator"
	"stay/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{hotelId}", handler.GetHotelByID)
	})
}

// GetHotels lists every hotel visible to the requesting user. Eligibility
// failures keep the status codes the previous version of this API exposed:
// missing enrollment, ticket or hotels map to 404, an ineligible ticket to
// 402, anything else to 400.
func (handler *Handler) GetHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)
	if !ok || userID <= 0 {
		err := failure.Unauthorized("missing user identity")
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	hotels, err := handler.service.ListHotels(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("userId", userID).Msg("failed to list hotels")

		switch failure.GetCode(err) {
		case http.StatusConflict:
			response.WithErrorCode(writer, http.StatusPaymentRequired, err)
		case http.StatusNotFound:
			response.WithErrorCode(writer, http.StatusNotFound, err)
		default:
			response.WithErrorCode(writer, http.StatusBadRequest, err)
		}

		return
	}

	response.WithJSON(writer, http.StatusOK, hotels)
}

// GetHotelByID returns a single hotel with its rooms. Any failure on this
// endpoint, a malformed identifier included, is reported as 404.
func (handler *Handler) GetHotelByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	idParam := chi.URLParam(request, constant.RequestParamHotelID)
	if err := validator.ValidateVar(idParam, "required,numeric"); err != nil {
		scope.TraceError(err)

		response.WithErrorCode(writer, http.StatusNotFound, err)

		return
	}

	hotelID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		scope.TraceError(err)

		response.WithErrorCode(writer, http.StatusNotFound, err)

		return
	}

	hotel, err := handler.service.GetHotel(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("hotelId", hotelID).Msg("failed to get hotel")

		response.WithErrorCode(writer, http.StatusNotFound, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, hotel)
}
